package services

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func exportQuotes(t *testing.T) []Quote {
	t.Helper()
	lg := NewLedger()
	mustLine(t, lg, "Paint", 2, 25)
	mustLine(t, lg, "Brushes", 4, 5)

	created := time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)
	return []Quote{
		{
			ID: "q1", Name: "John Carter", Email: "john@example.com",
			Location: "Austin", Service: "Painting",
			Materials: lg, Labor: MustMoney(50),
			MaterialsTotal: MustMoney(70), Total: MustMoney(120),
			Days: 2, Workers: 3, Created: created,
		},
		{
			ID: "q2", Name: "Joan Walsh", Email: "joan@example.com",
			Service: "Drywall", Materials: NewLedger(),
			Total: MustMoney(1300), Created: created.Add(24 * time.Hour),
		},
	}
}

func TestBuildExportData(t *testing.T) {
	data := BuildExportData(exportQuotes(t))

	if data.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2", data.TotalCount)
	}
	if data.SumTotal != "1,420.00" {
		t.Errorf("SumTotal = %q, want 1,420.00", data.SumTotal)
	}
	if data.Rows[0].Details != "Painting - Austin" {
		t.Errorf("Details = %q, want %q", data.Rows[0].Details, "Painting - Austin")
	}
	if data.Rows[1].Details != "Drywall" {
		t.Errorf("Details without location = %q, want %q", data.Rows[1].Details, "Drywall")
	}
	if data.Rows[0].Date != "02 Mar 2025" {
		t.Errorf("Date = %q, want 02 Mar 2025", data.Rows[0].Date)
	}
}

func TestGenerateCSV(t *testing.T) {
	blob, err := GenerateCSV(BuildExportData(exportQuotes(t)))
	if err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(blob)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	wantHeader := []string{"Name", "Email", "Estimate", "Details", "Date"}
	for i, h := range wantHeader {
		if rows[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
		}
	}
	if rows[1][0] != "John Carter" || rows[1][2] != "120.00" {
		t.Errorf("unexpected first data row: %v", rows[1])
	}
}

func TestGenerateCSV_SanitizesFormulas(t *testing.T) {
	data := ExportData{
		Rows: []ExportRow{{Name: "=cmd|' /C calc'!A0", Email: "x@y.z", Estimate: "0.00"}},
	}
	blob, err := GenerateCSV(data)
	if err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}
	if !strings.Contains(string(blob), "'=cmd") {
		t.Errorf("formula-leading cell not sanitized: %s", blob)
	}
}

func TestGenerateExcel(t *testing.T) {
	blob, err := GenerateExcel(BuildExportData(exportQuotes(t)))
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(blob) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Estimates" {
		t.Errorf("expected sheet 'Estimates', got %v", sheets)
	}

	name, _ := f.GetCellValue("Estimates", "A4")
	if name != "John Carter" {
		t.Errorf("A4 = %q, want John Carter", name)
	}
}

func TestGenerateExcel_Empty(t *testing.T) {
	blob, err := GenerateExcel(ExportData{SumTotal: "0.00"})
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(blob) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}
}

func TestBuildQuoteDocument(t *testing.T) {
	q := exportQuotes(t)[0]
	q.Discount = MustMoney(10)
	q.DiscountAmount = MustMoney(12)

	doc := BuildQuoteDocument(q, PricingMode{Discount: DiscountPercent})

	if len(doc.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(doc.Lines))
	}
	if doc.Lines[0].Name != "Paint" || doc.Lines[0].LineTotal != "50.00" {
		t.Errorf("unexpected first line: %+v", doc.Lines[0])
	}
	if doc.DiscountLabel != "Discount (10.00%)" {
		t.Errorf("DiscountLabel = %q", doc.DiscountLabel)
	}

	flat := BuildQuoteDocument(q, PricingMode{Discount: DiscountFlat})
	if flat.DiscountLabel != "Discount" {
		t.Errorf("flat DiscountLabel = %q", flat.DiscountLabel)
	}
}

func TestGenerateQuotePDF(t *testing.T) {
	doc := BuildQuoteDocument(exportQuotes(t)[0], PricingMode{Discount: DiscountPercent})

	blob, err := GenerateQuotePDF(doc)
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if len(blob) == 0 {
		t.Fatal("GenerateQuotePDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(blob) > 4 && string(blob[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(blob[:5]))
	}
}

func TestGenerateQuotePDF_NoMaterials(t *testing.T) {
	doc := BuildQuoteDocument(exportQuotes(t)[1], PricingMode{Discount: DiscountPercent})

	blob, err := GenerateQuotePDF(doc)
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if len(blob) == 0 {
		t.Fatal("GenerateQuotePDF() returned empty bytes")
	}
}

func TestFormatQty(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"whole number", 10, "10"},
		{"zero", 0, "0"},
		{"decimal", 10.5, "10.50"},
		{"small decimal", 0.25, "0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatQty(tt.input); got != tt.want {
				t.Errorf("formatQty(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
