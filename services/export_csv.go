package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// GenerateCSV renders the quote register as CSV with the columns
// [Name, Email, Estimate, Details, Date].
func GenerateCSV(data ExportData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Name", "Email", "Estimate", "Details", "Date"}); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, r := range data.Rows {
		row := []string{
			sanitizeSpreadsheetCell(r.Name),
			sanitizeSpreadsheetCell(r.Email),
			r.Estimate,
			sanitizeSpreadsheetCell(r.Details),
			r.Date,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeSpreadsheetCell prevents formula injection by prefixing
// dangerous leading characters with a single quote. Spreadsheet apps
// interpret cells starting with =, +, -, @, \t or \r as formulas.
func sanitizeSpreadsheetCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}
