package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF renders a single quote as a printable document:
// client info block, itemized materials table, pricing summary. All
// values arrive pre-formatted; no pricing logic happens here.
func GenerateQuotePDF(data QuoteDocumentData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addClientBlock(m, data)
	addMaterialsHeader(m)
	if len(data.Lines) == 0 {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(
					text.New("No materials specified", props.Text{
						Size:  8,
						Align: align.Left,
						Color: &props.Color{Red: 120, Green: 120, Blue: 120},
					}),
				),
			),
		)
	}
	for _, l := range data.Lines {
		addMaterialRow(m, l)
	}
	addPricingSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addQuoteHeader(m core.Maroto, data QuoteDocumentData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Service Estimate", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Service: %s", data.Service), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.Date), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

func addClientBlock(m core.Maroto, data QuoteDocumentData) {
	label := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
	}
	value := props.Text{
		Size:  8,
		Align: align.Left,
	}

	pairs := []struct {
		label string
		value string
	}{
		{"Client", data.Name},
		{"Email", data.Email},
		{"Phone", data.Phone},
		{"Location", data.Location},
		{"Crew", fmt.Sprintf("%d worker(s), %d day(s)", data.Workers, data.Days)},
	}

	for _, p := range pairs {
		m.AddRows(
			row.New(6).Add(
				col.New(2).Add(text.New(p.label, label)),
				col.New(10).Add(text.New(p.value, value)),
			),
		)
	}

	m.AddRows(row.New(4))
}

func addMaterialsHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New("Material", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Qty", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Unit Price", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Line Total", headerText),
			).WithStyle(&headerCell),
		),
	)
}

func addMaterialRow(m core.Maroto, l QuoteDocumentLine) {
	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(l.Name, leftText)),
			col.New(2).Add(text.New(formatQty(l.Quantity), rightText)),
			col.New(2).Add(text.New(l.UnitPrice, rightText)),
			col.New(2).Add(text.New(l.LineTotal, rightText)),
		),
	)
}

func addPricingSummary(m core.Maroto, data QuoteDocumentData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Align: align.Right,
	}
	valueStyle := labelStyle
	boldLabel := labelStyle
	boldLabel.Style = fontstyle.Bold
	boldValue := boldLabel

	rows := []struct {
		label string
		value string
		bold  bool
	}{
		{"Materials Total", data.MaterialsTotal, false},
		{"Labor", data.Labor, false},
		{"Fees", data.Fees, false},
		{data.DiscountLabel, "-" + data.DiscountAmount, false},
		{"Total Estimate", data.Total, true},
	}

	for _, r := range rows {
		ls, vs := labelStyle, valueStyle
		if r.bold {
			ls, vs = boldLabel, boldValue
		}
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(r.label, ls),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(r.value, vs),
				).WithStyle(summaryCell),
			),
		)
	}
}

// formatQty renders a quantity as a whole number when it has no
// fractional part, otherwise with two decimals.
func formatQty(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return fmt.Sprintf("%.2f", q)
}
