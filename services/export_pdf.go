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
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF creates a PDF document from quote export data using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateQuotePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addTableHeader(m)
	for _, r := range data.Rows {
		addTableRow(m, r)
	}
	addSummary(m, data)
	addAssumptions(m, data)
	addFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader adds the title, client line and date.
func addHeader(m core.Maroto, data ExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	grey := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New(fmt.Sprintf("%s · %s tier", data.ClientName, data.TierName), props.Text{
					Size:  9,
					Align: align.Left,
					Color: grey,
				}),
			),
			col.New(4).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: grey,
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

func addTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerTextRight := headerText
	headerTextRight.Align = align.Right

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(5).Add(text.New("Item", headerTextLeft)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Note", headerTextLeft)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Monthly", headerTextRight)).WithStyle(&headerCell),
		),
	)
}

// addTableRow adds one line item; the platform row is bold.
func addTableRow(m core.Maroto, r ExportRow) {
	baseText := props.Text{Size: 8, Align: align.Center}
	if r.Index == "1" {
		baseText.Style = fontstyle.Bold
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(r.Index, baseText)),
			col.New(5).Add(text.New(r.Label, leftText)),
			col.New(3).Add(text.New(r.Note, leftText)),
			col.New(3).Add(text.New(FormatEUR(r.Amount), rightText)),
		),
	)
}

func addSummary(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}

	for _, s := range data.Summary {
		style := props.Text{Size: 9, Align: align.Right}
		if s.Strong {
			style.Style = fontstyle.Bold
			style.Size = 11
		}
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(s.Label, style)).WithStyle(summaryCell),
				col.New(4).Add(text.New(FormatEUR(s.Amount), style)).WithStyle(summaryCell),
			),
		)
	}
}

func addAssumptions(m core.Maroto, data ExportData) {
	if len(data.Assumptions) == 0 {
		return
	}
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("Assumptions", props.Text{Size: 10, Style: fontstyle.Bold})),
		),
	)
	for _, a := range data.Assumptions {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New("• "+a, props.Text{Size: 8})),
			),
		)
	}
}

// addFooter adds the generated-date line at the bottom.
func addFooter(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s. Prices in EUR, VAT at %s.", data.CreatedDate, FormatPercent(VATRate)),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
