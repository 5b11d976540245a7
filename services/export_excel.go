package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel creates an Excel file from the given quote ExportData and
// returns the file contents as a byte slice.
func GenerateQuoteExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Determine sheet name (max 31 chars).
	sheetName := data.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Quote"
	}

	// Rename default sheet.
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through D).
	columns := []string{"A", "B", "C", "D"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 40, 30, 18}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	// Column header style: bold, white text, charcoal background, centered.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	lineStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	strongStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// ── Header Rows (1-3) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge client: %w", err)
	}
	f.SetCellValue(sheetName, "A2", sanitizeExcelCell(fmt.Sprintf("%s · %s tier", data.ClientName, data.TierName)))
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Date: "+data.CreatedDate)
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Row 5: Column Headers ───────────────────────────────────────────

	headers := []string{"#", "Item", "Note", "Monthly"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s5", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Line items (starting row 6) ─────────────────────────────────────

	row := 6
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, r.Index)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Label))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.Note))
		f.SetCellValue(sheetName, "D"+rowStr, FormatEUR(r.Amount))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, lineStyle)
		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++
	for _, s := range data.Summary {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "C"+rowStr, s.Label+":")
		f.SetCellValue(sheetName, "D"+rowStr, FormatEUR(s.Amount))
		style := summaryLabelStyle
		if s.Strong {
			style = strongStyle
		}
		f.SetCellStyle(sheetName, "C"+rowStr, "D"+rowStr, style)
		row++
	}

	// ── Assumptions ─────────────────────────────────────────────────────

	if len(data.Assumptions) > 0 {
		row++
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Assumptions")
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), titleStyle)
		row++
		for _, a := range data.Assumptions {
			rowStr := fmt.Sprintf("%d", row)
			if err := f.MergeCell(sheetName, "A"+rowStr, lastCol+rowStr); err != nil {
				return nil, fmt.Errorf("merge assumption: %w", err)
			}
			f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell("• "+a))
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
