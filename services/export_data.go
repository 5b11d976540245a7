package services

import (
	"fmt"
	"time"

	"callcenter/catalog"
	"callcenter/profile"
)

// ExportRow is one priced line in a quote export.
type ExportRow struct {
	Index  string
	Label  string
	Note   string
	Amount float64
}

// ExportSummaryRow is one labelled figure under the line items.
type ExportSummaryRow struct {
	Label  string
	Amount float64
	Strong bool
}

// ExportData holds all data needed for export.
type ExportData struct {
	Title        string
	ClientName   string
	TierName     string
	CreatedDate  string
	Rows         []ExportRow
	Summary      []ExportSummaryRow
	Assumptions  []string
	UpliftFactor float64
}

// BuildQuoteExportData lays out a breakdown for the Excel and PDF exporters.
func BuildQuoteExportData(p profile.ClientProfile, q QuoteBreakdown, generated time.Time) ExportData {
	clientName := "Prospective client"
	if p.BusinessDetails != nil && p.BusinessDetails.BusinessName != "" {
		clientName = p.BusinessDetails.BusinessName
	}
	tierName := string(q.Tier)
	if info, ok := catalog.LookupTier(q.Tier); ok {
		tierName = info.Name
	}

	rows := make([]ExportRow, 0, len(q.LineItems))
	for i, item := range q.LineItems {
		rows = append(rows, ExportRow{
			Index:  fmt.Sprintf("%d", i+1),
			Label:  item.Label,
			Note:   item.Note,
			Amount: item.Amount,
		})
	}

	summary := []ExportSummaryRow{
		{Label: "Subtotal", Amount: q.Subtotal},
		{Label: fmt.Sprintf("Adjusted subtotal (x%.2f)", q.UpliftFactor), Amount: q.AdjustedSubtotal},
	}
	if q.Discount > 0 {
		summary = append(summary, ExportSummaryRow{
			Label:  fmt.Sprintf("Bundle discount (%s)", FormatPercent(q.DiscountRate)),
			Amount: -q.Discount,
		})
	}
	summary = append(summary,
		ExportSummaryRow{Label: "Monthly after discount", Amount: q.SubtotalAfterDiscount},
		ExportSummaryRow{Label: "One-time setup fee", Amount: q.SetupFee},
		ExportSummaryRow{Label: fmt.Sprintf("VAT (%s)", FormatPercent(VATRate)), Amount: q.VAT},
		ExportSummaryRow{Label: "Total", Amount: q.Total, Strong: true},
	)

	return ExportData{
		Title:        "Service Quote",
		ClientName:   clientName,
		TierName:     tierName,
		CreatedDate:  generated.Format("2006-01-02"),
		Rows:         rows,
		Summary:      summary,
		Assumptions:  q.Assumptions,
		UpliftFactor: q.UpliftFactor,
	}
}
