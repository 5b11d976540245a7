package services

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"callcenter/profile"
)

func TestBuildQuoteExportData(t *testing.T) {
	p := professionalProfile()
	p.BusinessDetails = &profile.BusinessDetails{BusinessName: "Acme Logistics"}
	data := BuildQuoteExportData(p, CalculateBuilderQuote(p), testTime)

	if data.ClientName != "Acme Logistics" {
		t.Errorf("ClientName = %q", data.ClientName)
	}
	if data.TierName != "Professional" {
		t.Errorf("TierName = %q, want Professional", data.TierName)
	}
	if data.CreatedDate != "2026-03-01" {
		t.Errorf("CreatedDate = %q", data.CreatedDate)
	}
	if len(data.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(data.Rows))
	}
	if data.Rows[3].Index != "4" {
		t.Errorf("last row index = %q, want 4", data.Rows[3].Index)
	}
	last := data.Summary[len(data.Summary)-1]
	if !last.Strong || last.Amount != 6785.92 {
		t.Errorf("last summary row = %+v, want strong total 6785.92", last)
	}
	var sawDiscount bool
	for _, s := range data.Summary {
		if strings.HasPrefix(s.Label, "Bundle discount") {
			sawDiscount = true
			if s.Amount != -489.80 {
				t.Errorf("discount row = %v, want -489.80", s.Amount)
			}
		}
	}
	if !sawDiscount {
		t.Error("expected a bundle discount row")
	}
}

func TestBuildQuoteExportData_NoDiscountRow(t *testing.T) {
	p := profile.Defaults(testTime)
	data := BuildQuoteExportData(p, CalculateBuilderQuote(p), testTime)
	if data.ClientName != "Prospective client" {
		t.Errorf("ClientName = %q", data.ClientName)
	}
	for _, s := range data.Summary {
		if strings.HasPrefix(s.Label, "Bundle discount") {
			t.Errorf("unexpected discount row %+v", s)
		}
	}
}

func TestGenerateQuoteExcel_Quote(t *testing.T) {
	p := professionalProfile()
	data := BuildQuoteExportData(p, CalculateBuilderQuote(p), testTime)

	result, err := GenerateQuoteExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuoteExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("failed to open generated Excel: %v", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName != "Service Quote" {
		t.Errorf("sheet name = %q, want %q", sheetName, "Service Quote")
	}

	title, _ := f.GetCellValue(sheetName, "A1")
	if title != "Service Quote" {
		t.Errorf("A1 = %q, want %q", title, "Service Quote")
	}
	header, _ := f.GetCellValue(sheetName, "B5")
	if header != "Item" {
		t.Errorf("B5 = %q, want Item", header)
	}
	platform, _ := f.GetCellValue(sheetName, "D6")
	if platform != "€1,299.00" {
		t.Errorf("D6 = %q, want €1,299.00", platform)
	}
}

func TestGenerateQuoteExcel_SanitizesFormulaText(t *testing.T) {
	data := ExportData{
		Title:       "Quote",
		ClientName:  "=HYPERLINK()",
		TierName:    "Starter",
		CreatedDate: "2026-03-01",
		Rows:        []ExportRow{{Index: "1", Label: "+cmd", Amount: 1}},
	}
	result, err := GenerateQuoteExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error = %v", err)
	}
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("failed to open generated Excel: %v", err)
	}
	defer f.Close()

	label, _ := f.GetCellValue("Quote", "B6")
	if label != "'+cmd" {
		t.Errorf("B6 = %q, want sanitized label", label)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"Plain", "Plain"},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"-1", "'-1"},
		{"@x", "'@x"},
	}
	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.in); got != tt.want {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateQuotePDF_Quote(t *testing.T) {
	p := professionalProfile()
	data := BuildQuoteExportData(p, CalculateBuilderQuote(p), testTime)

	result, err := GenerateQuotePDF(data)
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if len(result) < 5 {
		t.Fatal("GenerateQuotePDF() returned too few bytes")
	}
	if string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateQuotePDF_EmptyQuote(t *testing.T) {
	data := ExportData{Title: "Empty", CreatedDate: "2026-03-01"}
	result, err := GenerateQuotePDF(data)
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotePDF() returned empty bytes")
	}
}
