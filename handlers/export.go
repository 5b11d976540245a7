package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"callcenter/profile"
	"callcenter/services"
)

// buildExportData prices the current profile and lays it out for download.
func buildExportData(store *profile.Store, now time.Time) services.ExportData {
	p := store.Snapshot()
	return services.BuildQuoteExportData(p, services.CalculateBuilderQuote(p), now)
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, `"`, "")
	return s
}

func exportFilename(data services.ExportData, ext string) string {
	return fmt.Sprintf("Quote_%s_%s.%s", sanitizeFilename(data.ClientName), data.CreatedDate, ext)
}

// HandleQuoteExportExcel returns a handler that generates and downloads the
// current bundle quote as an Excel file.
func HandleQuoteExportExcel(store *profile.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := buildExportData(store, time.Now().UTC())

		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(data, "xlsx")))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleQuoteExportPDF returns a handler that generates and downloads the
// current bundle quote as a PDF file.
func HandleQuoteExportPDF(store *profile.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := buildExportData(store, time.Now().UTC())

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(data, "pdf")))
		e.Response.Write(pdfBytes)
		return nil
	}
}
