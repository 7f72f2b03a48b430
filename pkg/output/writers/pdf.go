package writers

import (
	"fmt"
	"io"
	"time"

	gofpdf "github.com/go-pdf/fpdf"

	"github.com/passaudit/passaudit/pkg/output"
)

// Compile-time interface check.
var _ ReportWriter = (*PDFWriter)(nil)

// PDFConfig configures the PDF report writer.
type PDFConfig struct {
	// Title is the report title (default: "Password Audit Report")
	Title string
}

// PDFWriter renders the report as a one-page PDF: title block, level
// summary, results table, and the failed checks per user.
type PDFWriter struct {
	cfg PDFConfig
}

// NewPDFWriter creates a PDF report writer.
func NewPDFWriter(cfg PDFConfig) *PDFWriter {
	if cfg.Title == "" {
		cfg.Title = "Password Audit Report"
	}
	return &PDFWriter{cfg: cfg}
}

// Write renders the report to w.
func (pw *PDFWriter) Write(report *output.Report, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(0, 10, pw.cfg.Title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s v%s - generated %s",
		report.Tool, report.Version, report.GeneratedAt.Format(time.RFC3339)),
		"", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Level summary
	s := report.Summary()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range []struct {
		label   string
		count   int
		r, g, b int
	}{
		{"Strong", s.Strong, 0, 150, 70},
		{"Medium", s.Medium, 200, 150, 0},
		{"Weak", s.Weak, 200, 40, 40},
	} {
		pdf.SetTextColor(row.r, row.g, row.b)
		pdf.CellFormat(30, 6, row.label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(40, 40, 40)
		pdf.CellFormat(0, 6, fmt.Sprintf("%d / %d", row.count, s.Total), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Results table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Results", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 240)
	pdf.CellFormat(70, 7, "User", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Score", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Level", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Failed checks", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, res := range report.Results {
		pdf.CellFormat(70, 6, res.Username, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d/%d", res.Score, res.MaxScore), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, res.Level, "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%d", len(res.Failures)), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	// Failure detail
	for _, res := range report.Results {
		if len(res.Failures) == 0 {
			continue
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 7, res.Username, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(110, 110, 110)
		for _, reason := range res.Failures {
			pdf.MultiCell(0, 5, "- "+reason, "", "L", false)
		}
		pdf.SetTextColor(40, 40, 40)
		pdf.Ln(2)
	}

	return pdf.Output(w)
}
