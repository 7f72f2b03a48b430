// Package writers provides audit report writers for various formats.
package writers

import (
	"fmt"
	"io"

	"github.com/passaudit/passaudit/pkg/output"
)

// ReportWriter renders a complete audit report to w.
type ReportWriter interface {
	Write(report *output.Report, w io.Writer) error
}

// ForFormat returns the writer for a format name. templatePath is only
// consulted for the template format; empty selects the text-summary
// built-in.
func ForFormat(format, templatePath string) (ReportWriter, error) {
	switch format {
	case "json":
		return NewJSONWriter(JSONOptions{Pretty: true}), nil
	case "markdown", "md":
		return NewMarkdownWriter(MarkdownConfig{}), nil
	case "pdf":
		return NewPDFWriter(PDFConfig{}), nil
	case "template":
		cfg := TemplateConfig{BuiltIn: "text-summary"}
		if templatePath != "" {
			cfg = TemplateConfig{TemplatePath: templatePath}
		}
		return NewTemplateWriter(cfg)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// Formats lists the supported report formats.
func Formats() []string {
	return []string{"json", "markdown", "pdf", "template"}
}
