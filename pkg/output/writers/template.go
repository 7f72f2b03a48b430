package writers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/passaudit/passaudit/pkg/output"
	"github.com/passaudit/passaudit/pkg/store"
)

// Compile-time interface check.
var _ ReportWriter = (*TemplateWriter)(nil)

// TemplateConfig configures the template writer.
type TemplateConfig struct {
	// TemplatePath is the path to a custom template file.
	TemplatePath string

	// TemplateString is an inline template string (alternative to TemplatePath).
	TemplateString string

	// BuiltIn is the name of a built-in template: "csv" or "text-summary".
	BuiltIn string
}

// builtInTemplates contains pre-defined templates for common output formats.
var builtInTemplates = map[string]string{
	"csv": `User,Score,MaxScore,Level,FailedChecks
{{- range .Results }}
{{ escapeCSV .Username }},{{ .Score }},{{ .MaxScore }},{{ .Level }},{{ len .Failures }}
{{- end }}`,

	"text-summary": `{{ .Tool }} v{{ .Version }} - password audit
generated: {{ .GeneratedAt.Format "2006-01-02 15:04:05" }}
{{- with .Summary }}
audited:   {{ .Total }}
strong:    {{ .Strong }}
medium:    {{ .Medium }}
weak:      {{ .Weak }}
{{- end }}
{{ range .Results }}
{{ .Username }}: {{ .Score }}/{{ .MaxScore }} ({{ .Level | lower }})
{{- range .Failures }}
  - {{ . }}
{{- end }}
{{- end }}`,
}

// receiptTemplate renders a checkout receipt for the store command.
const receiptTemplate = `--------------------------------
 RECEIPT {{ .Order.ID | trunc 8 }}
 {{ .Order.PlacedAt.Format "2006-01-02 15:04:05" }}
 Customer: {{ .Customer }}
--------------------------------
{{- range .Order.Items }}
 {{ .Name }} x{{ .Quantity }} - ${{ printf "%.2f" (mulf .Price .Quantity) }}
{{- end }}
--------------------------------
 Total: ${{ printf "%.2f" .Order.Total }}
--------------------------------
`

// TemplateWriter renders reports through a text/template with the sprig
// function map available.
type TemplateWriter struct {
	tmpl *template.Template
}

// NewTemplateWriter creates a template writer from config. Exactly one
// of TemplatePath, TemplateString, or BuiltIn must be set.
func NewTemplateWriter(cfg TemplateConfig) (*TemplateWriter, error) {
	text := cfg.TemplateString

	switch {
	case cfg.TemplatePath != "":
		data, err := os.ReadFile(cfg.TemplatePath)
		if err != nil {
			return nil, fmt.Errorf("read template: %w", err)
		}
		text = string(data)
	case cfg.BuiltIn != "":
		builtin, ok := builtInTemplates[cfg.BuiltIn]
		if !ok {
			return nil, fmt.Errorf("unknown built-in template: %s", cfg.BuiltIn)
		}
		text = builtin
	case text == "":
		return nil, fmt.Errorf("template writer needs a template")
	}

	tmpl, err := template.New("report").
		Funcs(sprig.TxtFuncMap()).
		Funcs(template.FuncMap{"escapeCSV": escapeCSV}).
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &TemplateWriter{tmpl: tmpl}, nil
}

// templateData exposes the report plus its summary to templates.
type templateData struct {
	*output.Report
	Summary output.Summary
}

// Write renders the report through the template.
func (tw *TemplateWriter) Write(report *output.Report, w io.Writer) error {
	return tw.tmpl.Execute(w, templateData{Report: report, Summary: report.Summary()})
}

// receiptData is the payload for the receipt template.
type receiptData struct {
	Customer string
	Order    store.Order
}

// RenderReceipt writes a checkout receipt for an order.
func RenderReceipt(w io.Writer, customer string, order store.Order) error {
	tmpl, err := template.New("receipt").Funcs(sprig.TxtFuncMap()).Parse(receiptTemplate)
	if err != nil {
		return fmt.Errorf("parse receipt template: %w", err)
	}
	return tmpl.Execute(w, receiptData{Customer: customer, Order: order})
}

// escapeCSV quotes a CSV field when it contains separators or quotes.
func escapeCSV(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
