package writers

import (
	"io"

	"github.com/passaudit/passaudit/pkg/defaults"
	"github.com/passaudit/passaudit/pkg/jsonutil"
	"github.com/passaudit/passaudit/pkg/output"
)

// Compile-time interface check.
var _ ReportWriter = (*JSONWriter)(nil)

// JSONOptions configures the JSON writer behavior.
type JSONOptions struct {
	// Pretty enables indented JSON output.
	Pretty bool

	// Indent overrides the indentation string (default two spaces).
	Indent string
}

// JSONWriter renders the report as a single JSON document.
type JSONWriter struct {
	opts JSONOptions
}

// NewJSONWriter creates a JSON report writer.
func NewJSONWriter(opts JSONOptions) *JSONWriter {
	if opts.Indent == "" {
		opts.Indent = defaults.JSONIndent
	}
	return &JSONWriter{opts: opts}
}

// Write encodes the report to w.
func (jw *JSONWriter) Write(report *output.Report, w io.Writer) error {
	enc := jsonutil.NewStreamEncoder(w)
	if jw.opts.Pretty {
		enc.SetIndent(jw.opts.Indent)
	}
	return enc.Encode(report)
}
