package writers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/passaudit/passaudit/pkg/jsonutil"
	"github.com/passaudit/passaudit/pkg/output"
	"github.com/passaudit/passaudit/pkg/policy"
	"github.com/passaudit/passaudit/pkg/store"
)

func sampleReport(t *testing.T) *output.Report {
	t.Helper()
	report := output.NewReport()
	report.Add("bob", policy.Evaluate("bob", "B0b!2025"))
	report.Add("alice", policy.Evaluate("alice", "alice123"))
	report.Add("admin", policy.Evaluate("admin", "admin"))
	return report
}

func TestForFormatSelectsWriter(t *testing.T) {
	tests := []struct {
		format string
		want   interface{}
	}{
		{"json", (*JSONWriter)(nil)},
		{"markdown", (*MarkdownWriter)(nil)},
		{"md", (*MarkdownWriter)(nil)},
		{"pdf", (*PDFWriter)(nil)},
		{"template", (*TemplateWriter)(nil)},
	}
	for _, tt := range tests {
		w, err := ForFormat(tt.format, "")
		if err != nil {
			t.Fatalf("ForFormat(%q) error: %v", tt.format, err)
		}
		if w == nil {
			t.Fatalf("ForFormat(%q) returned nil writer", tt.format)
		}
		switch tt.want.(type) {
		case *JSONWriter:
			if _, ok := w.(*JSONWriter); !ok {
				t.Errorf("ForFormat(%q) = %T, want *JSONWriter", tt.format, w)
			}
		case *MarkdownWriter:
			if _, ok := w.(*MarkdownWriter); !ok {
				t.Errorf("ForFormat(%q) = %T, want *MarkdownWriter", tt.format, w)
			}
		case *PDFWriter:
			if _, ok := w.(*PDFWriter); !ok {
				t.Errorf("ForFormat(%q) = %T, want *PDFWriter", tt.format, w)
			}
		case *TemplateWriter:
			if _, ok := w.(*TemplateWriter); !ok {
				t.Errorf("ForFormat(%q) = %T, want *TemplateWriter", tt.format, w)
			}
		}
	}
}

func TestForFormatUnknown(t *testing.T) {
	if _, err := ForFormat("xml", ""); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestJSONWriterRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	jw := NewJSONWriter(JSONOptions{Pretty: true})
	if err := jw.Write(sampleReport(t), &buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var decoded output.Report
	if err := jsonutil.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Tool != "passaudit" {
		t.Errorf("tool = %q, want passaudit", decoded.Tool)
	}
	if len(decoded.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(decoded.Results))
	}
	if decoded.Results[0].Username != "bob" || decoded.Results[0].Score != 6 {
		t.Errorf("first result = %+v", decoded.Results[0])
	}
}

func TestJSONWriterCompact(t *testing.T) {
	var buf bytes.Buffer
	jw := NewJSONWriter(JSONOptions{})
	if err := jw.Write(sampleReport(t), &buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if strings.Contains(buf.String(), "\n  ") {
		t.Error("compact output should not be indented")
	}
}

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	mw := NewMarkdownWriter(MarkdownConfig{})
	if err := mw.Write(sampleReport(t), &buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got := buf.String()

	for _, want := range []string{
		"# Password Audit Report",
		"## Summary",
		"## Results",
		"| bob | 6/7 | Strong | 1 |",
		"| alice | 4/7 | Medium | 3 |",
		"| admin | 2/7 | Weak | 5 |",
		"### alice",
		"- Password must be longer than 8 characters.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}

func TestMarkdownWriterOmitReasons(t *testing.T) {
	var buf bytes.Buffer
	mw := NewMarkdownWriter(MarkdownConfig{OmitReasons: true})
	if err := mw.Write(sampleReport(t), &buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if strings.Contains(buf.String(), "### alice") {
		t.Error("reason sections should be omitted")
	}
}

func TestMarkdownWriterEscapesPipes(t *testing.T) {
	report := output.NewReport()
	report.Add("evil|user", policy.Evaluate("evil|user", "x"))

	var buf bytes.Buffer
	if err := NewMarkdownWriter(MarkdownConfig{}).Write(report, &buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.Contains(buf.String(), `evil\|user`) {
		t.Error("pipe in username should be escaped")
	}
}

func TestPDFWriter(t *testing.T) {
	var buf bytes.Buffer
	pw := NewPDFWriter(PDFConfig{})
	if err := pw.Write(sampleReport(t), &buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
	if buf.Len() < 500 {
		t.Errorf("PDF suspiciously small: %d bytes", buf.Len())
	}
}

func TestTemplateWriterCSV(t *testing.T) {
	tw, err := NewTemplateWriter(TemplateConfig{BuiltIn: "csv"})
	if err != nil {
		t.Fatalf("NewTemplateWriter: %v", err)
	}

	var buf bytes.Buffer
	if err := tw.Write(sampleReport(t), &buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got := buf.String()

	if !strings.HasPrefix(got, "User,Score,MaxScore,Level,FailedChecks") {
		t.Errorf("missing CSV header:\n%s", got)
	}
	for _, want := range []string{
		"bob,6,7,Strong,1",
		"alice,4,7,Medium,3",
		"admin,2,7,Weak,5",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("CSV output missing %q:\n%s", want, got)
		}
	}
}

func TestTemplateWriterTextSummary(t *testing.T) {
	tw, err := NewTemplateWriter(TemplateConfig{BuiltIn: "text-summary"})
	if err != nil {
		t.Fatalf("NewTemplateWriter: %v", err)
	}

	var buf bytes.Buffer
	if err := tw.Write(sampleReport(t), &buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got := buf.String()

	for _, want := range []string{
		"passaudit v",
		"audited:   3",
		"strong:    1",
		"medium:    1",
		"weak:      1",
		"alice: 4/7 (medium)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary output missing %q:\n%s", want, got)
		}
	}
}

func TestTemplateWriterCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.tmpl")
	if err := os.WriteFile(path, []byte("{{ len .Results }} audited"), 0644); err != nil {
		t.Fatal(err)
	}

	tw, err := NewTemplateWriter(TemplateConfig{TemplatePath: path})
	if err != nil {
		t.Fatalf("NewTemplateWriter: %v", err)
	}
	var buf bytes.Buffer
	if err := tw.Write(sampleReport(t), &buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if got := buf.String(); got != "3 audited" {
		t.Errorf("got %q, want %q", got, "3 audited")
	}
}

func TestTemplateWriterErrors(t *testing.T) {
	if _, err := NewTemplateWriter(TemplateConfig{}); err == nil {
		t.Error("expected error when no template is set")
	}
	if _, err := NewTemplateWriter(TemplateConfig{BuiltIn: "nope"}); err == nil {
		t.Error("expected error for unknown built-in")
	}
	if _, err := NewTemplateWriter(TemplateConfig{TemplatePath: "/does/not/exist.tmpl"}); err == nil {
		t.Error("expected error for missing template file")
	}
	if _, err := NewTemplateWriter(TemplateConfig{TemplateString: "{{ .Broken"}); err == nil {
		t.Error("expected error for malformed template")
	}
}

func TestTemplateWriterEscapesCSVFields(t *testing.T) {
	report := output.NewReport()
	report.Add(`eve,"the spy"`, policy.Evaluate("eve", "x"))

	tw, err := NewTemplateWriter(TemplateConfig{BuiltIn: "csv"})
	if err != nil {
		t.Fatalf("NewTemplateWriter: %v", err)
	}
	var buf bytes.Buffer
	if err := tw.Write(report, &buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"eve,""the spy"""`) {
		t.Errorf("CSV field not escaped:\n%s", buf.String())
	}
}

func TestRenderReceipt(t *testing.T) {
	order := store.Order{
		ID:       uuid.NewString(),
		PlacedAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
		Items: []store.PurchaseItem{
			{Name: "Coffee", Price: 4.50, Quantity: 2},
			{Name: "Bagel", Price: 1.25, Quantity: 1},
		},
		Total: 10.25,
	}

	var buf bytes.Buffer
	if err := RenderReceipt(&buf, "carol", order); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	got := buf.String()

	for _, want := range []string{
		"RECEIPT " + order.ID[:8],
		"2025-06-01 12:30:00",
		"Customer: carol",
		"Coffee x2 - $9.00",
		"Bagel x1 - $1.25",
		"Total: $10.25",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("receipt missing %q:\n%s", want, got)
		}
	}
}

func TestEscapeCSV(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"has,comma", `"has,comma"`},
		{`has"quote`, `"has""quote"`},
		{"has\nnewline", "\"has\nnewline\""},
	}
	for _, tt := range tests {
		if got := escapeCSV(tt.in); got != tt.want {
			t.Errorf("escapeCSV(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
