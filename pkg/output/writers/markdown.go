package writers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/passaudit/passaudit/pkg/output"
)

// Compile-time interface check.
var _ ReportWriter = (*MarkdownWriter)(nil)

// MarkdownConfig configures the Markdown report writer.
type MarkdownConfig struct {
	// Title is the report title (default: "Password Audit Report")
	Title string

	// OmitReasons drops the per-user failed-check sections.
	OmitReasons bool
}

// MarkdownWriter renders the report as a GitHub-flavored Markdown
// document: summary table first, then one section per audited user.
type MarkdownWriter struct {
	cfg MarkdownConfig
}

// NewMarkdownWriter creates a Markdown report writer.
func NewMarkdownWriter(cfg MarkdownConfig) *MarkdownWriter {
	if cfg.Title == "" {
		cfg.Title = "Password Audit Report"
	}
	return &MarkdownWriter{cfg: cfg}
}

// Write renders the report to w.
func (mw *MarkdownWriter) Write(report *output.Report, w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", mw.cfg.Title)
	fmt.Fprintf(&b, "Generated by %s v%s on %s.\n\n",
		report.Tool, report.Version, report.GeneratedAt.Format(time.RFC3339))

	s := report.Summary()
	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "| Level | Count |\n|-------|-------|\n")
	fmt.Fprintf(&b, "| Strong | %d |\n| Medium | %d |\n| Weak | %d |\n| **Total** | **%d** |\n\n",
		s.Strong, s.Medium, s.Weak, s.Total)

	fmt.Fprintf(&b, "## Results\n\n")
	fmt.Fprintf(&b, "| User | Score | Level | Failed Checks |\n|------|-------|-------|---------------|\n")
	for _, res := range report.Results {
		fmt.Fprintf(&b, "| %s | %d/%d | %s | %d |\n",
			escapePipes(res.Username), res.Score, res.MaxScore, res.Level, len(res.Failures))
	}
	b.WriteString("\n")

	if !mw.cfg.OmitReasons {
		for _, res := range report.Results {
			if len(res.Failures) == 0 {
				continue
			}
			fmt.Fprintf(&b, "### %s\n\n", escapePipes(res.Username))
			for _, reason := range res.Failures {
				fmt.Fprintf(&b, "- %s\n", reason)
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// escapePipes keeps user-supplied names from breaking table cells.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
