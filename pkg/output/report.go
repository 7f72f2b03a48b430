// Package output defines the audit report model shared by every writer.
package output

import (
	"time"

	"github.com/passaudit/passaudit/pkg/defaults"
	"github.com/passaudit/passaudit/pkg/policy"
)

// AuditResult is one evaluated credential pair as it appears in reports.
// Passwords are never recorded, only usernames and outcomes.
type AuditResult struct {
	Username string   `json:"username"`
	Score    int      `json:"score"`
	MaxScore int      `json:"max_score"`
	Level    string   `json:"level"`
	Failures []string `json:"failures"`
}

// Report collects the results of one audit run.
type Report struct {
	Tool        string        `json:"tool"`
	Version     string        `json:"version"`
	GeneratedAt time.Time     `json:"generated_at"`
	Results     []AuditResult `json:"results"`
}

// Summary aggregates a report by level.
type Summary struct {
	Total  int `json:"total"`
	Weak   int `json:"weak"`
	Medium int `json:"medium"`
	Strong int `json:"strong"`
}

// NewReport returns an empty report stamped with tool and version.
func NewReport() *Report {
	return &Report{
		Tool:        "passaudit",
		Version:     defaults.Version,
		GeneratedAt: time.Now().UTC(),
		Results:     []AuditResult{},
	}
}

// Add records one evaluation under the given username.
func (r *Report) Add(username string, result policy.Result) {
	r.Results = append(r.Results, AuditResult{
		Username: username,
		Score:    result.Score,
		MaxScore: result.MaxScore,
		Level:    result.Level.String(),
		Failures: result.Failures,
	})
}

// Summary tallies results per level.
func (r *Report) Summary() Summary {
	s := Summary{Total: len(r.Results)}
	for _, res := range r.Results {
		switch policy.Level(res.Level) {
		case policy.Weak:
			s.Weak++
		case policy.Medium:
			s.Medium++
		case policy.Strong:
			s.Strong++
		}
	}
	return s
}

// HasWeak reports whether any result was classified Weak. The CLI exit
// code keys off this.
func (r *Report) HasWeak() bool {
	for _, res := range r.Results {
		if policy.Level(res.Level) == policy.Weak {
			return true
		}
	}
	return false
}
