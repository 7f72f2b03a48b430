package policy

import (
	"strings"

	"github.com/passaudit/passaudit/pkg/defaults"
)

// Credentials is one username/password pair under evaluation.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

// Result is the outcome of evaluating one credential pair.
type Result struct {
	Score    int      `json:"score"`
	MaxScore int      `json:"max_score"`
	Level    Level    `json:"level"`
	Failures []string `json:"failures"`
}

// Evaluator runs the check battery. The zero value is not usable;
// construct with New.
type Evaluator struct {
	denylist map[string]struct{}
}

// New returns an Evaluator carrying the built-in denylist.
func New() *Evaluator {
	e := &Evaluator{denylist: make(map[string]struct{}, len(commonPasswords))}
	for _, w := range commonPasswords {
		e.denylist[w] = struct{}{}
	}
	return e
}

// Deny adds extra denylist entries. Entries match the lowercased
// password verbatim; they are lowercased here so callers can pass
// any casing.
func (e *Evaluator) Deny(words ...string) {
	for _, w := range words {
		w = strings.TrimSpace(strings.ToLower(w))
		if w != "" {
			e.denylist[w] = struct{}{}
		}
	}
}

// DenylistSize returns the number of denylist entries.
func (e *Evaluator) DenylistSize() int {
	return len(e.denylist)
}

// Evaluate scores one credential pair. The score starts at MaxScore and
// loses one point per failed check; reasons are recorded in check order.
// Any text input is valid, including empty strings.
func (e *Evaluator) Evaluate(username, password string) Result {
	c := Credentials{Username: username, Password: password}
	result := Result{
		Score:    defaults.MaxScore,
		MaxScore: defaults.MaxScore,
		Failures: []string{},
	}
	for _, chk := range e.checks() {
		if chk.fails(c) {
			result.Score--
			result.Failures = append(result.Failures, chk.reason)
		}
	}
	result.Level = LevelForScore(result.Score)
	return result
}

// Evaluate scores one credential pair with the built-in denylist only.
func Evaluate(username, password string) Result {
	return New().Evaluate(username, password)
}
