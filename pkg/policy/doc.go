// Package policy implements the password policy evaluator.
//
// An evaluation runs a fixed, ordered battery of checks against a
// username/password pair. Every check is an independent predicate over the
// two strings: each failed check costs one point off a perfect score and
// contributes one human-readable reason. The final score is bucketed into
// a qualitative Level (Weak, Medium, Strong).
//
// Evaluation is a pure function of its inputs. It performs no I/O, keeps
// no state between calls, and is safe for concurrent use.
//
// Usage:
//
//	result := policy.Evaluate("alice", "s3cret!Pass")
//	fmt.Printf("%d/%d %s\n", result.Score, result.MaxScore, result.Level)
//	for _, reason := range result.Failures {
//	    fmt.Println("-", reason)
//	}
package policy
