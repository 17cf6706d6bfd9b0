// Package report records the outcome of validation runs: one Report per
// batch with a RecordOutcome per input record.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/sro/foundation/core/validation"
)

// Violation is one broken invariant of a record
type Violation struct {
	Field   string `json:"field,omitempty"`
	Rule    string `json:"rule,omitempty"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// RecordOutcome is the result for one input record
type RecordOutcome struct {
	Index      int         `json:"index"`
	Key        string      `json:"key,omitempty"`
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations,omitempty"`
}

// Report summarizes one validation run
type Report struct {
	ID        string          `json:"id"`
	Source    string          `json:"source"`
	Entity    string          `json:"entity"`
	StartedAt time.Time       `json:"started_at"`
	Duration  time.Duration   `json:"duration"`
	Total     int             `json:"total"`
	Valid     int             `json:"valid"`
	Rejected  int             `json:"rejected"`
	Records   []RecordOutcome `json:"records,omitempty"`
}

// New starts a report for a run over source
func New(source, entity string) *Report {
	return &Report{
		ID:        uuid.NewString(),
		Source:    source,
		Entity:    entity,
		StartedAt: time.Now().UTC(),
	}
}

// Add appends an outcome and updates the counters
func (r *Report) Add(outcome RecordOutcome) {
	r.Records = append(r.Records, outcome)
	r.Total++
	if outcome.Valid {
		r.Valid++
	} else {
		r.Rejected++
	}
}

// Finish stamps the run duration
func (r *Report) Finish() {
	r.Duration = time.Since(r.StartedAt)
}

// OK reports whether every record was accepted
func (r *Report) OK() bool {
	return r.Rejected == 0
}

// Summary returns a one-line description of the run
func (r *Report) Summary() string {
	return fmt.Sprintf("%s: %d records, %d valid, %d rejected (%s)",
		r.Entity, r.Total, r.Valid, r.Rejected, r.Duration.Round(time.Millisecond))
}

// KindCounts counts violations per kind over all records
func (r *Report) KindCounts() map[string]int {
	counts := make(map[string]int)
	for _, rec := range r.Records {
		for _, v := range rec.Violations {
			counts[v.Kind]++
		}
	}
	return counts
}

// RejectedRecords returns the outcomes carrying a violation of kind, or
// every rejected outcome when kind is empty.
func (r *Report) RejectedRecords(kind string) []RecordOutcome {
	var out []RecordOutcome
	for _, rec := range r.Records {
		if rec.Valid {
			continue
		}
		if kind == "" || rec.hasKind(kind) {
			out = append(out, rec)
		}
	}
	return out
}

func (o RecordOutcome) hasKind(kind string) bool {
	for _, v := range o.Violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// Accepted builds the outcome of a record that passed
func Accepted(index int, key string) RecordOutcome {
	return RecordOutcome{Index: index, Key: key, Valid: true}
}

// Rejected builds the outcome of a record from its construction error. A
// *validation.Rejection contributes its violations; any other error is
// recorded as a single violation without field.
func Rejected(index int, key string, err error) RecordOutcome {
	outcome := RecordOutcome{Index: index, Key: key}
	rej, ok := validation.AsRejection(err)
	if !ok {
		outcome.Violations = []Violation{{Kind: "Error", Message: err.Error()}}
		return outcome
	}
	outcome.Violations = Violations(rej.Violations)
	return outcome
}

// Violations converts validation errors into report violations
func Violations(errs []validation.ValidationError) []Violation {
	out := make([]Violation, len(errs))
	for i, e := range errs {
		out[i] = Violation{Field: e.Field, Rule: e.Rule, Kind: e.Kind(), Message: e.Message}
	}
	return out
}

// SortedKinds returns the kinds of counts ordered by descending count, then name
func SortedKinds(counts map[string]int) []string {
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if counts[kinds[i]] != counts[kinds[j]] {
			return counts[kinds[i]] > counts[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})
	return kinds
}
