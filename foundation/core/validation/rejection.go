// File: rejection.go
// Title: Entity Rejection
// Description: Rejection is the error returned when an entity cannot be
//              constructed. It carries every violation in evaluation order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package validation

import (
	"errors"
	"fmt"
	"strings"

	mdwerror "github.com/msto63/sro/foundation/core/error"
)

// Rejection describes why an entity was not constructed
type Rejection struct {
	Entity     string
	Violations []ValidationError
}

// Reject converts a failed result into a *Rejection; nil when valid
func (r ValidationResult) Reject(entity string) error {
	if r.Valid {
		return nil
	}
	violations := make([]ValidationError, len(r.Errors))
	copy(violations, r.Errors)
	return &Rejection{Entity: entity, Violations: violations}
}

// Error reports the first violation and how many follow
func (r *Rejection) Error() string {
	if len(r.Violations) == 0 {
		return fmt.Sprintf("%s rejected", r.Entity)
	}
	msg := fmt.Sprintf("%s rejected: %s", r.Entity, r.Violations[0].Message)
	if n := len(r.Violations) - 1; n > 0 {
		msg += fmt.Sprintf(" (and %d more)", n)
	}
	return msg
}

// First returns the violation a fail-fast constructor would have reported
func (r *Rejection) First() ValidationError {
	if len(r.Violations) == 0 {
		return ValidationError{}
	}
	return r.Violations[0]
}

// Messages returns the message of every violation
func (r *Rejection) Messages() []string {
	out := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		out[i] = v.Message
	}
	return out
}

// Prefix returns a copy whose field names are prefixed by path, as in "segurados[0]"
func (r *Rejection) Prefix(path string) *Rejection {
	out := &Rejection{Entity: r.Entity, Violations: make([]ValidationError, len(r.Violations))}
	for i, v := range r.Violations {
		if v.Field != "" {
			if strings.HasPrefix(v.Message, v.Field) {
				v.Message = path + "." + v.Message
			}
			v.Field = path + "." + v.Field
		} else {
			v.Field = path
		}
		out.Violations[i] = v
	}
	return out
}

// Unwrap exposes the rejection as a VALIDATION_FAILED *mdwerror.Error
func (r *Rejection) Unwrap() error {
	return mdwerror.New(r.Error()).
		WithCode(mdwerror.CodeValidationFailed).
		WithDetail("entity", r.Entity).
		WithDetail("violations", len(r.Violations))
}

// AsRejection finds a *Rejection in err's chain
func AsRejection(err error) (*Rejection, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
