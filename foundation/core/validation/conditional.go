// File: conditional.go
// Title: Conditional Rule Tables
// Description: Declarative tables of rules gated by a predicate over sibling
//              fields. A row whose predicate is false never evaluates its rule.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: ConditionalValidator with single predicate
// - 2026-10-17 v0.2.0: Replaced by ConditionalTable rows over named values

package validation

import (
	"fmt"
	"strings"
)

// Values holds the sibling field values a conditional table reads
type Values map[string]interface{}

// Predicate decides whether a conditional row applies
type Predicate func(Values) bool

// ConditionalRule is one row of a conditional table
type ConditionalRule struct {
	Name    string    // rule name reported on violation
	When    Predicate // gate over sibling values
	Field   string    // dependent field, read from Values
	Rule    Validator // rule applied to the dependent field
	Message string    // replaces the rule's own message when set
}

// ConditionalTable is the declarative conditional rule set of one entity
type ConditionalTable []ConditionalRule

// Evaluate applies every row whose predicate holds
func (t ConditionalTable) Evaluate(values Values) ValidationResult {
	result := NewValidationResult()
	for _, row := range t {
		if row.When != nil && !row.When(values) {
			continue
		}
		value := values[row.Field]
		r := row.Rule.Validate(value)
		if r.Valid {
			continue
		}
		for _, e := range r.Errors {
			message := e.Message
			if row.Message != "" {
				message = row.Message
			}
			rule := row.Name
			if rule == "" {
				rule = e.Rule
			}
			v, _ := Resolve(value)
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Code:    CodeConditional,
				Field:   row.Field,
				Rule:    rule,
				Phase:   PhaseCrossField,
				Message: composeMessage(row.Field, message),
				Value:   v,
			})
		}
	}
	return result
}

// EvaluateConditionals evaluates a table against values
func EvaluateConditionals(table ConditionalTable, values Values) ValidationResult {
	return table.Evaluate(values)
}

// Equals holds when the integer field equals want
func Equals(field string, want int) Predicate {
	return func(v Values) bool {
		n, ok := IntValue(v[field])
		return ok && n == want
	}
}

// In holds when the integer field is one of codes
func In(field string, codes ...int) Predicate {
	return func(v Values) bool {
		n, ok := IntValue(v[field])
		if !ok {
			return false
		}
		for _, c := range codes {
			if n == c {
				return true
			}
		}
		return false
	}
}

// Between holds when the integer field lies in [min, max]
func Between(field string, min, max int) Predicate {
	return func(v Values) bool {
		n, ok := IntValue(v[field])
		return ok && n >= min && n <= max
	}
}

// Present holds when the field has a value
func Present(field string) Predicate {
	return func(v Values) bool {
		return !IsAbsent(v[field])
	}
}

// Not negates a predicate
func Not(p Predicate) Predicate {
	return func(v Values) bool {
		return !p(v)
	}
}

// Describe renders codes as "4, 7 or 10" for row messages
func Describe(codes ...int) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = fmt.Sprint(c)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
