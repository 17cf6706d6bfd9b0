// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Defines standard interfaces, types, and codes for validation
//              across the SRO engine. Validators report rule violations as a
//              ValidationResult value instead of panicking or returning errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2026-10-17 v0.2.0: Rule kinds, phases and rule names on ValidationError

package validation

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/sro/foundation/core/error"
)

// Standard validation error codes. Each code maps to one violation kind.
const (
	CodeRequired    = "VALIDATION_REQUIRED"    // mandatory field absent
	CodeFormat      = "VALIDATION_FORMAT"      // pattern or checksum mismatch
	CodeRange       = "VALIDATION_RANGE"       // coded value or amount outside its domain
	CodeLength      = "VALIDATION_LENGTH"      // string or digit count outside its bounds
	CodeConditional = "VALIDATION_CONDITIONAL" // sibling-dependent requirement not met
	CodeOrdering    = "VALIDATION_ORDERING"    // date pair reversed or fact date in the future
	CodeType        = "VALIDATION_TYPE"        // value of an unexpected Go type
)

// Violation kinds reported to users
const (
	KindMissingRequiredField     = "MissingRequiredField"
	KindInvalidFormat            = "InvalidFormat"
	KindOutOfDomain              = "OutOfDomain"
	KindSizeViolation            = "SizeViolation"
	KindConditionalRuleViolation = "ConditionalRuleViolation"
	KindOrderingViolation        = "OrderingViolation"
)

// Kinds lists the violation kinds in phase order
var Kinds = []string{
	KindMissingRequiredField,
	KindInvalidFormat,
	KindOutOfDomain,
	KindSizeViolation,
	KindConditionalRuleViolation,
	KindOrderingViolation,
}

// Kind maps a validation code to its violation kind
func Kind(code string) string {
	switch code {
	case CodeRequired:
		return KindMissingRequiredField
	case CodeFormat:
		return KindInvalidFormat
	case CodeRange:
		return KindOutOfDomain
	case CodeLength:
		return KindSizeViolation
	case CodeConditional:
		return KindConditionalRuleViolation
	case CodeOrdering:
		return KindOrderingViolation
	default:
		return KindInvalidFormat
	}
}

// Validator defines the interface for all validation functions
type Validator interface {
	// Validate performs validation on a value and returns structured result
	Validate(value interface{}) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single rule violation
type ValidationError struct {
	Code    string      `json:"code"`
	Field   string      `json:"field,omitempty"`
	Rule    string      `json:"rule,omitempty"`
	Phase   Phase       `json:"phase"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Kind returns the violation kind of the error
func (e ValidationError) Kind() string {
	return Kind(e.Code)
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewValidationError creates a failed validation result with a single error
func NewValidationError(code, message string) ValidationResult {
	return ValidationResult{
		Valid:  false,
		Errors: []ValidationError{{Code: code, Message: message}},
	}
}

// NewRuleError creates a failed result naming the rule that was broken
func NewRuleError(code, rule, message string) ValidationResult {
	return ValidationResult{
		Valid:  false,
		Errors: []ValidationError{{Code: code, Rule: rule, Message: message}},
	}
}

// NewValidationErrorWithField creates a validation error for a specific field
func NewValidationErrorWithField(code, field, message string, value interface{}) ValidationResult {
	return ValidationResult{
		Valid:  false,
		Errors: []ValidationError{{Code: code, Field: field, Message: message, Value: value}},
	}
}

// AddError adds an error to an existing validation result
func (r *ValidationResult) AddError(code, message string) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Code: code, Message: message})
	return r
}

// AddFieldError adds a field-specific error to the validation result
func (r *ValidationResult) AddFieldError(code, field, message string, value interface{}) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Code: code, Field: field, Message: message, Value: value})
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns all error messages as a slice of strings
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// ErrorCodes returns all error codes as a slice of strings
func (r ValidationResult) ErrorCodes() []string {
	codes := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		codes[i] = err.Code
	}
	return codes
}

// HasError checks if the result contains a specific error code
func (r ValidationResult) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// HasFieldError checks if the result contains an error for the given field
func (r ValidationResult) HasFieldError(field string) bool {
	for _, err := range r.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

// ToError converts the validation result to a standard error.
// Returns nil if validation passed.
func (r ValidationResult) ToError() error {
	if r.Valid {
		return nil
	}
	if len(r.Errors) == 0 {
		return mdwerror.New("validation failed").WithCode(mdwerror.CodeValidationFailed)
	}

	first := r.Errors[0]
	err := mdwerror.New(first.Message).WithCode(codeFor(first.Code))
	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if first.Rule != "" {
		err = err.WithDetail("rule", first.Rule)
	}
	if len(r.Errors) > 1 {
		err = err.WithDetail("totalErrors", len(r.Errors))
		err = err.WithDetail("allMessages", r.ErrorMessages())
	}
	return err
}

func codeFor(code string) mdwerror.Code {
	switch code {
	case CodeRequired:
		return mdwerror.CodeRequiredField
	case CodeFormat:
		return mdwerror.CodeInvalidFormat
	case CodeRange:
		return mdwerror.CodeValueOutOfRange
	case CodeLength:
		return mdwerror.CodeInvalidLength
	case CodeConditional:
		return mdwerror.CodeConditionalRule
	case CodeOrdering:
		return mdwerror.CodeOrderingViolation
	default:
		return mdwerror.CodeValidationFailed
	}
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}
	parts := []string{"ValidationResult{valid: false"}
	if len(r.Errors) > 0 {
		parts = append(parts, fmt.Sprintf("errors: %d", len(r.Errors)))
		parts = append(parts, fmt.Sprintf("first: %s", r.Errors[0].Message))
	}
	return strings.Join(parts, ", ") + "}"
}

// String returns a human-readable representation of a validation error
func (e ValidationError) String() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field:%s", e.Field))
	}
	parts = append(parts, fmt.Sprintf("code:%s", e.Code))
	if e.Rule != "" {
		parts = append(parts, fmt.Sprintf("rule:%s", e.Rule))
	}
	parts = append(parts, fmt.Sprintf("message:%s", e.Message))
	return fmt.Sprintf("ValidationError{%s}", strings.Join(parts, ", "))
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()
	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
	}
	return combined
}
