// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the SRO engine, its intake pipeline, report store and services.
//              Codes drive gRPC status mapping and metrics labels.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: Reduced to SRO codes, added rule-kind codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"
	CodeCanceled     Code = "CANCELED"

	// Storage
	CodeDatabaseError  Code = "DATABASE_ERROR"
	CodeDuplicateEntry Code = "DUPLICATE_ENTRY"

	// Service
	CodeServiceUnavailable    Code = "SERVICE_UNAVAILABLE"
	CodeServiceInitialization Code = "SERVICE_INITIALIZATION"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Intake
	CodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"
	CodeDecodeFailed      Code = "DECODE_FAILED"
	CodeUnknownEntity     Code = "UNKNOWN_ENTITY"

	// Validation
	CodeValidationFailed  Code = "VALIDATION_FAILED"
	CodeRequiredField     Code = "REQUIRED_FIELD"
	CodeInvalidFormat     Code = "INVALID_FORMAT"
	CodeValueOutOfRange   Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength     Code = "INVALID_LENGTH"
	CodeConditionalRule   Code = "CONDITIONAL_RULE"
	CodeOrderingViolation Code = "ORDERING_VIOLATION"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout, CodeCanceled,
		CodeDatabaseError, CodeDuplicateEntry,
		CodeServiceUnavailable, CodeServiceInitialization,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeUnsupportedFormat, CodeDecodeFailed, CodeUnknownEntity,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange,
		CodeInvalidLength, CodeConditionalRule, CodeOrderingViolation:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDatabaseError, CodeDuplicateEntry:
		return "database"
	case CodeServiceUnavailable, CodeServiceInitialization:
		return "service"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeUnsupportedFormat, CodeDecodeFailed, CodeUnknownEntity:
		return "intake"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange,
		CodeInvalidLength, CodeConditionalRule, CodeOrderingViolation:
		return "validation"
	default:
		return "generic"
	}
}

// IsClientError reports whether the code describes bad caller input rather
// than a failure of the system itself.
func (c Code) IsClientError() bool {
	switch c.Category() {
	case "validation", "intake":
		return true
	}
	return c == CodeInvalidInput || c == CodeNotFound
}
