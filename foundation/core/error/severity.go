// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper prioritization
//              and log level selection.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-17 v0.1.1: Severity mapping for SRO codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller error such as a rejected record
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeServiceUnavailable:
		return SeverityCritical
	case CodeDatabaseError, CodeServiceInitialization, CodeConfigError,
		CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh
	case CodeInternal, CodeTimeout, CodeDuplicateEntry:
		return SeverityMedium
	}
	if code.IsClientError() || code == CodeCanceled {
		return SeverityLow
	}
	return SeverityMedium
}
