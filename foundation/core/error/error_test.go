// File: error_test.go
// Title: Core Error Tests
// Description: Tests for the Error type, wrapping, code lookups and severities.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Expected message 'something failed', got %q", err.Error())
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Expected code %s, got %s", CodeUnknown, err.Code())
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Expected severity medium, got %s", err.Severity())
	}
	if err.Timestamp().IsZero() {
		t.Error("Expected timestamp to be set")
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code     Code
		severity Severity
	}{
		{CodeValidationFailed, SeverityLow},
		{CodeRequiredField, SeverityLow},
		{CodeDecodeFailed, SeverityLow},
		{CodeDatabaseError, SeverityHigh},
		{CodeInvalidConfig, SeverityHigh},
		{CodeServiceUnavailable, SeverityCritical},
		{CodeInternal, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.severity {
				t.Errorf("Expected severity %s, got %s", tt.severity, err.Severity())
			}
		})
	}

	t.Run("explicit severity wins", func(t *testing.T) {
		err := New("x").WithSeverity(SeverityCritical).WithCode(CodeValidationFailed)
		if err.Severity() != SeverityCritical {
			t.Errorf("Expected explicit severity to be kept, got %s", err.Severity())
		}
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		if Wrap(nil, "context") != nil {
			t.Error("Expected nil when wrapping nil")
		}
	})

	t.Run("standard error", func(t *testing.T) {
		base := errors.New("disk full")
		err := Wrap(base, "failed to save report")

		if err.Error() != "failed to save report: disk full" {
			t.Errorf("Unexpected message %q", err.Error())
		}
		if !errors.Is(err, base) {
			t.Error("Expected errors.Is to find the cause")
		}
		if err.Code() != CodeUnknown {
			t.Errorf("Expected code %s, got %s", CodeUnknown, err.Code())
		}
	})

	t.Run("inherits code and details", func(t *testing.T) {
		base := New("not found").WithCode(CodeNotFound).WithDetail("id", "abc")
		err := Wrap(base, "show report")

		if err.Code() != CodeNotFound {
			t.Errorf("Expected inherited code, got %s", err.Code())
		}
		if err.Details()["id"] != "abc" {
			t.Errorf("Expected inherited detail, got %v", err.Details())
		}
		if err.RootCause() != base {
			t.Error("Expected root cause to be the original error")
		}
	})

	t.Run("formatted", func(t *testing.T) {
		err := Wrapf(New("refused"), "records[%d]", 3)
		if err.Error() != "records[3]: refused" {
			t.Errorf("Unexpected message %q", err.Error())
		}
		if msg := Newf("unknown entity %q", "apolice").Message(); msg != `unknown entity "apolice"` {
			t.Errorf("Unexpected message %q", msg)
		}
	})

	t.Run("truncates deep chains", func(t *testing.T) {
		var err error = errors.New("root")
		for i := 0; i < MaxErrorChainDepth+5; i++ {
			err = Wrapf(err, "level %d", i)
		}
		if chainDepth(err) > MaxErrorChainDepth+1 {
			t.Errorf("Expected chain to be truncated, got depth %d", chainDepth(err))
		}
		if !strings.Contains(err.Error(), "root") {
			t.Error("Expected truncated error to keep the root message")
		}
	})
}

func TestHasCodeThroughChain(t *testing.T) {
	base := New("bad record").WithCode(CodeValidationFailed)
	wrapped := fmt.Errorf("batch: %w", base)

	if !HasCode(wrapped, CodeValidationFailed) {
		t.Error("Expected HasCode to look through fmt wrapping")
	}
	if HasCode(wrapped, CodeNotFound) {
		t.Error("Expected HasCode to be false for other codes")
	}
	if GetCode(wrapped) != CodeValidationFailed {
		t.Errorf("Expected GetCode to find code, got %s", GetCode(wrapped))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("Expected CodeUnknown for plain errors")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := map[Code]string{
		CodeConditionalRule:   "validation",
		CodeOrderingViolation: "validation",
		CodeUnknownEntity:     "intake",
		CodeDatabaseError:     "database",
		CodeMissingConfig:     "configuration",
		CodeInternal:          "generic",
	}
	for code, want := range tests {
		if got := code.Category(); got != want {
			t.Errorf("%s: expected category %s, got %s", code, want, got)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("Expected unknown code to be invalid")
	}
	if !CodeInvalidLength.IsValid() {
		t.Error("Expected CodeInvalidLength to be valid")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("timeout"), "ping store").
		WithCode(CodeDatabaseError).
		WithOperation("health.check").
		WithDetail("path", "reports.db")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("Marshal failed: %v", mErr)
	}

	var decoded map[string]interface{}
	if uErr := json.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("Unmarshal failed: %v", uErr)
	}
	if decoded["code"] != "DATABASE_ERROR" {
		t.Errorf("Expected code DATABASE_ERROR, got %v", decoded["code"])
	}
	if decoded["operation"] != "health.check" {
		t.Errorf("Expected operation, got %v", decoded["operation"])
	}
	if decoded["cause"] != "timeout" {
		t.Errorf("Expected cause, got %v", decoded["cause"])
	}
}

func TestString(t *testing.T) {
	err := New("bad").WithCode(CodeInvalidInput).WithDetail("b", 2).WithDetail("a", 1)
	s := err.String()
	if !strings.Contains(s, "Details: {a=1, b=2}") {
		t.Errorf("Expected sorted details, got %q", s)
	}
}
