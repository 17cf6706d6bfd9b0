// File: common.go
// Title: Validation Framework Utilities
// Description: Absence handling shared by the framework and the concrete
//              validators. Absent values are skipped by every rule except
//              presence checks.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework utilities
// - 2026-10-17 v0.2.0: Resolve/IsBlank replace the reflection length helpers

package validation

import (
	"reflect"
	"strings"
)

// Resolve dereferences pointers and reports whether a value is present.
// nil, nil pointers and the empty string are absent.
func Resolve(value interface{}) (interface{}, bool) {
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		value = rv.Elem().Interface()
	}
	if s, ok := value.(string); ok && s == "" {
		return nil, false
	}
	return value, true
}

// IsAbsent reports whether a value is absent
func IsAbsent(value interface{}) bool {
	_, ok := Resolve(value)
	return !ok
}

// IsBlank reports whether a value is absent or a whitespace-only string
func IsBlank(value interface{}) bool {
	v, ok := Resolve(value)
	if !ok {
		return true
	}
	if s, isString := v.(string); isString {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// IntValue extracts an int from an int, *int or other integer value
func IntValue(value interface{}) (int, bool) {
	v, ok := Resolve(value)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}
