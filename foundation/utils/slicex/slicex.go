// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic slice helpers used when assembling reports and
//              summaries: filtering, mapping, counting and grouping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-17 v0.2.0: Reduced to the helpers in use, added View

package slicex

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Count returns the number of elements matching the predicate
func Count[T any](slice []T, predicate func(T) bool) int {
	if slice == nil || predicate == nil {
		return 0
	}

	count := 0
	for _, item := range slice {
		if predicate(item) {
			count++
		}
	}
	return count
}

// GroupBy groups elements by a key function
func GroupBy[T any, K comparable](slice []T, keyFunc func(T) K) map[K][]T {
	if slice == nil || keyFunc == nil {
		return nil
	}

	groups := make(map[K][]T)
	for _, item := range slice {
		key := keyFunc(item)
		groups[key] = append(groups[key], item)
	}
	return groups
}

// Clone returns a shallow copy; nil stays nil
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}
	result := make([]T, len(slice))
	copy(result, slice)
	return result
}
