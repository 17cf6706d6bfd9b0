// Package slicex provides generic slice helpers and the read-only View list.
//
// Package: slicex
// Title: Slice Utilities and Read-only Lists
// Description: Nested lists of SRO entities are stored as View values: copied
//              on construction, never nil, and without mutators. The helper
//              functions build summaries over plain slices.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2026-10-17 v0.2.0: View type
//
// Usage:
//
//	segurados := slicex.Freeze(input) // input may be nil
//	for i, s := range segurados.All() {
//		...
//	}
package slicex
