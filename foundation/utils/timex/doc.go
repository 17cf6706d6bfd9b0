// Package timex provides the calendar Date type of the SRO engine.
//
// Package: timex
// Title: Calendar Dates
// Description: SRO records carry calendar dates ("AAAA-MM-DD") without time of
//              day. Date wraps a UTC midnight time.Time so that "not in the
//              future" and "end on or after start" compare whole days only.
//              Dates decode from JSON, YAML and TOML strings via
//              encoding.TextUnmarshaler.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples
// - 2026-10-17 v0.2.0: Calendar Date type
//
// Usage:
//
//	inicio := timex.MustParseDate("2024-01-01")
//	termino := inicio.AddDays(-1)
//	termino.Before(inicio) // true
//	timex.Age(timex.MustParseDate("1990-05-10"), timex.Today())
package timex
