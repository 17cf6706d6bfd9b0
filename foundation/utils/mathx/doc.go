// Package mathx provides exact decimal values for monetary amounts.
//
// Package: mathx
// Title: Exact Decimal Values
// Description: Decimal wraps math/big.Rat with immutable value semantics and
//              the digit-count checks the SRO layouts require, such as
//              "16 integer digits and 2 decimal places" for amounts and
//              "3.9" for percentages. Decimals decode from JSON numbers or
//              strings and from YAML/TOML text.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-17 v0.3.0: Reduced to the SRO value type
//
// Usage:
//
//	premio := mathx.MustNewDecimal("1500.50")
//	premio.FitsDigits(16, 2) // true
//	premio.IsNegative()      // false
package mathx
