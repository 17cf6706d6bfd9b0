// File: decimal.go
// Title: Decimal Arithmetic Implementation
// Description: Implements exact decimal values for monetary amounts and
//              percentages. Backed by math/big.Rat so that digit-count rules
//              never see floating-point artifacts.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method with auto-rounding for financial values
// - 2026-10-17 v0.2.0: Immutable value semantics, digit checks, JSON/text codecs

package mathx

import (
	"bytes"
	"math/big"
	"strings"

	mdwerror "github.com/msto63/sro/foundation/core/error"
)

// maxScale bounds the fractional digits String will render exactly
const maxScale = 18

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// Decimal represents a decimal number with arbitrary precision.
// The zero value is 0. Decimals are never mutated after construction.
type Decimal struct {
	value *big.Rat
}

// NewDecimal creates a new Decimal from a string representation.
// Supports "123.45", "-67.89", "100" and exponent forms such as "1e3".
func NewDecimal(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "/") {
		return Decimal{}, invalidDecimal(s)
	}
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return Decimal{}, invalidDecimal(s)
	}
	return Decimal{value: rat}, nil
}

func invalidDecimal(s string) error {
	return mdwerror.Newf("invalid decimal format: %q", s).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("mathx.NewDecimal")
}

// MustNewDecimal creates a new Decimal from a string, panicking on error.
// Use this for constants and test fixtures.
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates a new Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// Add returns the sum of d and other
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Add(d.rat(), other.rat())}
}

// Subtract returns the difference of d and other
func (d Decimal) Subtract(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Sub(d.rat(), other.rat())}
}

// Abs returns the absolute value of d
func (d Decimal) Abs() Decimal {
	return Decimal{value: new(big.Rat).Abs(d.rat())}
}

// IsZero reports whether d == 0
func (d Decimal) IsZero() bool {
	return d.rat().Sign() == 0
}

// IsPositive reports whether d > 0
func (d Decimal) IsPositive() bool {
	return d.rat().Sign() > 0
}

// IsNegative reports whether d < 0
func (d Decimal) IsNegative() bool {
	return d.rat().Sign() < 0
}

// Sign returns -1, 0 or 1
func (d Decimal) Sign() int {
	return d.rat().Sign()
}

// Compare returns -1, 0 or 1 as d is less than, equal to or greater than other
func (d Decimal) Compare(other Decimal) int {
	return d.rat().Cmp(other.rat())
}

// Equal reports whether d and other represent the same number
func (d Decimal) Equal(other Decimal) bool {
	return d.Compare(other) == 0
}

// Scale returns the number of fractional digits needed to write d exactly,
// or -1 when d has no finite decimal expansion within maxScale digits.
func (d Decimal) Scale() int {
	r := d.rat()
	if r.IsInt() {
		return 0
	}
	denom := new(big.Int).Set(r.Denom())
	pow := big.NewInt(1)
	for scale := 1; scale <= maxScale; scale++ {
		pow.Mul(pow, bigTen)
		if new(big.Int).Mod(pow, denom).Sign() == 0 {
			return scale
		}
	}
	return -1
}

// IntegerDigits returns the number of digits of the integer part of |d|.
// Zero has no integer digits.
func (d Decimal) IntegerDigits() int {
	r := new(big.Rat).Abs(d.rat())
	whole := new(big.Int).Quo(r.Num(), r.Denom())
	if whole.Sign() == 0 {
		return 0
	}
	return len(whole.String())
}

// FitsDigits reports whether d has at most intDigits integer digits and
// at most fracDigits decimal places.
func (d Decimal) FitsDigits(intDigits, fracDigits int) bool {
	scale := d.Scale()
	if scale < 0 || scale > fracDigits {
		return false
	}
	return d.IntegerDigits() <= intDigits
}

// String renders d with the minimal number of decimal places
func (d Decimal) String() string {
	r := d.rat()
	if r.Denom().Cmp(bigOne) == 0 {
		return r.Num().String()
	}
	scale := d.Scale()
	if scale < 0 {
		return strings.TrimRight(strings.TrimRight(r.FloatString(maxScale), "0"), ".")
	}
	return r.FloatString(scale)
}

// StringFixed renders d rounded half away from zero to places decimals
func (d Decimal) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}
	return d.rat().FloatString(places)
}

// Float64 returns the nearest float64; for display and metrics only
func (d Decimal) Float64() float64 {
	f, _ := d.rat().Float64()
	return f
}

// MarshalJSON renders d as a JSON number
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	return d.UnmarshalText(bytes.Trim(data, `"`))
}

// MarshalText renders d for text encodings such as YAML and TOML
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a decimal string. Brazilian formatting such as
// "1.234,56" is not accepted; callers must send a plain decimal.
func (d *Decimal) UnmarshalText(text []byte) error {
	parsed, err := NewDecimal(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
