// File: decimal_test.go
// Title: Unit Tests for Decimal Values
// Description: Tests parsing, comparison, digit checks and codecs of Decimal.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation for decimal arithmetic
// - 2026-10-17 v0.2.0: Digit checks and codecs

package mathx

import (
	"encoding/json"
	"testing"
)

func TestNewDecimal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{"positive integer", "123", false, "123"},
		{"negative integer", "-456", false, "-456"},
		{"positive decimal", "123.45", false, "123.45"},
		{"negative decimal", "-67.89", false, "-67.89"},
		{"zero", "0", false, "0"},
		{"zero decimal", "0.00", false, "0"},
		{"leading zeros", "000123.450", false, "123.45"},
		{"exponent", "1.5e3", false, "1500"},
		{"surrounding spaces", " 10.5 ", false, "10.5"},
		{"fraction rejected", "1/2", true, ""},
		{"invalid format", "abc", true, ""},
		{"empty string", "", true, ""},
		{"multiple decimals", "12.34.56", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDecimal(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewDecimal(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && d.String() != tt.want {
				t.Errorf("NewDecimal(%q) = %s, want %s", tt.input, d.String(), tt.want)
			}
		})
	}
}

func TestZeroValue(t *testing.T) {
	var d Decimal
	if !d.IsZero() || d.String() != "0" || d.Sign() != 0 {
		t.Errorf("Expected zero value to behave as 0, got %s", d)
	}
	if !d.Equal(NewDecimalFromInt(0)) {
		t.Error("Expected zero value to equal 0")
	}
}

func TestSignAndCompare(t *testing.T) {
	neg := MustNewDecimal("-0.01")
	pos := MustNewDecimal("0.01")

	if !neg.IsNegative() || neg.IsPositive() {
		t.Error("Expected -0.01 to be negative")
	}
	if !pos.IsPositive() {
		t.Error("Expected 0.01 to be positive")
	}
	if neg.Compare(pos) != -1 || pos.Compare(neg) != 1 {
		t.Error("Unexpected comparison result")
	}
	if got := pos.Add(neg); !got.IsZero() {
		t.Errorf("Expected 0.01 + -0.01 = 0, got %s", got)
	}
	if got := NewDecimalFromInt(5).Subtract(pos).String(); got != "4.99" {
		t.Errorf("Expected 4.99, got %s", got)
	}
	if got := neg.Abs(); !got.Equal(pos) {
		t.Errorf("Expected |-0.01| = 0.01, got %s", got)
	}
}

func TestFitsDigits(t *testing.T) {
	tests := []struct {
		value     string
		intDigits int
		frac      int
		want      bool
	}{
		{"0", 16, 2, true},
		{"0.01", 16, 2, true},
		{"1500.50", 16, 2, true},
		{"1500.505", 16, 2, false},
		{"9999999999999999.99", 16, 2, true},
		{"10000000000000000", 16, 2, false},
		{"-123.4", 16, 2, true},
		{"100", 3, 9, true},
		{"1000", 3, 9, false},
		{"12.123456789", 3, 9, true},
		{"12.1234567891", 3, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := MustNewDecimal(tt.value).FitsDigits(tt.intDigits, tt.frac); got != tt.want {
				t.Errorf("FitsDigits(%s, %d, %d) = %v, want %v", tt.value, tt.intDigits, tt.frac, got, tt.want)
			}
		})
	}
}

func TestStringFixed(t *testing.T) {
	tests := map[string]string{
		"1500.5": "1500.50",
		"0":      "0.00",
		"2.345":  "2.35",
		"-2.345": "-2.35",
	}
	for in, want := range tests {
		if got := MustNewDecimal(in).StringFixed(2); got != want {
			t.Errorf("StringFixed(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestJSON(t *testing.T) {
	type payload struct {
		Valor   *Decimal `json:"valor"`
		Outro   *Decimal `json:"outro"`
		Ausente *Decimal `json:"ausente"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"valor": 1500.50, "outro": "12.3", "ausente": null}`), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if p.Valor == nil || p.Valor.String() != "1500.5" {
		t.Errorf("Expected valor 1500.5, got %v", p.Valor)
	}
	if p.Outro == nil || p.Outro.String() != "12.3" {
		t.Errorf("Expected outro 12.3, got %v", p.Outro)
	}
	if p.Ausente != nil {
		t.Error("Expected null to leave pointer nil")
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `{"valor":1500.5,"outro":12.3,"ausente":null}` {
		t.Errorf("Unexpected JSON %s", out)
	}

	if err := json.Unmarshal([]byte(`{"valor": "abc"}`), &p); err == nil {
		t.Error("Expected error for invalid decimal")
	}
}

func TestUnmarshalTextFromFloatFormatting(t *testing.T) {
	var d Decimal
	if err := d.UnmarshalText([]byte("1500.500000")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if d.String() != "1500.5" {
		t.Errorf("Expected 1500.5, got %s", d)
	}
}
