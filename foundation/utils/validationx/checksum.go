// File: checksum.go
// Title: Brazilian Tax Identifier Check Digits
// Description: CPF (11 digits) and CNPJ (14 digits) check-digit validation.
//              Both use a weighted mod-11 reduction; identifiers whose digits
//              are all equal are rejected even though their digits match.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package validationx

import (
	"regexp"

	"github.com/msto63/sro/foundation/core/validation"
)

// Document type codes used by "tipoDocumento" fields
const (
	DocumentTypeCPF      = 1
	DocumentTypeCNPJ     = 2
	DocumentTypePassport = 3
	DocumentTypeOther    = 99
)

var (
	formattingPattern = regexp.MustCompile(`[^0-9]`)

	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// StripFormatting removes every non-digit, so "111.444.777-35" becomes "11144477735"
func StripFormatting(s string) string {
	return formattingPattern.ReplaceAllString(s, "")
}

// checkDigit reduces a weighted sum to a check digit
func checkDigit(sum int) int {
	d := 11 - sum%11
	if d > 9 {
		return 0
	}
	return d
}

// digitsOf returns the digits of s when s has exactly n ASCII digits that
// are not all equal
func digitsOf(s string, n int) ([]int, bool) {
	if len(s) != n {
		return nil, false
	}
	digits := make([]int, n)
	allEqual := true
	for i := 0; i < n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		digits[i] = int(c - '0')
		if digits[i] != digits[0] {
			allEqual = false
		}
	}
	if allEqual {
		return nil, false
	}
	return digits, true
}

// IsValidCPF reports whether s is an 11-digit CPF with matching check digits.
// s must contain digits only; see StripFormatting.
func IsValidCPF(s string) bool {
	digits, ok := digitsOf(s, 11)
	if !ok {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * (10 - i)
	}
	d1 := checkDigit(sum)

	sum = 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * (11 - i)
	}
	sum += d1 * 2
	d2 := checkDigit(sum)

	return digits[9] == d1 && digits[10] == d2
}

// IsValidCNPJ reports whether s is a 14-digit CNPJ with matching check digits.
// s must contain digits only; see StripFormatting.
func IsValidCNPJ(s string) bool {
	digits, ok := digitsOf(s, 14)
	if !ok {
		return false
	}

	sum := 0
	for i, w := range cnpjWeights1 {
		sum += digits[i] * w
	}
	d1 := checkDigit(sum)

	sum = 0
	for i := 0; i < 12; i++ {
		sum += digits[i] * cnpjWeights2[i]
	}
	sum += d1 * cnpjWeights2[12]
	d2 := checkDigit(sum)

	return digits[12] == d1 && digits[13] == d2
}

// CPF validates a CPF of exactly 11 digits. Formatted input such as
// "111.444.777-35" is rejected; strip it with StripFormatting first.
var CPF = stringRule("cpf", func(s string) validation.ValidationResult {
	if !IsValidCPF(s) {
		return fail(validation.CodeFormat, "cpf", "is not a valid CPF")
	}
	return ok()
})

// CNPJ validates a CNPJ of exactly 14 digits
var CNPJ = stringRule("cnpj", func(s string) validation.ValidationResult {
	if !IsValidCNPJ(s) {
		return fail(validation.CodeFormat, "cnpj", "is not a valid CNPJ")
	}
	return ok()
})

// Document validates a document number against its companion type code:
// CPF for 1, CNPJ for 2. Passports and other types are not checked.
func Document(tipo *int) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		if tipo == nil {
			return ok()
		}
		switch *tipo {
		case DocumentTypeCPF:
			return CPF(value)
		case DocumentTypeCNPJ:
			return CNPJ(value)
		}
		return ok()
	}
}
