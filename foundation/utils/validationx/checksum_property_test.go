// File: checksum_property_test.go
// Title: Check Digit Property Tests
// Description: Property-based tests for CPF and CNPJ: identifiers built with
//              correct check digits are accepted and any altered check digit
//              is rejected.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package validationx

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// withCheckDigits appends the two mod-11 check digits for the given weights
func withCheckDigits(base []int, w1, w2 []int) []int {
	digits := append([]int(nil), base...)
	sum := 0
	for i, w := range w1 {
		sum += digits[i] * w
	}
	digits = append(digits, checkDigit(sum))
	sum = 0
	for i, w := range w2 {
		sum += digits[i] * w
	}
	return append(digits, checkDigit(sum))
}

func join(digits []int) string {
	var b strings.Builder
	for _, d := range digits {
		b.WriteString(strconv.Itoa(d))
	}
	return b.String()
}

func allEqual(digits []int) bool {
	for _, d := range digits {
		if d != digits[0] {
			return false
		}
	}
	return true
}

var (
	cpfWeights1 = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeights2 = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
)

func TestCPFProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("CPF with computed check digits is valid", prop.ForAll(
		func(base []int) bool {
			cpf := withCheckDigits(base, cpfWeights1, cpfWeights2)
			if allEqual(cpf) {
				return !IsValidCPF(join(cpf))
			}
			return IsValidCPF(join(cpf))
		},
		gen.SliceOfN(9, gen.IntRange(0, 9)),
	))

	properties.Property("CPF with altered last digit is invalid", prop.ForAll(
		func(base []int, delta int) bool {
			cpf := withCheckDigits(base, cpfWeights1, cpfWeights2)
			cpf[10] = (cpf[10] + delta) % 10
			return !IsValidCPF(join(cpf))
		},
		gen.SliceOfN(9, gen.IntRange(0, 9)),
		gen.IntRange(1, 9),
	))

	properties.Property("CPF rejects every length but 11", prop.ForAll(
		func(digits []int) bool {
			if len(digits) == 11 {
				return true
			}
			return !IsValidCPF(join(digits))
		},
		gen.SliceOf(gen.IntRange(0, 9)),
	))

	properties.TestingRun(t)
}

func TestCNPJProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("CNPJ with computed check digits is valid", prop.ForAll(
		func(base []int) bool {
			cnpj := withCheckDigits(base, cnpjWeights1, cnpjWeights2)
			if allEqual(cnpj) {
				return !IsValidCNPJ(join(cnpj))
			}
			return IsValidCNPJ(join(cnpj))
		},
		gen.SliceOfN(12, gen.IntRange(0, 9)),
	))

	properties.Property("CNPJ with altered first check digit is invalid", prop.ForAll(
		func(base []int, delta int) bool {
			cnpj := withCheckDigits(base, cnpjWeights1, cnpjWeights2)
			cnpj[12] = (cnpj[12] + delta) % 10
			return !IsValidCNPJ(join(cnpj))
		},
		gen.SliceOfN(12, gen.IntRange(0, 9)),
		gen.IntRange(1, 9),
	))

	properties.TestingRun(t)
}
