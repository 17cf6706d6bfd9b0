// File: validationx.go
// Title: Primitive Validators
// Description: Stateless validators for SRO fields: presence, length, integer
//              domains, amounts, dates and fixed formats. Every validator except
//              Required skips absent values (nil, nil pointers, "").
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2026-10-17 v0.2.0: SRO primitives on int, Decimal and Date values

package validationx

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/mathx"
	"github.com/msto63/sro/foundation/utils/timex"
)

// Fixed patterns, compiled once
var (
	uuidPattern     = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
	countryPattern  = regexp.MustCompile(`^[A-Z]{3}$`)
	cepPattern      = regexp.MustCompile(`^[0-9]{5}-?[0-9]{3}$`)
	digitsPattern   = regexp.MustCompile(`^[0-9]+$`)
)

// Regex cache for compiled patterns to avoid recompilation
var (
	regexCache = make(map[string]*regexp.Regexp)
	regexMu    sync.RWMutex
)

// getCompiledRegex returns a cached compiled regex or compiles and caches it
func getCompiledRegex(pattern string) (*regexp.Regexp, error) {
	regexMu.RLock()
	if regex, exists := regexCache[pattern]; exists {
		regexMu.RUnlock()
		return regex, nil
	}
	regexMu.RUnlock()

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	regexMu.Lock()
	regexCache[pattern] = regex
	regexMu.Unlock()

	return regex, nil
}

func ok() validation.ValidationResult {
	return validation.NewValidationResult()
}

func fail(code, rule, format string, args ...interface{}) validation.ValidationResult {
	return validation.NewRuleError(code, rule, fmt.Sprintf(format, args...))
}

func typeError(rule, want string, value interface{}) validation.ValidationResult {
	return fail(validation.CodeType, rule, "must be %s, got %T", want, value)
}

// CharCount counts characters after NFC normalization, so a precomposed
// and a decomposed "ç" both count as one.
func CharCount(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// ===============================
// Presence
// ===============================

// Required validates that a value is present and, for strings, not blank
var Required validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	if validation.IsBlank(value) {
		return fail(validation.CodeRequired, "required", "is required")
	}
	return ok()
}

// ===============================
// Strings
// ===============================

func stringRule(rule string, check func(string) validation.ValidationResult) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		v, present := validation.Resolve(value)
		if !present {
			return ok()
		}
		s, isString := v.(string)
		if !isString {
			return typeError(rule, "a string", v)
		}
		return check(s)
	}
}

// MinLength validates the minimum character count
func MinLength(min int) validation.ValidatorFunc {
	return stringRule("minLength", func(s string) validation.ValidationResult {
		if CharCount(s) < min {
			return fail(validation.CodeLength, "minLength", "must have at least %d characters", min)
		}
		return ok()
	})
}

// MaxLength validates the maximum character count
func MaxLength(max int) validation.ValidatorFunc {
	return stringRule("maxLength", func(s string) validation.ValidationResult {
		if CharCount(s) > max {
			return fail(validation.CodeLength, "maxLength", "must have at most %d characters", max)
		}
		return ok()
	})
}

// Length validates an exact character count
func Length(length int) validation.ValidatorFunc {
	return stringRule("length", func(s string) validation.ValidationResult {
		if CharCount(s) != length {
			return fail(validation.CodeLength, "length", "must have exactly %d characters", length)
		}
		return ok()
	})
}

// OnlyDigits validates that a string contains only ASCII digits
var OnlyDigits = stringRule("onlyDigits", func(s string) validation.ValidationResult {
	if !digitsPattern.MatchString(s) {
		return fail(validation.CodeFormat, "onlyDigits", "must contain only digits")
	}
	return ok()
})

// MaxDigits validates the digit count of an integer or a digit string
func MaxDigits(max int) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		v, present := validation.Resolve(value)
		if !present {
			return ok()
		}
		var digits string
		switch n := v.(type) {
		case int:
			digits = strings.TrimPrefix(strconv.Itoa(n), "-")
		case string:
			digits = n
		default:
			return typeError("maxDigits", "an integer or a digit string", v)
		}
		if len(digits) > max {
			return fail(validation.CodeLength, "maxDigits", "must have at most %d digits", max)
		}
		return ok()
	}
}

// ===============================
// Integer domains and amounts
// ===============================

// compareInt compares an int or Decimal to bound; ok is false for other types
func compareInt(v interface{}, bound int) (int, bool) {
	switch n := v.(type) {
	case int:
		switch {
		case n < bound:
			return -1, true
		case n > bound:
			return 1, true
		}
		return 0, true
	case mathx.Decimal:
		return n.Compare(mathx.NewDecimalFromInt(int64(bound))), true
	}
	return 0, false
}

// Range validates min <= value <= max, inclusive
func Range(min, max int) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		v, present := validation.Resolve(value)
		if !present {
			return ok()
		}
		lo, isNumber := compareInt(v, min)
		if !isNumber {
			return typeError("range", "a number", v)
		}
		hi, _ := compareInt(v, max)
		if lo < 0 || hi > 0 {
			return fail(validation.CodeRange, "range", "must be between %d and %d", min, max)
		}
		return ok()
	}
}

// OneOf validates that an integer code is one of codes
func OneOf(codes ...int) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		v, present := validation.Resolve(value)
		if !present {
			return ok()
		}
		n, isInt := v.(int)
		if !isInt {
			return typeError("oneOf", "an integer", v)
		}
		for _, c := range codes {
			if n == c {
				return ok()
			}
		}
		return fail(validation.CodeRange, "oneOf", "must be one of %s", validation.Describe(codes...))
	}
}

// NonNegative validates value >= 0
var NonNegative validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	v, present := validation.Resolve(value)
	if !present {
		return ok()
	}
	c, isNumber := compareInt(v, 0)
	if !isNumber {
		return typeError("nonNegative", "a number", v)
	}
	if c < 0 {
		return fail(validation.CodeRange, "nonNegative", "must not be negative")
	}
	return ok()
}

// Positive validates value > 0
var Positive validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	v, present := validation.Resolve(value)
	if !present {
		return ok()
	}
	c, isNumber := compareInt(v, 0)
	if !isNumber {
		return typeError("positive", "a number", v)
	}
	if c <= 0 {
		return fail(validation.CodeRange, "positive", "must be greater than zero")
	}
	return ok()
}

// EqualsZero validates value == 0; the sentinel for flagged amounts
var EqualsZero validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	v, present := validation.Resolve(value)
	if !present {
		return ok()
	}
	c, isNumber := compareInt(v, 0)
	if !isNumber {
		return typeError("equalsZero", "a number", v)
	}
	if c != 0 {
		if _, isDecimal := v.(mathx.Decimal); isDecimal {
			return fail(validation.CodeRange, "equalsZero", "must be 0.00")
		}
		return fail(validation.CodeRange, "equalsZero", "must be 0")
	}
	return ok()
}

// Digits validates that a decimal has at most intDigits integer digits
// and fracDigits decimal places, as in the "16.2" amount layout
func Digits(intDigits, fracDigits int) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		v, present := validation.Resolve(value)
		if !present {
			return ok()
		}
		d, isDecimal := v.(mathx.Decimal)
		if !isDecimal {
			return typeError("digits", "a decimal", v)
		}
		if !d.FitsDigits(intDigits, fracDigits) {
			return fail(validation.CodeLength, "digits",
				"must have at most %d integer digits and %d decimal places", intDigits, fracDigits)
		}
		return ok()
	}
}

// Amount is the layout of monetary values: 16 integer digits, 2 decimals
var Amount = Digits(16, 2)

// Percentage is the layout of percentages: 3 integer digits, 9 decimals
var Percentage = Digits(3, 9)

// ===============================
// Dates
// ===============================

func dateRule(rule string, check func(timex.Date) validation.ValidationResult) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		v, present := validation.Resolve(value)
		if !present {
			return ok()
		}
		d, isDate := v.(timex.Date)
		if !isDate {
			return typeError(rule, "a date", v)
		}
		return check(d)
	}
}

// NotFuture validates that a date is not after today
func NotFuture(today timex.Date) validation.ValidatorFunc {
	return dateRule("notFuture", func(d timex.Date) validation.ValidationResult {
		if d.After(today) {
			return fail(validation.CodeOrdering, "notFuture", "must not be in the future")
		}
		return ok()
	})
}

// Past validates that a date is strictly before today
func Past(today timex.Date) validation.ValidatorFunc {
	return dateRule("past", func(d timex.Date) validation.ValidationResult {
		if !d.Before(today) {
			return fail(validation.CodeOrdering, "past", "must be in the past")
		}
		return ok()
	})
}

// OnOrAfter validates that the end date field is on or after the start
// date. An absent start date skips the rule.
func OnOrAfter(field, startField string, start *timex.Date) validation.ValidatorFunc {
	return dateRule("onOrAfter", func(d timex.Date) validation.ValidationResult {
		if start == nil || start.IsZero() {
			return ok()
		}
		if d.Before(*start) {
			return fail(validation.CodeOrdering, "onOrAfter",
				"end date %s must be on or after start date %s", field, startField)
		}
		return ok()
	})
}

// AgeBetween validates that a birth date gives an age in [min, max] today
func AgeBetween(today timex.Date, min, max int) validation.ValidatorFunc {
	return dateRule("ageBetween", func(d timex.Date) validation.ValidationResult {
		age := timex.Age(d, today)
		if age < min || age > max {
			return fail(validation.CodeRange, "ageBetween", "must give an age between %d and %d years", min, max)
		}
		return ok()
	})
}

// ===============================
// Formats
// ===============================

// UUID validates the 8-4-4-4-12 hexadecimal form; input case is ignored
var UUID = stringRule("uuid", func(s string) validation.ValidationResult {
	if !uuidPattern.MatchString(strings.ToLower(s)) {
		return fail(validation.CodeFormat, "uuid", "must be a UUID in the form 12345678-1234-1234-1234-123456789abc")
	}
	return ok()
})

// Currency validates an ISO 4217 alphabetic code
var Currency = stringRule("currency", func(s string) validation.ValidationResult {
	if !currencyPattern.MatchString(s) {
		return fail(validation.CodeFormat, "currency", "must be an ISO 4217 currency code (e.g. BRL, USD, EUR)")
	}
	return ok()
})

// Country validates an ISO 3166-1 alpha-3 code
var Country = stringRule("country", func(s string) validation.ValidationResult {
	if !countryPattern.MatchString(s) {
		return fail(validation.CodeFormat, "country", "must be an ISO 3166-1 alpha-3 country code (e.g. BRA, USA)")
	}
	return ok()
})

// CEP validates a Brazilian postal code, with or without the hyphen
var CEP = stringRule("cep", func(s string) validation.ValidationResult {
	if !cepPattern.MatchString(s) {
		return fail(validation.CodeFormat, "cep", "must be a CEP in the form 12345-678")
	}
	return ok()
})

// Pattern validates a string against a regular expression; description
// names the expected form in the message
func Pattern(pattern, description string) validation.ValidatorFunc {
	return stringRule("pattern", func(s string) validation.ValidationResult {
		regex, err := getCompiledRegex(pattern)
		if err != nil {
			return fail(validation.CodeFormat, "pattern", "must use a valid pattern, %q does not compile", pattern)
		}
		if !regex.MatchString(s) {
			return fail(validation.CodeFormat, "pattern", "must be %s", description)
		}
		return ok()
	})
}

// IsValidUUID reports whether s is a UUID in 8-4-4-4-12 form
func IsValidUUID(s string) bool {
	return uuidPattern.MatchString(strings.ToLower(s))
}
