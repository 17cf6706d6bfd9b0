// File: timex.go
// Title: Calendar Date Utilities
// Description: Implements the calendar Date type used by SRO records. Dates
//              carry no time of day, so comparisons are by calendar day only.
//              Also provides age computation and timezone-aware "today".
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Added FormatDurationCompact function, fixed business day logic
// - 2026-10-17 v0.2.0: Reduced to the calendar Date type

package timex

import (
	"strings"
	"sync"
	"time"

	mdwerror "github.com/msto63/sro/foundation/core/error"
)

// ISO8601Date is the layout of SRO dates
const ISO8601Date = "2006-01-02"

// Date is a calendar date without time of day. The zero value is the zero date.
type Date struct {
	t time.Time
}

// NewDate creates a date from year, month and day. Out-of-range values
// are normalized as time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in t's own location
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses "YYYY-MM-DD" or an RFC 3339 timestamp. The time of day
// of a timestamp is discarded.
func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(ISO8601Date, value); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return DateOf(t), nil
	}
	return Date{}, mdwerror.Newf("invalid date %q, expected YYYY-MM-DD", value).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("timex.ParseDate")
}

// MustParseDate parses a date, panicking on error. For constants and tests.
func MustParseDate(value string) Date {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns the current date in the local timezone
func Today() Date {
	return DateOf(time.Now())
}

// TodayIn returns the current date in the named timezone
func TodayIn(tz string) (Date, error) {
	loc, err := getCachedLocation(tz)
	if err != nil {
		return Date{}, mdwerror.Wrap(err, "load timezone").
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("timezone", tz)
	}
	return DateOf(time.Now().In(loc)), nil
}

// Timezone cache for commonly used locations
var (
	timezoneCache = make(map[string]*time.Location)
	timezoneMu    sync.RWMutex
)

// getCachedLocation returns a cached timezone location or loads and caches it
func getCachedLocation(tz string) (*time.Location, error) {
	timezoneMu.RLock()
	if loc, exists := timezoneCache[tz]; exists {
		timezoneMu.RUnlock()
		return loc, nil
	}
	timezoneMu.RUnlock()

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}

	timezoneMu.Lock()
	timezoneCache[tz] = loc
	timezoneMu.Unlock()

	return loc, nil
}

// IsZero reports whether d is the zero date
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Year returns the year of d
func (d Date) Year() int {
	return d.t.Year()
}

// Month returns the month of d
func (d Date) Month() time.Month {
	return d.t.Month()
}

// Day returns the day of month of d
func (d Date) Day() int {
	return d.t.Day()
}

// Before reports whether d is strictly before other
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d is strictly after other
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal reports whether d and other are the same day
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Compare returns -1, 0 or 1 as d is before, equal to or after other
func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

// AddDays returns d shifted by n days
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// AddYears returns d shifted by n years
func (d Date) AddYears(n int) Date {
	return Date{t: d.t.AddDate(n, 0, 0)}
}

// Time returns midnight UTC of d
func (d Date) Time() time.Time {
	return d.t
}

// String renders d as YYYY-MM-DD
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(ISO8601Date)
}

// MarshalText renders d as YYYY-MM-DD
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses YYYY-MM-DD or RFC 3339
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Age calculates the age in full years on the reference date
func Age(birth, on Date) int {
	age := on.Year() - birth.Year()
	if on.Month() < birth.Month() ||
		(on.Month() == birth.Month() && on.Day() < birth.Day()) {
		age--
	}
	return age
}
