// Copyright 2026 Peter Edge
//
// All rights reserved.

package bsdate

import (
	"fmt"
	"strconv"
	"strings"
)

// Date is a Bikram Sambat calendar date.
//
// A Date is a plain value. Whether it exists in the calendar depends on the
// data source, see Converter.IsValidDate.
type Date struct {
	// Year is the Bikram Sambat year (e.g., 2081).
	Year int
	// Month is the month of the year, starting at 1 (Baisakh).
	Month int
	// Day is the day of the month, starting at 1.
	Day int
}

// ParseDate parses a string in YYYY-MM-DD format.
//
// Only the shape of the input is checked: month must be within 1-12 and day
// within 1-32. Use Converter.IsValidDate to check the date against the calendar.
func ParseDate(s string) (Date, error) {
	year, month, day, err := ParseYYYYMMDD(s)
	if err != nil {
		return Date{}, err
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: month %d out of range in %q", ErrMalformedInput, month, s)
	}
	if day < 1 || day > 32 {
		return Date{}, fmt.Errorf("%w: day %d out of range in %q", ErrMalformedInput, day, s)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseYYYYMMDD splits a YYYY-MM-DD string into its numeric components.
//
// The components are not range-checked. Calendar-agnostic so that callers
// can inspect the year before deciding which calendar the input is in.
func ParseYYYYMMDD(s string) (year int, month int, day int, _ error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return 0, 0, 0, fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrMalformedInput, s)
	}
	values := make([]int, 3)
	for i, part := range parts {
		if !isDigits(part) {
			return 0, 0, 0, fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrMalformedInput, s)
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrMalformedInput, s)
		}
		values[i] = value
	}
	return values[0], values[1], values[2], nil
}

// String returns the date in YYYY-MM-DD format.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsZero reports whether date fields are set to their default value.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Before reports whether d occurs before d2.
func (d Date) Before(d2 Date) bool {
	if d.Year != d2.Year {
		return d.Year < d2.Year
	}
	if d.Month != d2.Month {
		return d.Month < d2.Month
	}
	return d.Day < d2.Day
}

// Compare compares d and d2. If d is before d2, it returns -1;
// if d is after d2, it returns +1; otherwise it returns 0.
func (d Date) Compare(d2 Date) int {
	switch {
	case d.Before(d2):
		return -1
	case d2.Before(d):
		return +1
	default:
		return 0
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (d *Date) UnmarshalText(data []byte) error {
	var err error
	*d, err = ParseDate(string(data))
	return err
}

func isDigits(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
