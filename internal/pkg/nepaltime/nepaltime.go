// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package nepaltime pins timestamps to Nepal Time (UTC+05:45).
//
// Nepal observes a fixed offset with no daylight saving time, so the shift is
// plain arithmetic and does not depend on the host's time zone database.
//
// A shifted time is a UTC time.Time whose calendar accessors (Year, Month,
// Day, Hour, Minute) read as Nepal wall-clock values. FromLocalShifted
// recovers the original instant exactly.
package nepaltime

import (
	"time"

	"github.com/bufdev/bsctl/internal/standard/xtime"
)

// Offset is the fixed offset of Nepal Time from UTC.
const Offset = 5*time.Hour + 45*time.Minute

// location is Nepal Time as a fixed zone.
var location = time.FixedZone("NPT", int(Offset/time.Second))

// Location returns Nepal Time as a fixed-offset *time.Location.
func Location() *time.Location {
	return location
}

// ToLocalShifted shifts t so that its calendar fields read as Nepal local time.
func ToLocalShifted(t time.Time) time.Time {
	return t.UTC().Add(Offset)
}

// FromLocalShifted reverses ToLocalShifted, returning the original instant in UTC.
func FromLocalShifted(shifted time.Time) time.Time {
	return shifted.UTC().Add(-Offset)
}

// LocalDate returns the calendar day on which t falls in Nepal.
func LocalDate(t time.Time) xtime.Date {
	return xtime.TimeToDate(ToLocalShifted(t))
}

// LocalMidnight returns the start of the Nepal day containing t, in shifted form.
//
// The result is comparable with other values returned by ToLocalShifted.
func LocalMidnight(t time.Time) time.Time {
	return LocalDate(t).In(time.UTC)
}
