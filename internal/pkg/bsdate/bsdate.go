// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package bsdate converts dates between the Gregorian (AD) and Bikram Sambat (BS) calendars.
//
// All conversions are day offsets from a fixed epoch anchor:
// BS 2000-01-01 is AD 1943-04-14. Month lengths come from a
// bscalendar.DataSource supplied when the Converter is constructed.
package bsdate

import (
	"errors"
	"fmt"
	"time"

	"github.com/bufdev/bsctl/internal/pkg/bscalendar"
	"github.com/bufdev/bsctl/internal/pkg/nepaltime"
	"github.com/bufdev/bsctl/internal/standard/xtime"
)

var (
	// ErrNotInitialized is returned by a Converter that has no data source.
	ErrNotInitialized = errors.New("converter has no calendar data source")
	// ErrUnknownYear is returned when a year is absent from the data source.
	ErrUnknownYear = errors.New("unknown year")
	// ErrInvalidDate is returned for a Bikram Sambat date that does not exist in the calendar.
	ErrInvalidDate = errors.New("invalid date")
	// ErrOutOfRange is returned for a Gregorian date before the epoch.
	ErrOutOfRange = errors.New("date out of range")
	// ErrMalformedInput is returned when a date string cannot be parsed.
	ErrMalformedInput = errors.New("malformed date")
)

var (
	// EpochBS is the Bikram Sambat side of the epoch anchor.
	EpochBS = Date{Year: 2000, Month: 1, Day: 1}
	// EpochAD is the Gregorian side of the epoch anchor.
	EpochAD = xtime.Date{Year: 1943, Month: time.April, Day: 14}
)

// Converter converts between Gregorian and Bikram Sambat dates using a single data source.
//
// A Converter is safe for concurrent use. The zero value has no data source
// and every operation on it fails with ErrNotInitialized.
type Converter struct {
	dataSource bscalendar.DataSource
	now        func() time.Time
}

// ConverterOption is a functional option for configuring the Converter.
type ConverterOption func(*Converter)

// ConverterWithNow sets the clock used by CurrentDate.
//
// The default is time.Now.
func ConverterWithNow(now func() time.Time) ConverterOption {
	return func(c *Converter) {
		c.now = now
	}
}

// NewConverter returns a new Converter for the data source.
func NewConverter(dataSource bscalendar.DataSource, options ...ConverterOption) (*Converter, error) {
	if dataSource == nil {
		return nil, ErrNotInitialized
	}
	c := &Converter{
		dataSource: dataSource,
		now:        time.Now,
	}
	for _, option := range options {
		option(c)
	}
	return c, nil
}

// StartYear returns the first year of the data source's supported range.
func (c *Converter) StartYear() int {
	if c.dataSource == nil {
		return 0
	}
	return c.dataSource.StartYear()
}

// EndYear returns the last year of the data source's supported range.
func (c *Converter) EndYear() int {
	if c.dataSource == nil {
		return 0
	}
	return c.dataSource.EndYear()
}

// MonthLength returns the number of days in the given month.
//
// Returns ErrUnknownYear if the year is absent from the data source, and
// ErrInvalidDate if the month is outside of 1-12.
func (c *Converter) MonthLength(year int, month int) (int, error) {
	monthLengths, err := c.yearData(year)
	if err != nil {
		return 0, err
	}
	if month < 1 || month > bscalendar.MonthsPerYear {
		return 0, fmt.Errorf("%w: month %d of year %d", ErrInvalidDate, month, year)
	}
	return monthLengths[month-1], nil
}

// YearLength returns the number of days in the given year.
//
// Returns ErrUnknownYear if the year is absent from the data source.
func (c *Converter) YearLength(year int) (int, error) {
	monthLengths, err := c.yearData(year)
	if err != nil {
		return 0, err
	}
	var total int
	for _, monthLength := range monthLengths {
		total += monthLength
	}
	return total, nil
}

// IsValidDate reports whether the date exists in the calendar.
//
// Never fails: an unknown year, a month outside of 1-12, or a day outside of
// the month all report false.
func (c *Converter) IsValidDate(year int, month int, day int) bool {
	if month < 1 || month > bscalendar.MonthsPerYear || day < 1 {
		return false
	}
	monthLength, err := c.MonthLength(year, month)
	if err != nil {
		return false
	}
	return day <= monthLength
}

// AvailableYears returns the years within the supported range that have data, in ascending order.
func (c *Converter) AvailableYears() []int {
	if c.dataSource == nil {
		return nil
	}
	var years []int
	for year := c.dataSource.StartYear(); year <= c.dataSource.EndYear(); year++ {
		if _, ok := c.dataSource.YearData(year); ok {
			years = append(years, year)
		}
	}
	return years
}

// ADToBS converts a Gregorian date to a Bikram Sambat date.
//
// Returns ErrOutOfRange for dates before the epoch, and ErrUnknownYear if
// the date falls after the last year with data.
func (c *Converter) ADToBS(date xtime.Date) (Date, error) {
	if c.dataSource == nil {
		return Date{}, ErrNotInitialized
	}
	if !date.IsValid() {
		return Date{}, fmt.Errorf("%w: %v is not a valid Gregorian date", ErrInvalidDate, date)
	}
	remaining := date.DaysSince(EpochAD)
	if remaining < 0 {
		return Date{}, fmt.Errorf("%w: %v is before %v", ErrOutOfRange, date, EpochAD)
	}
	year := EpochBS.Year
	for {
		yearLength, err := c.YearLength(year)
		if err != nil {
			return Date{}, fmt.Errorf("converting %v: %w", date, err)
		}
		if remaining < yearLength {
			break
		}
		remaining -= yearLength
		year++
	}
	monthLengths, err := c.yearData(year)
	if err != nil {
		return Date{}, err
	}
	month := 1
	// remaining is less than the year length, so this stops within the year.
	for remaining >= monthLengths[month-1] {
		remaining -= monthLengths[month-1]
		month++
	}
	return Date{Year: year, Month: month, Day: remaining + 1}, nil
}

// TimeToBS converts the calendar day of t, in t's location, to a Bikram Sambat date.
//
// The time of day is ignored.
func (c *Converter) TimeToBS(t time.Time) (Date, error) {
	return c.ADToBS(xtime.TimeToDate(t))
}

// BSToAD converts a Bikram Sambat date to a Gregorian date.
//
// Returns ErrInvalidDate if the date does not exist in the calendar.
func (c *Converter) BSToAD(year int, month int, day int) (xtime.Date, error) {
	if c.dataSource == nil {
		return xtime.Date{}, ErrNotInitialized
	}
	if !c.IsValidDate(year, month, day) {
		return xtime.Date{}, fmt.Errorf("%w: %v", ErrInvalidDate, Date{Year: year, Month: month, Day: day})
	}
	if year < EpochBS.Year {
		return xtime.Date{}, fmt.Errorf("%w: %v is before %v", ErrOutOfRange, Date{Year: year, Month: month, Day: day}, EpochBS)
	}
	var total int
	for y := EpochBS.Year; y < year; y++ {
		yearLength, err := c.YearLength(y)
		if err != nil {
			return xtime.Date{}, fmt.Errorf("converting %v: %w", Date{Year: year, Month: month, Day: day}, err)
		}
		total += yearLength
	}
	monthLengths, err := c.yearData(year)
	if err != nil {
		return xtime.Date{}, err
	}
	for m := 1; m < month; m++ {
		total += monthLengths[m-1]
	}
	total += day - 1
	return EpochAD.AddDays(total), nil
}

// BSDateToAD converts a Bikram Sambat date to a Gregorian date.
func (c *Converter) BSDateToAD(date Date) (xtime.Date, error) {
	return c.BSToAD(date.Year, date.Month, date.Day)
}

// Weekday returns the day of the week of the Bikram Sambat date.
func (c *Converter) Weekday(date Date) (time.Weekday, error) {
	adDate, err := c.BSDateToAD(date)
	if err != nil {
		return 0, err
	}
	return adDate.Weekday(), nil
}

// CurrentDate returns today's Bikram Sambat date in Nepal.
//
// Today is determined by Nepal local midnight regardless of the host's time zone.
func (c *Converter) CurrentDate() (Date, error) {
	if c.dataSource == nil {
		return Date{}, ErrNotInitialized
	}
	return c.ADToBS(nepaltime.LocalDate(c.Now()))
}

// Now returns the current time according to the Converter's clock.
func (c *Converter) Now() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

// *** PRIVATE ***

func (c *Converter) yearData(year int) ([bscalendar.MonthsPerYear]int, error) {
	if c.dataSource == nil {
		return [bscalendar.MonthsPerYear]int{}, ErrNotInitialized
	}
	monthLengths, ok := c.dataSource.YearData(year)
	if !ok {
		return [bscalendar.MonthsPerYear]int{}, fmt.Errorf("%w: %d", ErrUnknownYear, year)
	}
	return monthLengths, nil
}
