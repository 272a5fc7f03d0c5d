// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package bscalendar provides the Bikram Sambat month-length data sources.
//
// Bikram Sambat month lengths vary from year to year (29 to 32 days) and
// are not computable from a closed-form rule, so they are read from a
// pre-computed reference table. A DataSource exposes that table for a
// range of years. The conversion engine only consumes this interface and
// is agnostic to how the table was populated.
package bscalendar

import (
	"fmt"
	"slices"
)

const (
	// MonthsPerYear is the number of months in a Bikram Sambat year.
	MonthsPerYear = 12
	// MinMonthLength is the shortest plausible Bikram Sambat month.
	MinMonthLength = 29
	// MaxMonthLength is the longest plausible Bikram Sambat month.
	MaxMonthLength = 32
)

// DataSource supplies Bikram Sambat month lengths by year.
//
// Implementations must be safe for concurrent reads and must not have side effects.
type DataSource interface {
	// YearData returns the 12 month lengths for the given year, Baisakh first.
	//
	// Returns false if the year is not present in the data source.
	YearData(year int) ([MonthsPerYear]int, bool)
	// StartYear is the first year of the supported range, inclusive.
	StartYear() int
	// EndYear is the last year of the supported range, inclusive.
	EndYear() int
}

// ReferencePoint is a fixed correspondence between a Bikram Sambat date and a Gregorian date.
type ReferencePoint struct {
	BSYear  int `json:"bsYear" validate:"required"`
	BSMonth int `json:"bsMonth" validate:"required,min=1,max=12"`
	BSDay   int `json:"bsDay" validate:"required,min=1,max=32"`
	ADYear  int `json:"adYear" validate:"required"`
	ADMonth int `json:"adMonth" validate:"required,min=1,max=12"`
	ADDay   int `json:"adDay" validate:"required,min=1,max=31"`
}

// Anchor returns the epoch anchor that all tables in this package are expressed against:
// BS 2000-01-01 is AD 1943-04-14.
func Anchor() ReferencePoint {
	return ReferencePoint{
		BSYear:  2000,
		BSMonth: 1,
		BSDay:   1,
		ADYear:  1943,
		ADMonth: 4,
		ADDay:   14,
	}
}

// Table is an immutable in-memory DataSource.
type Table struct {
	startYear int
	endYear   int
	years     map[int][MonthsPerYear]int
}

// NewTable validates the given month lengths and returns a new Table.
//
// Every year must fall within [startYear, endYear], every month length must
// be within [MinMonthLength, MaxMonthLength], and every year must total 365
// or 366 days. Years within the range may be missing.
func NewTable(startYear int, endYear int, years map[int][MonthsPerYear]int) (*Table, error) {
	if startYear > endYear {
		return nil, fmt.Errorf("start year %d is after end year %d", startYear, endYear)
	}
	copied := make(map[int][MonthsPerYear]int, len(years))
	for year, monthLengths := range years {
		if year < startYear || year > endYear {
			return nil, fmt.Errorf("year %d is outside of the supported range %d-%d", year, startYear, endYear)
		}
		if err := validateMonthLengths(year, monthLengths); err != nil {
			return nil, err
		}
		copied[year] = monthLengths
	}
	return &Table{
		startYear: startYear,
		endYear:   endYear,
		years:     copied,
	}, nil
}

// YearData implements DataSource.
func (t *Table) YearData(year int) ([MonthsPerYear]int, bool) {
	monthLengths, ok := t.years[year]
	return monthLengths, ok
}

// StartYear implements DataSource.
func (t *Table) StartYear() int {
	return t.startYear
}

// EndYear implements DataSource.
func (t *Table) EndYear() int {
	return t.endYear
}

// Years returns the years present in the table in ascending order.
func (t *Table) Years() []int {
	years := make([]int, 0, len(t.years))
	for year := range t.years {
		years = append(years, year)
	}
	slices.Sort(years)
	return years
}

// *** PRIVATE ***

func validateMonthLengths(year int, monthLengths [MonthsPerYear]int) error {
	var total int
	for i, monthLength := range monthLengths {
		if monthLength < MinMonthLength || monthLength > MaxMonthLength {
			return fmt.Errorf("year %d month %d has implausible length %d", year, i+1, monthLength)
		}
		total += monthLength
	}
	if total != 365 && total != 366 {
		return fmt.Errorf("year %d has %d days, must be 365 or 366", year, total)
	}
	return nil
}
