// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package bsctlmonth builds month calendar grids for the month command.
package bsctlmonth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bufdev/bsctl/internal/pkg/bscalendar"
	"github.com/bufdev/bsctl/internal/pkg/bsdate"
	"github.com/bufdev/bsctl/internal/pkg/bslocale"
	"github.com/bufdev/bsctl/internal/standard/xtime"
)

const daysPerWeek = 7

// Day is a single day of a Month.
type Day struct {
	// BS is the Bikram Sambat date.
	BS bsdate.Date `json:"bs"`
	// AD is the Gregorian date.
	AD xtime.Date `json:"ad"`
	// Weekday is the day of the week.
	Weekday time.Weekday `json:"-"`
	// Today is true if the day is the current date in Nepal.
	Today bool `json:"today,omitempty"`
}

// Month is a Bikram Sambat month with every day resolved to its Gregorian date.
type Month struct {
	// Year is the Bikram Sambat year.
	Year int
	// Month is the month number, 1-12.
	Month int
	// Days are the days of the month, in order.
	Days []Day
}

// New builds the Month for the given year and month.
//
// today is marked in the returned days. Pass the zero Date to mark nothing.
func New(converter *bsdate.Converter, year int, month int, today bsdate.Date) (*Month, error) {
	monthLength, err := converter.MonthLength(year, month)
	if err != nil {
		return nil, err
	}
	first, err := converter.BSToAD(year, month, 1)
	if err != nil {
		return nil, err
	}
	days := make([]Day, monthLength)
	for i := range days {
		bsDate := bsdate.Date{Year: year, Month: month, Day: i + 1}
		adDate := first.AddDays(i)
		days[i] = Day{
			BS:      bsDate,
			AD:      adDate,
			Weekday: adDate.Weekday(),
			Today:   bsDate == today,
		}
	}
	return &Month{
		Year:  year,
		Month: month,
		Days:  days,
	}, nil
}

// ResolveYearMonth resolves month command arguments to a year and month.
//
// No arguments selects the current month. A single argument of 12 or less is
// a month of the current year, and any larger value is a year whose first
// month is selected. Two arguments are the year and the month.
//
// today is only called when the arguments do not name a year.
func ResolveYearMonth(args []int, today func() (bsdate.Date, error)) (year int, month int, _ error) {
	switch len(args) {
	case 0:
		date, err := today()
		if err != nil {
			return 0, 0, err
		}
		return date.Year, date.Month, nil
	case 1:
		if args[0] > bscalendar.MonthsPerYear {
			return args[0], 1, nil
		}
		date, err := today()
		if err != nil {
			return 0, 0, err
		}
		return date.Year, args[0], nil
	case 2:
		return args[0], args[1], nil
	default:
		return 0, 0, fmt.Errorf("expected at most 2 arguments, got %d", len(args))
	}
}

// Title returns the month heading, for example "Baisakh 2081 (April/May 2024)".
func (m *Month) Title(locale bslocale.Locale) string {
	first := m.Days[0].AD
	last := m.Days[len(m.Days)-1].AD
	var adRange string
	switch {
	case first.Year != last.Year:
		adRange = fmt.Sprintf("%s %d/%s %d", bslocale.EnglishMonthName(first.Month), first.Year, bslocale.EnglishMonthName(last.Month), last.Year)
	case first.Month != last.Month:
		adRange = fmt.Sprintf("%s/%s %d", bslocale.EnglishMonthName(first.Month), bslocale.EnglishMonthName(last.Month), last.Year)
	default:
		adRange = fmt.Sprintf("%s %d", bslocale.EnglishMonthName(first.Month), first.Year)
	}
	return fmt.Sprintf(
		"%s %s (%s)",
		bslocale.MonthName(m.Month, locale),
		localizedNumber(m.Year, locale),
		adRange,
	)
}

// Weeks returns the days of the month laid out in Sunday-first weeks.
//
// Cells before the first day and after the last day are nil.
func (m *Month) Weeks() [][]*Day {
	var weeks [][]*Day
	week := make([]*Day, daysPerWeek)
	for i := range m.Days {
		day := &m.Days[i]
		week[day.Weekday] = day
		if day.Weekday == time.Saturday {
			weeks = append(weeks, week)
			week = make([]*Day, daysPerWeek)
		}
	}
	if m.Days[len(m.Days)-1].Weekday != time.Saturday {
		weeks = append(weeks, week)
	}
	return weeks
}

// GridHeaders returns the weekday column headers for the grid, Sunday first.
func GridHeaders(locale bslocale.Locale) []string {
	headers := make([]string, daysPerWeek)
	for i := range headers {
		name := []rune(bslocale.DayName(time.Weekday(i), locale))
		if locale == bslocale.LocaleEnglish {
			name = name[:3]
		}
		headers[i] = string(name)
	}
	return headers
}

// GridRows returns one row per week. Each cell holds the Bikram Sambat day
// with the Gregorian day of month in parentheses. Today is marked with a "*".
func (m *Month) GridRows(locale bslocale.Locale) [][]string {
	weeks := m.Weeks()
	rows := make([][]string, len(weeks))
	for i, week := range weeks {
		row := make([]string, daysPerWeek)
		for j, day := range week {
			if day == nil {
				continue
			}
			cell := fmt.Sprintf("%s (%d)", localizedNumber(day.BS.Day, locale), day.AD.Day)
			if day.Today {
				cell = "*" + cell
			}
			row[j] = cell
		}
		rows[i] = row
	}
	return rows
}

// ListHeaders returns the headers for ListRows.
func ListHeaders() []string {
	return []string{"BS", "AD", "WEEKDAY", "TODAY"}
}

// ListRows returns one row per day.
func (m *Month) ListRows(locale bslocale.Locale) [][]string {
	rows := make([][]string, len(m.Days))
	for i, day := range m.Days {
		rows[i] = []string{
			day.BS.String(),
			day.AD.String(),
			bslocale.DayName(day.Weekday, locale),
			strconv.FormatBool(day.Today),
		}
	}
	return rows
}

// JSONDays returns the days of the month for JSON output.
func (m *Month) JSONDays(locale bslocale.Locale) []JSONDay {
	jsonDays := make([]JSONDay, len(m.Days))
	for i, day := range m.Days {
		jsonDays[i] = JSONDay{
			Day:         day,
			WeekdayName: bslocale.DayName(day.Weekday, locale),
			MonthName:   bslocale.MonthName(day.BS.Month, locale),
		}
	}
	return jsonDays
}

// JSONDay is a Day with localized names for JSON output.
type JSONDay struct {
	Day
	// WeekdayName is the localized weekday name.
	WeekdayName string `json:"weekday"`
	// MonthName is the localized Bikram Sambat month name.
	MonthName string `json:"month_name"`
}

func localizedNumber(n int, locale bslocale.Locale) string {
	if locale == bslocale.LocaleNepali {
		return bslocale.DigitsToLocalScript(n)
	}
	return strconv.Itoa(n)
}
