// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package bsctlinfo computes date details for the info command.
package bsctlinfo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bufdev/bsctl/internal/pkg/bsdate"
	"github.com/bufdev/bsctl/internal/pkg/bslocale"
	"github.com/bufdev/bsctl/internal/standard/xtime"
)

// Calendar is the calendar an input date is expressed in.
type Calendar int

const (
	// CalendarAuto detects the calendar from the year of the input.
	CalendarAuto Calendar = iota + 1
	// CalendarAD is the Gregorian calendar.
	CalendarAD
	// CalendarBS is the Bikram Sambat calendar.
	CalendarBS
)

// String implements fmt.Stringer.
func (c Calendar) String() string {
	switch c {
	case CalendarAuto:
		return "auto"
	case CalendarAD:
		return "ad"
	case CalendarBS:
		return "bs"
	default:
		return fmt.Sprintf("Calendar(%d)", int(c))
	}
}

// ParseCalendar parses a Calendar from its string form.
func ParseCalendar(s string) (Calendar, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return CalendarAuto, nil
	case "ad":
		return CalendarAD, nil
	case "bs":
		return CalendarBS, nil
	default:
		return 0, fmt.Errorf("unknown calendar %q, must be one of: auto, ad, bs", s)
	}
}

// DateInfo describes a single day in both calendars.
type DateInfo struct {
	// Input is the date string as given.
	Input string `json:"input"`
	// InputCalendar is the calendar the input was interpreted in, ad or bs.
	InputCalendar string `json:"input_calendar"`
	// BS is the Bikram Sambat date.
	BS bsdate.Date `json:"bs"`
	// AD is the Gregorian date.
	AD xtime.Date `json:"ad"`
	// BSFormatted is the localized long form of the Bikram Sambat date.
	BSFormatted string `json:"bs_formatted"`
	// ADFormatted is the long form of the Gregorian date.
	ADFormatted string `json:"ad_formatted"`
	// Weekday is the localized weekday name.
	Weekday string `json:"weekday"`
	// DayOfYear is the 1-based day of the Bikram Sambat year.
	DayOfYear int `json:"day_of_year"`
	// MonthLength is the number of days in the Bikram Sambat month.
	MonthLength int `json:"month_length"`
	// YearLength is the number of days in the Bikram Sambat year.
	YearLength int `json:"year_length"`
	// DaysSinceEpoch is the number of days since BS 2000-01-01.
	DaysSinceEpoch int `json:"days_since_epoch"`
}

// Get parses input in the given calendar and returns its details.
//
// With CalendarAuto, input is read as Bikram Sambat when its year is at least
// the first year of the converter's data, and as Gregorian otherwise.
// Malformed input returns bsdate.ErrMalformedInput.
func Get(converter *bsdate.Converter, input string, calendar Calendar, locale bslocale.Locale) (*DateInfo, error) {
	year, _, _, err := bsdate.ParseYYYYMMDD(input)
	if err != nil {
		return nil, err
	}
	if calendar == CalendarAuto {
		calendar = CalendarAD
		if startYear := converter.StartYear(); startYear > 0 && year >= startYear {
			calendar = CalendarBS
		}
	}
	var bsDate bsdate.Date
	var adDate xtime.Date
	switch calendar {
	case CalendarBS:
		bsDate, err = bsdate.ParseDate(input)
		if err != nil {
			return nil, err
		}
		adDate, err = converter.BSDateToAD(bsDate)
		if err != nil {
			return nil, err
		}
	case CalendarAD:
		adDate, err = xtime.ParseDate(strings.TrimSpace(input))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", bsdate.ErrMalformedInput, input, err)
		}
		bsDate, err = converter.ADToBS(adDate)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown calendar %v", calendar)
	}
	monthLength, err := converter.MonthLength(bsDate.Year, bsDate.Month)
	if err != nil {
		return nil, err
	}
	yearLength, err := converter.YearLength(bsDate.Year)
	if err != nil {
		return nil, err
	}
	firstOfYear, err := converter.BSToAD(bsDate.Year, 1, 1)
	if err != nil {
		return nil, err
	}
	return &DateInfo{
		Input:          input,
		InputCalendar:  calendar.String(),
		BS:             bsDate,
		AD:             adDate,
		BSFormatted:    bslocale.FormatDate(bsDate, locale),
		ADFormatted:    bslocale.FormatEnglishDate(adDate),
		Weekday:        bslocale.DayName(adDate.Weekday(), locale),
		DayOfYear:      adDate.DaysSince(firstOfYear) + 1,
		MonthLength:    monthLength,
		YearLength:     yearLength,
		DaysSinceEpoch: adDate.DaysSince(bsdate.EpochAD),
	}, nil
}

// KeyValues returns the details as labeled rows.
func (d *DateInfo) KeyValues() [][2]string {
	return [][2]string{
		{"Input", d.Input + " (" + strings.ToUpper(d.InputCalendar) + ")"},
		{"BS", d.BS.String()},
		{"AD", d.AD.String()},
		{"BS Date", d.BSFormatted},
		{"AD Date", d.ADFormatted},
		{"Weekday", d.Weekday},
		{"Day of Year", strconv.Itoa(d.DayOfYear)},
		{"Month Length", strconv.Itoa(d.MonthLength)},
		{"Year Length", strconv.Itoa(d.YearLength)},
		{"Days Since Epoch", strconv.Itoa(d.DaysSinceEpoch)},
	}
}

// Headers returns the headers for Row.
func Headers() []string {
	return []string{
		"INPUT",
		"INPUT_CALENDAR",
		"BS",
		"AD",
		"BS_DATE",
		"AD_DATE",
		"WEEKDAY",
		"DAY_OF_YEAR",
		"MONTH_LENGTH",
		"YEAR_LENGTH",
		"DAYS_SINCE_EPOCH",
	}
}

// Row returns the details as a single row matching Headers.
func (d *DateInfo) Row() []string {
	keyValues := d.KeyValues()
	row := make([]string, 0, len(keyValues)+1)
	row = append(row, d.Input, d.InputCalendar)
	for _, keyValue := range keyValues[1:] {
		row = append(row, keyValue[1])
	}
	return row
}
