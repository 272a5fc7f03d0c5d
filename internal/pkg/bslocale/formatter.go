// Copyright 2026 Peter Edge
//
// All rights reserved.

package bslocale

import (
	"fmt"
	"time"

	"github.com/bufdev/bsctl/internal/pkg/bsdate"
	"github.com/bufdev/bsctl/internal/pkg/nepaltime"
	"github.com/bufdev/bsctl/internal/standard/xtime"
)

// relativePhrases holds the relative-time phrases for a locale.
type relativePhrases struct {
	justNow    string
	secondsAgo string
	minutesAgo string
	hoursAgo   string
}

var (
	englishRelativePhrases = relativePhrases{
		justNow:    "just now",
		secondsAgo: "seconds ago",
		minutesAgo: "minutes ago",
		hoursAgo:   "hours ago",
	}
	nepaliRelativePhrases = relativePhrases{
		justNow:    "भर्खरै",
		secondsAgo: "सेकेन्ड अगाडि",
		minutesAgo: "मिनेट अगाडि",
		hoursAgo:   "घण्टा अगाडि",
	}
)

// Formatter formats dates that need the calendar, such as weekday names and relative times.
type Formatter struct {
	converter *bsdate.Converter
	locale    Locale
	now       func() time.Time
}

// FormatterOption is a functional option for configuring the Formatter.
type FormatterOption func(*Formatter)

// FormatterWithLocale sets the locale.
//
// The default is LocaleNepali.
func FormatterWithLocale(locale Locale) FormatterOption {
	return func(f *Formatter) {
		f.locale = locale
	}
}

// FormatterWithNow sets the clock used for relative times and the current date.
//
// The default is the converter's clock.
func FormatterWithNow(now func() time.Time) FormatterOption {
	return func(f *Formatter) {
		f.now = now
	}
}

// NewFormatter returns a new Formatter that uses the converter for calendar lookups.
func NewFormatter(converter *bsdate.Converter, options ...FormatterOption) *Formatter {
	f := &Formatter{
		converter: converter,
		locale:    LocaleNepali,
		now:       converter.Now,
	}
	for _, option := range options {
		option(f)
	}
	return f
}

// Locale returns the locale of the Formatter.
func (f *Formatter) Locale() Locale {
	return f.locale
}

// FormatDateWithWeekday renders a Bikram Sambat date as "<day> <MonthName> <year>, <weekday>".
//
// The weekday is derived from the corresponding Gregorian date. Returns "" if
// the date does not exist in the calendar.
func (f *Formatter) FormatDateWithWeekday(date bsdate.Date) string {
	weekday, err := f.converter.Weekday(date)
	if err != nil {
		return ""
	}
	return FormatDayMonthYear(date, f.locale) + ", " + DayName(weekday, f.locale)
}

// CurrentDateFormatted renders today's Bikram Sambat date in Nepal with its weekday.
//
// Returns "" if today is outside of the calendar data.
func (f *Formatter) CurrentDateFormatted() string {
	date, err := f.converter.ADToBS(nepaltime.LocalDate(f.now()))
	if err != nil {
		return ""
	}
	return f.FormatDateWithWeekday(date)
}

// RelativeTime renders t relative to now, for example "5 minutes ago".
//
// The zero time renders as "just now". Anything before midnight of the
// current day in Nepal renders as an absolute Bikram Sambat date
// ("<day> <MonthName> <year>") instead of a relative phrase. Times in the
// future render as "just now".
func (f *Formatter) RelativeTime(t time.Time) string {
	phrases := f.relativePhrases()
	if t.IsZero() {
		return phrases.justNow
	}
	now := nepaltime.ToLocalShifted(f.now())
	local := nepaltime.ToLocalShifted(t)
	if local.Before(nepaltime.LocalMidnight(f.now())) {
		return f.absolute(local)
	}
	diff := now.Sub(local)
	switch {
	case diff < time.Second:
		return phrases.justNow
	case diff < time.Minute:
		return f.relative(int(diff/time.Second), phrases.secondsAgo)
	case diff < time.Hour:
		return f.relative(int(diff/time.Minute), phrases.minutesAgo)
	case diff < 24*time.Hour:
		return f.relative(int(diff/time.Hour), phrases.hoursAgo)
	default:
		return f.absolute(local)
	}
}

// *** PRIVATE ***

func (f *Formatter) relativePhrases() relativePhrases {
	if f.locale == LocaleNepali {
		return nepaliRelativePhrases
	}
	return englishRelativePhrases
}

func (f *Formatter) relative(count int, suffix string) string {
	return localizeDigits(fmt.Sprintf("%d %s", count, suffix), f.locale)
}

// absolute renders the calendar day of a shifted time as a Bikram Sambat date,
// falling back to the Gregorian date if it is outside of the calendar data.
func (f *Formatter) absolute(shifted time.Time) string {
	adDate := xtime.TimeToDate(shifted)
	bsDate, err := f.converter.ADToBS(adDate)
	if err != nil {
		return FormatEnglishDate(adDate)
	}
	return FormatDayMonthYear(bsDate, f.locale)
}
