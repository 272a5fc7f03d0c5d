// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package bslocale formats Bikram Sambat and Gregorian dates for display.
//
// Two locales are supported: English (romanized Nepali month names) and
// Nepali (Devanagari month names, weekday names and numerals).
//
// Formatting functions never fail. Out-of-range input degrades to an empty
// string since they are presentation conveniences.
package bslocale

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bufdev/bsctl/internal/pkg/bsdate"
	"github.com/bufdev/bsctl/internal/standard/xtime"
	"golang.org/x/text/language"
)

// Locale is a display locale.
type Locale int

const (
	// LocaleEnglish renders romanized month names and ASCII digits.
	LocaleEnglish Locale = iota + 1
	// LocaleNepali renders Devanagari names and digits.
	LocaleNepali
)

// supportedTags are the language tags matched by ParseLocale, in Locale order.
var supportedTags = []language.Tag{
	language.English,
	language.Nepali,
}

var localeMatcher = language.NewMatcher(supportedTags)

// devanagariDigits maps ASCII digits 0-9 to Devanagari numerals.
var devanagariDigits = [10]rune{'०', '१', '२', '३', '४', '५', '६', '७', '८', '९'}

var (
	englishMonthNames = [12]string{
		"Baisakh", "Jestha", "Asar", "Shrawan", "Bhadra", "Ashwin",
		"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra",
	}
	nepaliMonthNames = [12]string{
		"बैशाख", "जेठ", "असार", "श्रावण", "भदौ", "असोज",
		"कार्तिक", "मंसिर", "पुष", "माघ", "फाल्गुन", "चैत्र",
	}
	englishDayNames = [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}
	nepaliDayNames = [7]string{
		"आइतबार", "सोमबार", "मङ्गलबार", "बुधबार", "बिहिबार", "शुक्रबार", "शनिबार",
	}
)

// ParseLocale parses a BCP 47 language tag such as "en", "en-US", "ne" or "ne-NP".
//
// Tags that match neither English nor Nepali are an error.
func ParseLocale(s string) (Locale, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	_, index, confidence := localeMatcher.Match(tag)
	if confidence < language.High {
		return 0, fmt.Errorf("unsupported locale %q, must be one of: en, ne", s)
	}
	return Locale(index + 1), nil
}

// String returns the language tag of the locale.
func (l Locale) String() string {
	switch l {
	case LocaleEnglish:
		return "en"
	case LocaleNepali:
		return "ne"
	default:
		return fmt.Sprintf("Locale(%d)", int(l))
	}
}

// DigitsToLocalScript renders n with each decimal digit replaced by its Devanagari numeral.
//
// A leading minus sign passes through unchanged.
func DigitsToLocalScript(n int) string {
	return TransliterateDigits(strconv.Itoa(n))
}

// TransliterateDigits replaces every ASCII digit in s with its Devanagari numeral.
//
// All other characters pass through unchanged.
func TransliterateDigits(s string) string {
	return strings.Map(
		func(r rune) rune {
			if r >= '0' && r <= '9' {
				return devanagariDigits[r-'0']
			}
			return r
		},
		s,
	)
}

// DigitsFromLocalScript replaces every Devanagari numeral in s with its ASCII digit.
//
// This is the inverse of TransliterateDigits.
func DigitsFromLocalScript(s string) string {
	return strings.Map(
		func(r rune) rune {
			if r >= devanagariDigits[0] && r <= devanagariDigits[9] {
				return '0' + (r - devanagariDigits[0])
			}
			return r
		},
		s,
	)
}

// MonthName returns the name of the Bikram Sambat month (1 = Baisakh).
//
// Returns "" if month is outside of 1-12.
func MonthName(month int, locale Locale) string {
	if month < 1 || month > 12 {
		return ""
	}
	if locale == LocaleNepali {
		return nepaliMonthNames[month-1]
	}
	return englishMonthNames[month-1]
}

// EnglishMonthName returns the name of the Gregorian month.
//
// Returns "" for an invalid month.
func EnglishMonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return month.String()
}

// DayName returns the name of the weekday (0 = Sunday).
//
// Returns "" for an invalid weekday.
func DayName(weekday time.Weekday, locale Locale) string {
	if weekday < time.Sunday || weekday > time.Saturday {
		return ""
	}
	if locale == LocaleNepali {
		return nepaliDayNames[weekday]
	}
	return englishDayNames[weekday]
}

// FormatDate renders a Bikram Sambat date as "<MonthName> <day>, <year>".
//
// The Nepali locale renders Devanagari numerals. Returns "" if the month is out of range.
func FormatDate(date bsdate.Date, locale Locale) string {
	monthName := MonthName(date.Month, locale)
	if monthName == "" {
		return ""
	}
	return localizeDigits(fmt.Sprintf("%s %d, %d", monthName, date.Day, date.Year), locale)
}

// FormatEnglishDate renders a Gregorian date as "<MonthName> <day>, <year>".
//
// Returns "" if the month is out of range.
func FormatEnglishDate(date xtime.Date) string {
	monthName := EnglishMonthName(date.Month)
	if monthName == "" {
		return ""
	}
	return fmt.Sprintf("%s %d, %d", monthName, date.Day, date.Year)
}

// FormatDayMonthYear renders a Bikram Sambat date as "<day> <MonthName> <year>".
//
// Returns "" if the month is out of range.
func FormatDayMonthYear(date bsdate.Date, locale Locale) string {
	monthName := MonthName(date.Month, locale)
	if monthName == "" {
		return ""
	}
	return localizeDigits(fmt.Sprintf("%d %s %d", date.Day, monthName, date.Year), locale)
}

// *** PRIVATE ***

func localizeDigits(s string, locale Locale) string {
	if locale == LocaleNepali {
		return TransliterateDigits(s)
	}
	return s
}
