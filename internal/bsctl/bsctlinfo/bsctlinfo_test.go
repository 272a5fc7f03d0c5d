// Copyright 2026 Peter Edge
//
// All rights reserved.

package bsctlinfo

import (
	"testing"
	"time"

	"github.com/bufdev/bsctl/internal/pkg/bscalendar"
	"github.com/bufdev/bsctl/internal/pkg/bsdate"
	"github.com/bufdev/bsctl/internal/pkg/bslocale"
	"github.com/bufdev/bsctl/internal/standard/xtime"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Parallel()
	converter, err := bsdate.NewConverter(bscalendar.Embedded())
	require.NoError(t, err)
	baisakh2081 := &DateInfo{
		Input:          "2081-01-01",
		InputCalendar:  "bs",
		BS:             bsdate.Date{Year: 2081, Month: 1, Day: 1},
		AD:             xtime.Date{Year: 2024, Month: time.April, Day: 13},
		BSFormatted:    "Baisakh 1, 2081",
		ADFormatted:    "April 13, 2024",
		Weekday:        "Saturday",
		DayOfYear:      1,
		MonthLength:    31,
		YearLength:     366,
		DaysSinceEpoch: 29585,
	}
	for _, test := range []struct {
		desc     string
		input    string
		calendar Calendar
		locale   bslocale.Locale
		want     *DateInfo
	}{
		{
			desc:     "auto bs",
			input:    "2081-01-01",
			calendar: CalendarAuto,
			locale:   bslocale.LocaleEnglish,
			want:     baisakh2081,
		},
		{
			desc:     "forced ad",
			input:    "2024-04-13",
			calendar: CalendarAD,
			locale:   bslocale.LocaleEnglish,
			want: &DateInfo{
				Input:          "2024-04-13",
				InputCalendar:  "ad",
				BS:             baisakh2081.BS,
				AD:             baisakh2081.AD,
				BSFormatted:    baisakh2081.BSFormatted,
				ADFormatted:    baisakh2081.ADFormatted,
				Weekday:        baisakh2081.Weekday,
				DayOfYear:      1,
				MonthLength:    31,
				YearLength:     366,
				DaysSinceEpoch: 29585,
			},
		},
		{
			desc:     "auto ad",
			input:    "1990-01-01",
			calendar: CalendarAuto,
			locale:   bslocale.LocaleNepali,
			want: &DateInfo{
				Input:          "1990-01-01",
				InputCalendar:  "ad",
				BS:             bsdate.Date{Year: 2046, Month: 9, Day: 17},
				AD:             xtime.Date{Year: 1990, Month: time.January, Day: 1},
				BSFormatted:    "पुष १७, २०४६",
				ADFormatted:    "January 1, 1990",
				Weekday:        "सोमबार",
				DayOfYear:      264,
				MonthLength:    29,
				YearLength:     366,
				DaysSinceEpoch: 17064,
			},
		},
	} {
		got, err := Get(converter, test.input, test.calendar, test.locale)
		require.NoError(t, err, test.desc)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", test.desc, diff)
		}
		require.Len(t, got.Row(), len(Headers()), test.desc)
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()
	converter, err := bsdate.NewConverter(bscalendar.Embedded())
	require.NoError(t, err)
	for _, test := range []struct {
		input    string
		calendar Calendar
		wantErr  error
	}{
		{"2081/01/01", CalendarAuto, bsdate.ErrMalformedInput},
		{"hello", CalendarBS, bsdate.ErrMalformedInput},
		{"2081-13-01", CalendarAuto, bsdate.ErrMalformedInput},
		{"2081-01-32", CalendarBS, bsdate.ErrInvalidDate},
		{"2024-02-30", CalendarAD, bsdate.ErrMalformedInput},
		{"1900-01-01", CalendarAuto, bsdate.ErrOutOfRange},
		{"2095-01-01", CalendarBS, bsdate.ErrInvalidDate},
	} {
		_, err := Get(converter, test.input, test.calendar, bslocale.LocaleEnglish)
		require.ErrorIs(t, err, test.wantErr, test.input)
	}
}

func TestParseCalendar(t *testing.T) {
	t.Parallel()
	for _, calendar := range []Calendar{CalendarAuto, CalendarAD, CalendarBS} {
		parsed, err := ParseCalendar(calendar.String())
		require.NoError(t, err)
		require.Equal(t, calendar, parsed)
	}
	_, err := ParseCalendar("julian")
	require.Error(t, err)
}

func TestKeyValues(t *testing.T) {
	t.Parallel()
	converter, err := bsdate.NewConverter(bscalendar.Embedded())
	require.NoError(t, err)
	info, err := Get(converter, "2081-01-01", CalendarAuto, bslocale.LocaleEnglish)
	require.NoError(t, err)
	keyValues := info.KeyValues()
	require.Equal(t, [2]string{"Input", "2081-01-01 (BS)"}, keyValues[0])
	require.Equal(t, [2]string{"Weekday", "Saturday"}, keyValues[5])
}
