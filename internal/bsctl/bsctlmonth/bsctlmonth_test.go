// Copyright 2026 Peter Edge
//
// All rights reserved.

package bsctlmonth

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bufdev/bsctl/internal/pkg/bscalendar"
	"github.com/bufdev/bsctl/internal/pkg/bsdate"
	"github.com/bufdev/bsctl/internal/pkg/bslocale"
	"github.com/bufdev/bsctl/internal/standard/xtime"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	converter := newTestConverter(t)
	today := bsdate.Date{Year: 2081, Month: 1, Day: 2}
	month, err := New(converter, 2081, 1, today)
	require.NoError(t, err)
	require.Len(t, month.Days, 31)
	require.Equal(t, xtime.Date{Year: 2024, Month: time.April, Day: 13}, month.Days[0].AD)
	require.Equal(t, time.Saturday, month.Days[0].Weekday)
	require.Equal(t, xtime.Date{Year: 2024, Month: time.May, Day: 13}, month.Days[30].AD)
	require.True(t, month.Days[1].Today)
	require.False(t, month.Days[0].Today)
	require.Equal(t, "Baisakh 2081 (April/May 2024)", month.Title(bslocale.LocaleEnglish))
	require.Equal(t, "बैशाख २०८१ (April/May 2024)", month.Title(bslocale.LocaleNepali))

	weeks := month.Weeks()
	require.Len(t, weeks, 6)
	// Baisakh 2081 starts on a Saturday.
	for i := time.Sunday; i < time.Saturday; i++ {
		require.Nil(t, weeks[0][i])
	}
	require.Equal(t, 1, weeks[0][time.Saturday].BS.Day)
	require.Equal(t, 2, weeks[1][time.Sunday].BS.Day)
	require.Equal(t, 31, weeks[5][time.Monday].BS.Day)
	require.Nil(t, weeks[5][time.Tuesday])

	rows := month.GridRows(bslocale.LocaleEnglish)
	require.Equal(t, []string{"", "", "", "", "", "", "1 (13)"}, rows[0])
	require.Equal(t, "*2 (14)", rows[1][0])
	require.Equal(t, "१ (13)", month.GridRows(bslocale.LocaleNepali)[0][6])
	require.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, GridHeaders(bslocale.LocaleEnglish))
	require.Equal(t, "शनिबार", GridHeaders(bslocale.LocaleNepali)[6])

	listRows := month.ListRows(bslocale.LocaleEnglish)
	require.Len(t, listRows, 31)
	require.Equal(t, []string{"2081-01-01", "2024-04-13", "Saturday", "false"}, listRows[0])
	require.Len(t, ListHeaders(), len(listRows[0]))
}

func TestNewAcrossGregorianYears(t *testing.T) {
	t.Parallel()
	month, err := New(newTestConverter(t), 2081, 9, bsdate.Date{})
	require.NoError(t, err)
	require.Len(t, month.Days, 29)
	require.Equal(t, xtime.Date{Year: 2024, Month: time.December, Day: 16}, month.Days[0].AD)
	require.Equal(t, "Poush 2081 (December 2024/January 2025)", month.Title(bslocale.LocaleEnglish))
	for _, day := range month.Days {
		require.False(t, day.Today)
	}
}

func TestNewInvalid(t *testing.T) {
	t.Parallel()
	converter := newTestConverter(t)
	_, err := New(converter, 2081, 13, bsdate.Date{})
	require.ErrorIs(t, err, bsdate.ErrInvalidDate)
	_, err = New(converter, 2100, 1, bsdate.Date{})
	require.ErrorIs(t, err, bsdate.ErrUnknownYear)
}

func TestJSONDays(t *testing.T) {
	t.Parallel()
	month, err := New(newTestConverter(t), 2081, 1, bsdate.Date{Year: 2081, Month: 1, Day: 1})
	require.NoError(t, err)
	data, err := json.Marshal(month.JSONDays(bslocale.LocaleEnglish)[0])
	require.NoError(t, err)
	require.JSONEq(
		t,
		`{"bs":"2081-01-01","ad":"2024-04-13","today":true,"weekday":"Saturday","month_name":"Baisakh"}`,
		string(data),
	)
}

func TestResolveYearMonth(t *testing.T) {
	t.Parallel()
	today := bsdate.Date{Year: 2082, Month: 7, Day: 3}
	for _, test := range []struct {
		desc      string
		args      []int
		wantYear  int
		wantMonth int
		wantToday bool
	}{
		{
			desc:      "no arguments",
			wantYear:  2082,
			wantMonth: 7,
			wantToday: true,
		},
		{
			desc:      "first month of current year",
			args:      []int{1},
			wantYear:  2082,
			wantMonth: 1,
			wantToday: true,
		},
		{
			desc:      "last month of current year",
			args:      []int{12},
			wantYear:  2082,
			wantMonth: 12,
			wantToday: true,
		},
		{
			desc:      "smallest year",
			args:      []int{13},
			wantYear:  13,
			wantMonth: 1,
		},
		{
			desc:      "year",
			args:      []int{2081},
			wantYear:  2081,
			wantMonth: 1,
		},
		{
			desc:      "year and month",
			args:      []int{2081, 9},
			wantYear:  2081,
			wantMonth: 9,
		},
	} {
		var calledToday bool
		year, month, err := ResolveYearMonth(
			test.args,
			func() (bsdate.Date, error) {
				calledToday = true
				return today, nil
			},
		)
		require.NoError(t, err, test.desc)
		require.Equal(t, test.wantYear, year, test.desc)
		require.Equal(t, test.wantMonth, month, test.desc)
		require.Equal(t, test.wantToday, calledToday, test.desc)
	}
}

func TestResolveYearMonthErrors(t *testing.T) {
	t.Parallel()
	todayErr := bsdate.ErrOutOfRange
	today := func() (bsdate.Date, error) {
		return bsdate.Date{}, todayErr
	}
	_, _, err := ResolveYearMonth(nil, today)
	require.ErrorIs(t, err, todayErr)
	_, _, err = ResolveYearMonth([]int{12}, today)
	require.ErrorIs(t, err, todayErr)
	// A year does not need today.
	year, month, err := ResolveYearMonth([]int{2081}, today)
	require.NoError(t, err)
	require.Equal(t, []int{2081, 1}, []int{year, month})
	_, _, err = ResolveYearMonth([]int{2081, 1, 1}, today)
	require.Error(t, err)
}

func newTestConverter(t *testing.T) *bsdate.Converter {
	t.Helper()
	converter, err := bsdate.NewConverter(bscalendar.Embedded())
	require.NoError(t, err)
	return converter
}
