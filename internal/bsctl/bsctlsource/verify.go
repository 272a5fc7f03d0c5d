// Copyright 2026 Peter Edge
//
// All rights reserved.

package bsctlsource

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/bufdev/bsctl/internal/pkg/bscalendar"
	"github.com/bufdev/bsctl/internal/pkg/bsdate"
	"github.com/bufdev/bsctl/internal/standard/xtime"
	"golang.org/x/sync/errgroup"
)

// VerifyResult summarizes a successful Verify.
type VerifyResult struct {
	// StartYear is the first year of the data source.
	StartYear int `json:"start_year"`
	// EndYear is the last year of the data source.
	EndYear int `json:"end_year"`
	// Years is the number of years checked.
	Years int `json:"years"`
	// Days is the number of days checked.
	Days int `json:"days"`
}

// Verify checks that every year from the start to the end of the data source
// is present, and that every day converts to a Gregorian date and back to
// itself, with consecutive days mapping to consecutive Gregorian dates.
//
// Years are checked concurrently.
func Verify(ctx context.Context, dataSource bscalendar.DataSource) (*VerifyResult, error) {
	converter, err := bsdate.NewConverter(dataSource)
	if err != nil {
		return nil, err
	}
	startYear := dataSource.StartYear()
	endYear := dataSource.EndYear()
	var days atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for year := startYear; year <= endYear; year++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			yearDays, err := verifyYear(converter, year)
			if err != nil {
				return err
			}
			days.Add(int64(yearDays))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &VerifyResult{
		StartYear: startYear,
		EndYear:   endYear,
		Years:     endYear - startYear + 1,
		Days:      int(days.Load()),
	}, nil
}

// verifyYear round-trips every day of the year and returns the number of days checked.
func verifyYear(converter *bsdate.Converter, year int) (int, error) {
	yearLength, err := converter.YearLength(year)
	if err != nil {
		return 0, fmt.Errorf("year %d: %w", year, err)
	}
	var previous xtime.Date
	var days int
	for month := 1; month <= bscalendar.MonthsPerYear; month++ {
		monthLength, err := converter.MonthLength(year, month)
		if err != nil {
			return 0, fmt.Errorf("year %d: %w", year, err)
		}
		for day := 1; day <= monthLength; day++ {
			date := bsdate.Date{Year: year, Month: month, Day: day}
			adDate, err := converter.BSDateToAD(date)
			if err != nil {
				return 0, fmt.Errorf("converting %v: %w", date, err)
			}
			if !previous.IsZero() && adDate != previous.AddDays(1) {
				return 0, fmt.Errorf("%v converted to %v, expected %v", date, adDate, previous.AddDays(1))
			}
			bsDate, err := converter.ADToBS(adDate)
			if err != nil {
				return 0, fmt.Errorf("converting %v back: %w", adDate, err)
			}
			if bsDate != date {
				return 0, fmt.Errorf("%v converted to %v and back to %v", date, adDate, bsDate)
			}
			previous = adDate
			days++
		}
	}
	if days != yearLength {
		return 0, fmt.Errorf("year %d: checked %d days, year length is %d", year, days, yearLength)
	}
	return days, nil
}
