// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package years implements the "years" command.
package years

import (
	"context"
	"strconv"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/bsctlcmd"
	"github.com/bufdev/bsctl/internal/pkg/cliio"
	"github.com/bufdev/bsctl/internal/standard/xtime"
	"github.com/spf13/pflag"
)

// NewCommand returns a new years command that lists the years available in the calendar data.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "List the Bikram Sambat years available in the calendar data",
		Args:  appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Format is the output format (table, csv, json).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	bsctlcmd.BindFormatFlag(flagSet, &f.Format)
}

type year struct {
	Year       int        `json:"year"`
	Days       int        `json:"days"`
	MonthDays  []int      `json:"month_days"`
	FirstDayAD xtime.Date `json:"first_day_ad,omitzero"`
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	format, err := bsctlcmd.ParseFormatFlag(flags.Format)
	if err != nil {
		return err
	}
	converter, _, err := bsctlcmd.NewConverter(ctx, container)
	if err != nil {
		return err
	}
	availableYears := converter.AvailableYears()
	years := make([]year, 0, len(availableYears))
	rows := make([][]string, 0, len(availableYears))
	for _, availableYear := range availableYears {
		yearLength, err := converter.YearLength(availableYear)
		if err != nil {
			return err
		}
		monthDays := make([]int, 12)
		for i := range monthDays {
			monthDays[i], err = converter.MonthLength(availableYear, i+1)
			if err != nil {
				return err
			}
		}
		// Years after a gap in the data cannot be anchored to the epoch.
		var firstDayAD xtime.Date
		if adDate, err := converter.BSToAD(availableYear, 1, 1); err == nil {
			firstDayAD = adDate
		}
		years = append(years, year{
			Year:       availableYear,
			Days:       yearLength,
			MonthDays:  monthDays,
			FirstDayAD: firstDayAD,
		})
		firstDayADString := ""
		if !firstDayAD.IsZero() {
			firstDayADString = firstDayAD.String()
		}
		rows = append(rows, []string{strconv.Itoa(availableYear), strconv.Itoa(yearLength), firstDayADString})
	}
	return cliio.Write(
		container.Stdout(),
		format,
		[]string{"YEAR", "DAYS", "FIRST_DAY_AD"},
		rows,
		years...,
	)
}
