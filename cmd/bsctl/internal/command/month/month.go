// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package month implements the "month" command.
package month

import (
	"context"
	"fmt"
	"strconv"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/bsctlcmd"
	"github.com/bufdev/bsctl/internal/bsctl/bsctlmonth"
	"github.com/bufdev/bsctl/internal/pkg/bsdate"
	"github.com/bufdev/bsctl/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// NewCommand returns a new month command that prints a Bikram Sambat month calendar.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " [year] [month]",
		Short: "Print a Bikram Sambat month calendar",
		Long: `Print a Bikram Sambat month calendar.

With no arguments, the current month in Nepal is printed. With one argument,
a value of 12 or less is a month of the current year, and any other value is
a year, for which the first month is printed. With two arguments, the year and
month are given.

Each day shows the Bikram Sambat day with the Gregorian day of month in
parentheses. Today is marked with a "*".`,
		Args: appcmd.MaximumNArgs(2),
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

func run(ctx context.Context, container appext.Container, flags *flags) error {
	format, err := bsctlcmd.ParseFormatFlag(flags.Format)
	if err != nil {
		return err
	}
	args := make([]int, container.NumArgs())
	for i := range args {
		value, err := strconv.Atoi(container.Arg(i))
		if err != nil || value < 1 {
			return appcmd.NewInvalidArgumentErrorf("invalid argument %q, must be a positive integer", container.Arg(i))
		}
		args[i] = value
	}
	converter, config, err := bsctlcmd.NewConverter(ctx, container)
	if err != nil {
		return err
	}
	today, todayErr := converter.CurrentDate()
	year, month, err := bsctlmonth.ResolveYearMonth(
		args,
		func() (bsdate.Date, error) {
			return today, todayErr
		},
	)
	if err != nil {
		return err
	}
	if todayErr != nil {
		// Today may be outside of the data, which does not matter once the year is given.
		container.Logger().Debug("could not determine today", "error", todayErr)
	}
	bsMonth, err := bsctlmonth.New(converter, year, month, today)
	if err != nil {
		return bsctlcmd.NewDateArgError(err)
	}
	locale := config.Locale
	switch format {
	case cliio.FormatTable:
		if _, err := fmt.Fprintf(container.Stdout(), "%s\n\n", bsMonth.Title(locale)); err != nil {
			return err
		}
		return cliio.WriteTable(container.Stdout(), bsctlmonth.GridHeaders(locale), bsMonth.GridRows(locale))
	default:
		return cliio.Write(
			container.Stdout(),
			format,
			bsctlmonth.ListHeaders(),
			bsMonth.ListRows(locale),
			bsMonth.JSONDays(locale)...,
		)
	}
}
