// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package info implements the "info" command.
package info

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/bsctlcmd"
	"github.com/bufdev/bsctl/internal/bsctl/bsctlinfo"
	"github.com/bufdev/bsctl/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// calendarFlagName is the flag name for the calendar of the input date.
const calendarFlagName = "calendar"

// NewCommand returns a new info command that prints details for a date.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <YYYY-MM-DD>",
		Short: "Print details for a Bikram Sambat or Gregorian date",
		Long: `Print details for a Bikram Sambat or Gregorian date.

By default the calendar of the date is detected from its year: a year at or
after the first year of the calendar data (2000 for the embedded data) is read
as Bikram Sambat, and an earlier year as Gregorian. Use --calendar to override.`,
		Args: appcmd.ExactArgs(1),
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
	// Calendar is the calendar of the input date (auto, ad, bs).
	Calendar string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	bsctlcmd.BindFormatFlag(flagSet, &f.Format)
	flagSet.StringVar(&f.Calendar, calendarFlagName, "auto", "The calendar of the input date (auto, ad, bs)")
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	format, err := bsctlcmd.ParseFormatFlag(flags.Format)
	if err != nil {
		return err
	}
	calendar, err := bsctlinfo.ParseCalendar(flags.Calendar)
	if err != nil {
		return appcmd.NewInvalidArgumentErrorf("--%s: %v", calendarFlagName, err)
	}
	converter, config, err := bsctlcmd.NewConverter(ctx, container)
	if err != nil {
		return err
	}
	dateInfo, err := bsctlinfo.Get(converter, container.Arg(0), calendar, config.Locale)
	if err != nil {
		return bsctlcmd.NewDateArgError(err)
	}
	if format == cliio.FormatTable {
		return cliio.WriteKeyValues(container.Stdout(), dateInfo.KeyValues())
	}
	return cliio.Write(
		container.Stdout(),
		format,
		bsctlinfo.Headers(),
		[][]string{dateInfo.Row()},
		dateInfo,
	)
}
