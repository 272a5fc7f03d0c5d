// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package bs2ad implements the "bs2ad" command.
package bs2ad

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/bsctlcmd"
	"github.com/bufdev/bsctl/internal/pkg/bsdate"
	"github.com/bufdev/bsctl/internal/pkg/bslocale"
	"github.com/bufdev/bsctl/internal/pkg/cliio"
	"github.com/bufdev/bsctl/internal/standard/xtime"
	"github.com/spf13/pflag"
)

// NewCommand returns a new bs2ad command that converts a Bikram Sambat date to Gregorian.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <YYYY-MM-DD>",
		Short: "Convert a Bikram Sambat (BS) date to Gregorian (AD)",
		Args:  appcmd.ExactArgs(1),
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

type conversion struct {
	BS        bsdate.Date `json:"bs"`
	AD        xtime.Date  `json:"ad"`
	Formatted string      `json:"formatted"`
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	format, err := bsctlcmd.ParseFormatFlag(flags.Format)
	if err != nil {
		return err
	}
	bsDate, err := bsctlcmd.ParseDateArg(container.Arg(0))
	if err != nil {
		return err
	}
	converter, _, err := bsctlcmd.NewConverter(ctx, container)
	if err != nil {
		return err
	}
	adDate, err := converter.BSDateToAD(bsDate)
	if err != nil {
		return bsctlcmd.NewDateArgError(err)
	}
	result := conversion{
		BS:        bsDate,
		AD:        adDate,
		Formatted: bslocale.FormatEnglishDate(adDate) + ", " + bslocale.DayName(adDate.Weekday(), bslocale.LocaleEnglish),
	}
	if format == cliio.FormatTable {
		return cliio.WriteKeyValues(
			container.Stdout(),
			[][2]string{
				{"BS", result.BS.String()},
				{"AD", result.AD.String()},
				{"Date", result.Formatted},
			},
		)
	}
	return cliio.Write(
		container.Stdout(),
		format,
		[]string{"BS", "AD", "FORMATTED"},
		[][]string{{result.BS.String(), result.AD.String(), result.Formatted}},
		result,
	)
}
