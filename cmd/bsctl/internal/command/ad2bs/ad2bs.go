// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package ad2bs implements the "ad2bs" command.
package ad2bs

import (
	"context"
	"strings"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/bsctlcmd"
	"github.com/bufdev/bsctl/internal/pkg/bsdate"
	"github.com/bufdev/bsctl/internal/pkg/cliio"
	"github.com/bufdev/bsctl/internal/standard/xtime"
	"github.com/spf13/pflag"
)

// NewCommand returns a new ad2bs command that converts a Gregorian date to Bikram Sambat.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <YYYY-MM-DD>",
		Short: "Convert a Gregorian (AD) date to Bikram Sambat (BS)",
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
	AD        xtime.Date  `json:"ad"`
	BS        bsdate.Date `json:"bs"`
	Formatted string      `json:"formatted"`
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	format, err := bsctlcmd.ParseFormatFlag(flags.Format)
	if err != nil {
		return err
	}
	adDate, err := xtime.ParseDate(strings.TrimSpace(container.Arg(0)))
	if err != nil {
		return appcmd.NewInvalidArgumentErrorf("invalid date %q, expected YYYY-MM-DD: %v", container.Arg(0), err)
	}
	converter, config, err := bsctlcmd.NewConverter(ctx, container)
	if err != nil {
		return err
	}
	bsDate, err := converter.ADToBS(adDate)
	if err != nil {
		return bsctlcmd.NewDateArgError(err)
	}
	result := conversion{
		AD:        adDate,
		BS:        bsDate,
		Formatted: bsctlcmd.NewFormatter(converter, config).FormatDateWithWeekday(bsDate),
	}
	if format == cliio.FormatTable {
		return cliio.WriteKeyValues(
			container.Stdout(),
			[][2]string{
				{"AD", result.AD.String()},
				{"BS", result.BS.String()},
				{"Date", result.Formatted},
			},
		)
	}
	return cliio.Write(
		container.Stdout(),
		format,
		[]string{"AD", "BS", "FORMATTED"},
		[][]string{{result.AD.String(), result.BS.String(), result.Formatted}},
		result,
	)
}
