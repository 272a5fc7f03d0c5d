// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package dataverify implements the "data verify" command.
package dataverify

import (
	"context"
	"strconv"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/bsctlcmd"
	"github.com/bufdev/bsctl/internal/bsctl/bsctlsource"
	"github.com/bufdev/bsctl/internal/pkg/bscalendar"
	"github.com/bufdev/bsctl/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// fileFlagName is the flag name for the reference data file to verify.
const fileFlagName = "file"

// NewCommand returns a new data verify command that checks calendar reference data.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Verify calendar reference data",
		Long: `Verify calendar reference data.

Checks that the data is well-formed, that every year from the first to the
last is present, and that every day converts to a Gregorian date and back.
By default the configured data source is verified. Use --file to verify a
reference data file instead.`,
		Args: appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// File is the reference data file to verify.
	File string
	// Format is the output format (table, csv, json).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.File, fileFlagName, "", "The reference data file to verify")
	bsctlcmd.BindFormatFlag(flagSet, &f.Format)
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	format, err := bsctlcmd.ParseFormatFlag(flags.Format)
	if err != nil {
		return err
	}
	var dataSource bscalendar.DataSource
	if flags.File != "" {
		dataSource, err = bsctlsource.ReadFile(ctx, flags.File)
		if err != nil {
			return err
		}
	} else {
		config, err := bsctlcmd.ReadConfig(container)
		if err != nil {
			return err
		}
		dataSource, err = bsctlsource.New(ctx, container.Logger(), config, container.DataDirPath())
		if err != nil {
			return err
		}
	}
	result, err := bsctlsource.Verify(ctx, dataSource)
	if err != nil {
		return err
	}
	container.Logger().Info("calendar data verified", "start_year", result.StartYear, "end_year", result.EndYear, "days", result.Days)
	return cliio.Write(
		container.Stdout(),
		format,
		[]string{"START_YEAR", "END_YEAR", "YEARS", "DAYS"},
		[][]string{{
			strconv.Itoa(result.StartYear),
			strconv.Itoa(result.EndYear),
			strconv.Itoa(result.Years),
			strconv.Itoa(result.Days),
		}},
		result,
	)
}
