// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package today implements the "today" command.
package today

import (
	"context"
	"time"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/bsctlcmd"
	"github.com/bufdev/bsctl/internal/pkg/bsdate"
	"github.com/bufdev/bsctl/internal/pkg/bslocale"
	"github.com/bufdev/bsctl/internal/pkg/cliio"
	"github.com/bufdev/bsctl/internal/pkg/nepaltime"
	"github.com/bufdev/bsctl/internal/standard/xtime"
	"github.com/spf13/pflag"
)

// NewCommand returns a new today command that prints the current Bikram Sambat date.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Print the current Bikram Sambat date in Nepal",
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

type today struct {
	BS        bsdate.Date `json:"bs"`
	AD        xtime.Date  `json:"ad"`
	Formatted string      `json:"formatted"`
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	format, err := bsctlcmd.ParseFormatFlag(flags.Format)
	if err != nil {
		return err
	}
	converter, config, err := bsctlcmd.NewConverter(ctx, container)
	if err != nil {
		return err
	}
	// Read the clock once so the BS and AD dates agree.
	now := converter.Now()
	formatter := bslocale.NewFormatter(
		converter,
		bslocale.FormatterWithLocale(config.Locale),
		bslocale.FormatterWithNow(func() time.Time { return now }),
	)
	adDate := nepaltime.LocalDate(now)
	bsDate, err := converter.ADToBS(adDate)
	if err != nil {
		return err
	}
	result := today{
		BS:        bsDate,
		AD:        adDate,
		Formatted: formatter.CurrentDateFormatted(),
	}
	if format == cliio.FormatTable {
		_, err := container.Stdout().Write([]byte(result.Formatted + "\n"))
		return err
	}
	return cliio.Write(
		container.Stdout(),
		format,
		[]string{"BS", "AD", "FORMATTED"},
		[][]string{{result.BS.String(), result.AD.String(), result.Formatted}},
		result,
	)
}
