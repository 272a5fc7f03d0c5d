// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package datafetch implements the "data fetch" command.
package datafetch

import (
	"context"
	"strconv"
	"time"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/bsctlcmd"
	"github.com/bufdev/bsctl/internal/bsctl/bsctlconfig"
	"github.com/bufdev/bsctl/internal/bsctl/bsctlsource"
	"github.com/bufdev/bsctl/internal/pkg/bsreference"
	"github.com/bufdev/bsctl/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// urlFlagName is the flag name for the download URL.
const urlFlagName = "url"

// NewCommand returns a new data fetch command that downloads calendar reference data.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Download calendar reference data into the data directory",
		Long: `Download calendar reference data into the data directory.

The URL is taken from --url, the ` + bsctlconfig.CalendarURLEnvVar + ` environment variable, or
calendar.url in the configuration file, in that order. The data is validated
before it replaces any previously downloaded data. Set calendar.source to
download in the configuration file to use it.`,
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
	// URL is the URL to download from.
	URL string
	// Format is the output format (table, csv, json).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.URL, urlFlagName, "", "The URL to download calendar reference data from")
	bsctlcmd.BindFormatFlag(flagSet, &f.Format)
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	format, err := bsctlcmd.ParseFormatFlag(flags.Format)
	if err != nil {
		return err
	}
	config, err := bsctlcmd.ReadConfig(container)
	if err != nil {
		return err
	}
	url := flags.URL
	if url == "" {
		url = config.URL
	}
	if url == "" {
		return appcmd.NewInvalidArgumentErrorf(
			"no calendar URL, set --%s, the %s environment variable, or calendar.url in the configuration file",
			urlFlagName,
			bsctlconfig.CalendarURLEnvVar,
		)
	}
	logger := container.Logger()
	fetcher := bsctlsource.NewFetcher(
		logger,
		bsreference.NewClient(logger),
		container.DataDirPath(),
	)
	metadata, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}
	if format == cliio.FormatTable {
		return cliio.WriteKeyValues(
			container.Stdout(),
			[][2]string{
				{"URL", metadata.URL},
				{"Version", metadata.Version},
				{"Years", metadataYears(metadata)},
				{"Downloaded", metadata.DownloadedAt.Format(time.RFC3339)},
			},
		)
	}
	return cliio.Write(
		container.Stdout(),
		format,
		[]string{"URL", "VERSION", "YEARS", "DOWNLOADED_AT"},
		[][]string{{metadata.URL, metadata.Version, metadataYears(metadata), metadata.DownloadedAt.Format(time.RFC3339)}},
		metadata,
	)
}

func metadataYears(metadata *bsctlsource.Metadata) string {
	return strconv.Itoa(metadata.StartYear) + "-" + strconv.Itoa(metadata.EndYear)
}
