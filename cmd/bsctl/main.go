// Copyright 2026 Peter Edge
//
// All rights reserved.

package main

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/command/ad2bs"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/command/bs2ad"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/command/config"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/command/data"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/command/info"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/command/month"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/command/today"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/command/years"
)

func main() {
	appcmd.Main(context.Background(), newRootCommand("bsctl"))
}

// newRootCommand creates the root bsctl command with all sub-commands.
func newRootCommand(name string) *appcmd.Command {
	builder := appext.NewBuilder(name)
	return &appcmd.Command{
		Use:   name,
		Short: "Convert between Bikram Sambat and Gregorian dates",
		Long: `Convert between Bikram Sambat (BS) and Gregorian (AD) dates.

Bikram Sambat month lengths are not computable and come from reference data.
By default the data compiled into bsctl is used, covering BS 2000 through
BS 2090. A different data source can be selected in the configuration file,
see "bsctl config init".

Dates are given and printed as YYYY-MM-DD. "Today" is always the current
date in Nepal (UTC+05:45), regardless of the local time zone.`,
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			today.NewCommand("today", builder),
			ad2bs.NewCommand("ad2bs", builder),
			bs2ad.NewCommand("bs2ad", builder),
			month.NewCommand("month", builder),
			info.NewCommand("info", builder),
			years.NewCommand("years", builder),
			config.NewCommand("config", builder),
			data.NewCommand("data", builder),
		},
	}
}
