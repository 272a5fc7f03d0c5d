// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package data implements the "data" command group.
package data

import (
	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/command/data/datafetch"
	"github.com/bufdev/bsctl/cmd/bsctl/internal/command/data/dataverify"
)

// NewCommand returns a new data command group with calendar data management sub-commands.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Manage bsctl calendar data",
		SubCommands: []*appcmd.Command{
			datafetch.NewCommand("fetch", builder),
			dataverify.NewCommand("verify", builder),
		},
	}
}
