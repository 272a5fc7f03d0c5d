// Copyright 2026 Peter Edge
//
// All rights reserved.

package bsctlcmd

import (
	"errors"
	"testing"

	"github.com/bufdev/bsctl/internal/pkg/bsdate"
	"github.com/bufdev/bsctl/internal/pkg/cliio"
	"github.com/stretchr/testify/require"
)

func TestParseDateArg(t *testing.T) {
	t.Parallel()
	date, err := ParseDateArg("2082-01-15")
	require.NoError(t, err)
	require.Equal(t, bsdate.Date{Year: 2082, Month: 1, Day: 15}, date)
	_, err = ParseDateArg("2082-1-15")
	require.ErrorContains(t, err, "malformed date")
}

func TestNewDateArgError(t *testing.T) {
	t.Parallel()
	otherErr := errors.New("disk full")
	require.Equal(t, otherErr, NewDateArgError(otherErr))
	for _, dateErr := range []error{
		bsdate.ErrMalformedInput,
		bsdate.ErrInvalidDate,
		bsdate.ErrOutOfRange,
		bsdate.ErrUnknownYear,
	} {
		err := NewDateArgError(dateErr)
		require.NotEqual(t, dateErr, err)
		require.ErrorContains(t, err, dateErr.Error())
	}
}

func TestParseFormatFlag(t *testing.T) {
	t.Parallel()
	format, err := ParseFormatFlag("json")
	require.NoError(t, err)
	require.Equal(t, cliio.FormatJSON, format)
	_, err = ParseFormatFlag("xml")
	require.ErrorContains(t, err, "--format")
}
