// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	allegrodialog "github.com/YindSoft/allegro-dialog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsFrom(t *testing.T) {
	v := viper.New()
	v.Set("warn", true)
	v.Set("ok-cancel", true)
	assert.Equal(t, allegrodialog.MessageBoxWarn|allegrodialog.MessageBoxOKCancel, flagsFrom(v))

	assert.Zero(t, flagsFrom(viper.New()))
}

func TestFlagsFromEnv(t *testing.T) {
	t.Setenv("ALLEGRO_DIALOG_YES_NO", "true")
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--question"}))

	v := newConfig()
	require.NoError(t, v.BindPFlags(cmd.Flags()))

	assert.Equal(t, allegrodialog.MessageBoxQuestion|allegrodialog.MessageBoxYesNo, flagsFrom(v))
}

func TestRunMissingLibrary(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--library", filepath.Join(t.TempDir(), "nope.so"), "--retries", "3"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, allegrodialog.ErrLoadLibrary)
	assert.NotContains(t, out.String(), "native dialog addon")
}
