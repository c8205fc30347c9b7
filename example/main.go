// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	allegrodialog "github.com/YindSoft/allegro-dialog"
	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func init() {
	// Dialogs must be shown from the thread that acquired the addon.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newConfig reads settings from flags first, then ALLEGRO_DIALOG_* variables.
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("ALLEGRO_DIALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func newRootCmd() *cobra.Command {
	v := newConfig()
	cmd := &cobra.Command{
		Use:          "dialogdemo",
		Short:        "Show a native Allegro message box",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, v)
		},
	}

	f := cmd.Flags()
	f.String("library", "", "path to the allegro_dialog shared library")
	f.String("base-dir", "", "directory containing the allegro_dialog shared library")
	f.String("title", "Allegro", "window title")
	f.String("heading", "Native dialog", "heading shown above the text")
	f.String("text", "Hello from Go.", "message body")
	f.String("buttons", "", "custom button labels separated by '|'")
	f.Bool("warn", false, "show a warning icon")
	f.Bool("error", false, "show an error icon")
	f.Bool("question", false, "show a question icon")
	f.Bool("ok-cancel", false, "show OK and Cancel buttons")
	f.Bool("yes-no", false, "show Yes and No buttons")
	f.Uint64("retries", 0, "retry addon initialization this many times")
	f.Bool("verbose", false, "log addon bring-up")
	_ = v.BindPFlags(f)

	return cmd
}

func flagsFrom(v *viper.Viper) allegrodialog.MessageBoxFlags {
	var flags allegrodialog.MessageBoxFlags
	for _, opt := range []struct {
		key  string
		flag allegrodialog.MessageBoxFlags
	}{
		{"warn", allegrodialog.MessageBoxWarn},
		{"error", allegrodialog.MessageBoxError},
		{"question", allegrodialog.MessageBoxQuestion},
		{"ok-cancel", allegrodialog.MessageBoxOKCancel},
		{"yes-no", allegrodialog.MessageBoxYesNo},
	} {
		if v.GetBool(opt.key) {
			flags |= opt.flag
		}
	}
	return flags
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	log := zap.NewNop()
	if v.GetBool("verbose") {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		log = dev
	}
	defer log.Sync() //nolint:errcheck

	opts := &allegrodialog.Options{
		LibraryPath: v.GetString("library"),
		BaseDir:     v.GetString("base-dir"),
		Logger:      log,
	}

	var addon *allegrodialog.DialogAddon
	initAddon := func() error {
		a, err := allegrodialog.Init(nil, opts)
		switch {
		case err == nil:
			addon = a
			return nil
		case errors.Is(err, allegrodialog.ErrLoadLibrary):
			return backoff.Permanent(err)
		case errors.Is(err, allegrodialog.ErrInitFailed):
			log.Debug("dialog addon init failed, retrying", zap.Error(err))
			return err
		default:
			return backoff.Permanent(err)
		}
	}
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), v.GetUint64("retries"))
	if err := backoff.Retry(initAddon, policy); err != nil {
		return fmt.Errorf("dialog addon: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "native dialog addon %s\n", addon.VersionString())

	flags := flagsFrom(v)
	res, err := addon.ShowMessageBox(nil, v.GetString("title"), v.GetString("heading"), v.GetString("text"), v.GetString("buttons"), flags)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "flags %s: %s\n", flags, res)
	return nil
}
