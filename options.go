// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package allegrodialog

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Options for Init. All fields are optional.
type Options struct {
	LibraryPath string      // Exact path of the allegro_dialog shared library. Overrides BaseDir.
	BaseDir     string      // Directory searched for the library. Defaults to the working directory, then the executable's.
	Logger      *zap.Logger // Receives debug records about addon bring-up. Defaults to a no-op logger.
}

// resolveOpts returns the library paths to try, in order, and the logger to use.
// Bare library names are appended last so the system loader path is searched too.
func resolveOpts(opts *Options) ([]string, *zap.Logger) {
	log := zap.NewNop()
	baseDir := ""
	if opts != nil {
		if opts.Logger != nil {
			log = opts.Logger
		}
		if opts.LibraryPath != "" {
			return []string{opts.LibraryPath}, log
		}
		baseDir = opts.BaseDir
	}
	if baseDir == "" {
		baseDir, _ = os.Getwd()
		if findLib(baseDir) == nil {
			if exe, _ := os.Executable(); exe != "" {
				baseDir = filepath.Dir(exe)
			}
		}
	}
	candidates := findLib(baseDir)
	candidates = append(candidates, bridgeLibNames()...)
	return candidates, log
}

func findLib(dir string) []string {
	if dir == "" {
		return nil
	}
	var found []string
	for _, name := range bridgeLibNames() {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			found = append(found, p)
		}
	}
	return found
}
