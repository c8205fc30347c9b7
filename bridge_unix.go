// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build linux || darwin

package allegrodialog

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

func openLibrary(path string) (uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return handle, nil
}

func getSymbolAddr(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func bridgeLibNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"liballegro_dialog.5.2.dylib", "liballegro_dialog.dylib"}
	}
	return []string{"liballegro_dialog.so.5.2", "liballegro_dialog.so"}
}
