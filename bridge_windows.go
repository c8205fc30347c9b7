// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package allegrodialog

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func openLibrary(path string) (uintptr, error) {
	lib, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return uintptr(lib), nil
}

func getSymbolAddr(handle uintptr, name string) (uintptr, error) {
	sym, err := windows.GetProcAddress(windows.Handle(handle), name)
	if err != nil {
		return 0, err
	}
	if sym == 0 {
		return 0, fmt.Errorf("symbol %q not found in DLL", name)
	}
	return sym, nil
}

func bridgeLibNames() []string {
	return []string{"allegro_dialog-5.2.dll", "allegro_dialog-5.2-md.dll"}
}
