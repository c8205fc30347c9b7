// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package allegrodialog

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/purego"
)

// Native is the allegro_dialog surface the guard drives. String arguments are
// NUL-terminated; buttons may be nil.
type Native interface {
	Init() bool
	Version() uint32
	ShowMessageBox(display uintptr, title, heading, text, buttons *byte, flags int32) int32
}

var (
	alInitNativeDialogAddon         func() bool
	alGetAllegroNativeDialogVersion func() uint32
	alShowNativeMessageBox          func(display uintptr, title, heading, text, buttons *byte, flags int32) int32
)

var (
	bridgeOnce  sync.Once
	bridgeErr   error
	bridgeReady atomic.Bool
)

// initBridge loads the library once per process. Later calls return the
// first result regardless of candidates.
func initBridge(candidates []string) error {
	bridgeOnce.Do(func() {
		bridgeErr = loadBridge(candidates)
		if bridgeErr == nil {
			bridgeReady.Store(true)
		}
	})
	return bridgeErr
}

func loadBridge(candidates []string) error {
	var errs []error
	for _, path := range candidates {
		handle, err := openLibrary(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		return resolveAllSymbols(handle)
	}
	if len(errs) == 0 {
		return fmt.Errorf("%w: no candidate paths", ErrLoadLibrary)
	}
	return fmt.Errorf("%w: %w", ErrLoadLibrary, errors.Join(errs...))
}

func resolveAllSymbols(handle uintptr) error {
	for _, reg := range []struct {
		fptr interface{}
		name string
	}{
		{&alInitNativeDialogAddon, "al_init_native_dialog_addon"},
		{&alGetAllegroNativeDialogVersion, "al_get_allegro_native_dialog_version"},
		{&alShowNativeMessageBox, "al_show_native_message_box"},
	} {
		sym, err := getSymbolAddr(handle, reg.name)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrLoadLibrary, reg.name, err)
		}
		purego.RegisterFunc(reg.fptr, sym)
	}
	return nil
}

// bridge forwards to the loaded library. Only valid after initBridge succeeds.
type bridge struct{}

func (bridge) Init() bool {
	return alInitNativeDialogAddon()
}

func (bridge) Version() uint32 {
	return alGetAllegroNativeDialogVersion()
}

func (bridge) ShowMessageBox(display uintptr, title, heading, text, buttons *byte, flags int32) int32 {
	return alShowNativeMessageBox(display, title, heading, text, buttons, flags)
}
