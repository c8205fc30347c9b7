// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package allegrodialog exposes Allegro 5's native dialog addon (modal OS
// message boxes) to Go through purego, without cgo.
//
// The addon may be initialized at most once per process, and a handle obtained
// on one OS thread must not be used from another. Init enforces both:
//
//	func init() {
//	    // Dialog calls must stay on the thread that acquired the addon.
//	    runtime.LockOSThread()
//	}
//
//	addon, err := allegrodialog.Init(nil, nil)
//	if err != nil { ... }
//	fmt.Println("native dialog version", addon.VersionString())
//
//	res, err := addon.ShowMessageBox(nil, "Title", "Heading", "Body", "",
//	    allegrodialog.MessageBoxWarn|allegrodialog.MessageBoxOKCancel)
//
// Init pins the calling goroutine to its OS thread on success. A second Init on
// the same thread fails with [ErrAlreadyAcquired]; Init on another thread
// succeeds without re-running native initialization. The thread's
// acquisition is never released, even if the returned [DialogAddon] is
// discarded.
//
// Text passed to a message box is truncated at the first NUL byte, the same
// way a C string would be.
//
// Requirements: the allegro_dialog shared library (allegro_dialog-5.2.dll on
// Windows, liballegro_dialog.so on Linux, liballegro_dialog.dylib on macOS)
// must be present in the directory specified by [Options.BaseDir], next to the
// executable, or on the system loader path. The host program is responsible
// for initializing Allegro itself before calling Init.
package allegrodialog
