// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package allegrodialog

import "errors"

var (
	// ErrAlreadyAcquired is returned by Acquire on a thread that already holds a DialogAddon.
	ErrAlreadyAcquired = errors.New("dialog addon has already been created on this thread")

	// ErrInitFailed is returned when the native addon refuses to initialize,
	// for example when no display environment is available.
	ErrInitFailed = errors.New("could not initialize the dialog addon")

	// ErrLoadLibrary wraps failures to open the allegro_dialog shared library.
	// It is always reported together with ErrInitFailed.
	ErrLoadLibrary = errors.New("could not load the allegro_dialog library")

	// ErrWrongThread is returned when a DialogAddon is used from a thread other than its owner.
	ErrWrongThread = errors.New("dialog addon used from a thread that does not own it")

	ErrNilAddon = errors.New("nil dialog addon")
)
