// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package allegrodialog

import (
	"fmt"
	"strings"
)

// MessageBoxFlags selects the icon and button style of a message box.
// Values combine with bitwise OR.
type MessageBoxFlags int32

// ALLEGRO_MESSAGEBOX_* values
const (
	MessageBoxWarn     MessageBoxFlags = 1 << 0
	MessageBoxError    MessageBoxFlags = 1 << 1
	MessageBoxOKCancel MessageBoxFlags = 1 << 2
	MessageBoxYesNo    MessageBoxFlags = 1 << 3
	MessageBoxQuestion MessageBoxFlags = 1 << 4
)

var flagNames = []struct {
	flag MessageBoxFlags
	name string
}{
	{MessageBoxWarn, "WARN"},
	{MessageBoxError, "ERROR"},
	{MessageBoxOKCancel, "OK_CANCEL"},
	{MessageBoxYesNo, "YES_NO"},
	{MessageBoxQuestion, "QUESTION"},
}

func (f MessageBoxFlags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	rest := f
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", int32(rest)))
	}
	return strings.Join(parts, "|")
}

// MessageBoxResult is the button the user dismissed a message box with.
type MessageBoxResult int

const (
	// NoButton means the box was closed without pressing a button, or the
	// native layer returned a code this package does not recognize.
	NoButton MessageBoxResult = iota
	Affirmative
	Negatory
)

func (r MessageBoxResult) String() string {
	switch r {
	case Affirmative:
		return "Affirmative"
	case Negatory:
		return "Negatory"
	default:
		return "NoButton"
	}
}

func resultFromCode(code int32) MessageBoxResult {
	switch code {
	case 1:
		return Affirmative
	case 2:
		return Negatory
	default:
		return NoButton
	}
}

// Display is a host window a message box can be parented to.
// NativeHandle returns the raw ALLEGRO_DISPLAY pointer.
type Display interface {
	NativeHandle() uintptr
}

func displayHandle(d Display) uintptr {
	if d == nil {
		return 0
	}
	return d.NativeHandle()
}

// cString returns s as a NUL-terminated byte slice, cut at the first NUL in s.
func cString(s string) []byte {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// showMessageBox blocks until the user dismisses the box. An empty buttons
// string selects the native default buttons for flags.
func showMessageBox(n Native, display Display, title, heading, text, buttons string, flags MessageBoxFlags) MessageBoxResult {
	t := cString(title)
	h := cString(heading)
	x := cString(text)
	var b *byte
	if buttons != "" {
		b = &cString(buttons)[0]
	}
	code := n.ShowMessageBox(displayHandle(display), &t[0], &h[0], &x[0], b, int32(flags))
	return resultFromCode(code)
}

// ShowNativeMessageBox shows a modal message box and blocks until it is
// dismissed. Pass a nil display for a free-standing box and an empty buttons
// string for the default buttons of flags. Buttons are separated by '|'.
//
// The addon must have been acquired with Init first, and the call must come
// from a thread holding a DialogAddon. Before the library is loaded this
// returns NoButton without showing anything; the thread requirement is not
// checked here, use DialogAddon.ShowMessageBox for that.
func ShowNativeMessageBox(display Display, title, heading, text, buttons string, flags MessageBoxFlags) MessageBoxResult {
	if !bridgeReady.Load() {
		return NoButton
	}
	return showMessageBox(bridge{}, display, title, heading, text, buttons, flags)
}
