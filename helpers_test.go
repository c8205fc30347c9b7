// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package allegrodialog

import (
	"runtime"
	"sync"
	"testing"
	"unsafe"
)

type messageBoxCall struct {
	display uintptr
	title   string
	heading string
	text    string
	buttons *string
	flags   int32
}

// fakeNative records every call made by the guard.
type fakeNative struct {
	mu       sync.Mutex
	initOK   bool
	inits    int
	version  uint32
	code     int32
	boxCalls []messageBoxCall
}

func newFakeNative() *fakeNative {
	return &fakeNative{initOK: true, version: 5<<24 | 2<<16 | 9<<8 | 1}
}

func (f *fakeNative) Init() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inits++
	return f.initOK
}

func (f *fakeNative) Version() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.version
}

func (f *fakeNative) ShowMessageBox(display uintptr, title, heading, text, buttons *byte, flags int32) int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	call := messageBoxCall{
		display: display,
		title:   goString(title),
		heading: goString(heading),
		text:    goString(text),
		flags:   flags,
	}
	if buttons != nil {
		s := goString(buttons)
		call.buttons = &s
	}
	f.boxCalls = append(f.boxCalls, call)
	return f.code
}

func (f *fakeNative) setInitOK(ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.initOK = ok
}

func (f *fakeNative) setCode(code int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.code = code
}

func (f *fakeNative) initCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inits
}

func (f *fakeNative) calls() []messageBoxCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]messageBoxCall(nil), f.boxCalls...)
}

func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// osThread runs functions on one goroutine locked to its own OS thread.
// The thread lives until the test ends, so two osThreads never share a thread.
type osThread struct {
	calls chan func()
	done  chan struct{}
}

func startThread(t *testing.T) *osThread {
	t.Helper()
	th := &osThread{calls: make(chan func()), done: make(chan struct{})}
	go func() {
		runtime.LockOSThread()
		defer close(th.done)
		for fn := range th.calls {
			fn()
		}
	}()
	t.Cleanup(func() {
		close(th.calls)
		<-th.done
	})
	return th
}

func (th *osThread) run(fn func()) {
	done := make(chan struct{})
	th.calls <- func() {
		defer close(done)
		fn()
	}
	<-done
}

func (th *osThread) acquire(g *Guard) (*DialogAddon, error) {
	var (
		addon *DialogAddon
		err   error
	)
	th.run(func() { addon, err = g.Acquire() })
	return addon, err
}

type fakeDisplay uintptr

func (d fakeDisplay) NativeHandle() uintptr { return uintptr(d) }
