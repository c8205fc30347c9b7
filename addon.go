// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package allegrodialog

import (
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// Guard hands out at most one DialogAddon per OS thread and runs native
// initialization at most once. Its state only changes while the Core mutex is held.
type Guard struct {
	core     *Core
	native   Native
	log      *zap.Logger
	threadID func() uint64

	initialized bool
	acquired    map[uint64]struct{}
}

// NewGuard returns a Guard driving native under core's mutex.
// A nil core means DefaultCore and a nil log discards output.
func NewGuard(core *Core, native Native, log *zap.Logger) *Guard {
	if core == nil {
		core = DefaultCore()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Guard{
		core:     core,
		native:   native,
		log:      log,
		threadID: currentThreadID,
		acquired: make(map[uint64]struct{}),
	}
}

// Acquire returns a DialogAddon bound to the calling OS thread.
//
// On success the calling goroutine is locked to its OS thread for the rest of
// its life, so the addon stays usable from it. On failure the goroutine is
// left as it was. Acquire fails with ErrAlreadyAcquired if this thread already
// holds an addon and with ErrInitFailed if native initialization fails.
func (g *Guard) Acquire() (*DialogAddon, error) {
	runtime.LockOSThread()
	tid := g.threadID()

	mu := g.core.CoreMutex()
	mu.Lock()
	defer mu.Unlock()

	if g.initialized {
		if _, ok := g.acquired[tid]; ok {
			runtime.UnlockOSThread()
			return nil, ErrAlreadyAcquired
		}
		g.acquired[tid] = struct{}{}
		g.log.Debug("dialog addon acquired", zap.Uint64("thread", tid))
		return &DialogAddon{guard: g, owner: tid}, nil
	}

	if !g.native.Init() {
		runtime.UnlockOSThread()
		return nil, ErrInitFailed
	}
	g.initialized = true
	g.acquired[tid] = struct{}{}
	g.log.Debug("native dialog addon initialized",
		zap.Uint64("thread", tid),
		zap.String("version", formatVersion(g.native.Version())))
	return &DialogAddon{guard: g, owner: tid}, nil
}

// Initialized reports whether native initialization has succeeded.
// Once true it stays true.
func (g *Guard) Initialized() bool {
	mu := g.core.CoreMutex()
	mu.Lock()
	defer mu.Unlock()
	return g.initialized
}

func (g *Guard) acquiredOn(tid uint64) bool {
	mu := g.core.CoreMutex()
	mu.Lock()
	defer mu.Unlock()
	_, ok := g.acquired[tid]
	return ok
}

// Close is a no-op. The native addon has no shutdown here, so the process
// stays initialized and every thread keeps its acquisition.
func (g *Guard) Close() error {
	return nil
}

var (
	defaultGuardOnce sync.Once
	defaultGuard     *Guard
)

// Init loads the allegro_dialog library if needed and acquires the process
// addon for the calling thread. See Guard.Acquire for thread semantics.
//
// The first call fixes the Core and logger used by every later call; a nil
// core means DefaultCore. Library load failures match both ErrInitFailed and
// ErrLoadLibrary.
func Init(core *Core, opts *Options) (*DialogAddon, error) {
	candidates, log := resolveOpts(opts)
	if err := initBridge(candidates); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}
	defaultGuardOnce.Do(func() {
		defaultGuard = NewGuard(core, bridge{}, log)
	})
	return defaultGuard.Acquire()
}

// DialogAddon proves the owning thread may show dialogs. It must not be used
// from another thread; every method checks the caller's thread at runtime.
type DialogAddon struct {
	_     noCopy
	guard *Guard
	owner uint64
}

// noCopy lets go vet flag copies of DialogAddon.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

func (a *DialogAddon) checkThread() error {
	if a == nil || a.guard == nil {
		return ErrNilAddon
	}
	if tid := a.guard.threadID(); tid != a.owner {
		return fmt.Errorf("%w: owner %d, caller %d", ErrWrongThread, a.owner, tid)
	}
	return nil
}

// Thread returns the OS thread id the addon is bound to.
func (a *DialogAddon) Thread() uint64 {
	if a == nil {
		return 0
	}
	return a.owner
}

// Version returns the packed native addon version
// (major<<24 | minor<<16 | revision<<8 | release). It is safe from any thread.
func (a *DialogAddon) Version() int {
	if a == nil || a.guard == nil {
		return 0
	}
	return int(a.guard.native.Version())
}

// VersionString returns Version formatted as "major.minor.revision[release]".
func (a *DialogAddon) VersionString() string {
	return formatVersion(uint32(a.Version()))
}

// ShowMessageBox shows a modal message box from the owning thread and blocks
// until it is dismissed. See ShowNativeMessageBox for the arguments.
// It returns ErrWrongThread without showing anything if called elsewhere.
func (a *DialogAddon) ShowMessageBox(display Display, title, heading, text, buttons string, flags MessageBoxFlags) (MessageBoxResult, error) {
	if err := a.checkThread(); err != nil {
		return NoButton, err
	}
	return showMessageBox(a.guard.native, display, title, heading, text, buttons, flags), nil
}

func formatVersion(v uint32) string {
	return fmt.Sprintf("%d.%d.%d[%d]", v>>24, (v>>16)&0xff, (v>>8)&0xff, v&0xff)
}
