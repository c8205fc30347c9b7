// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package allegrodialog

import "sync"

// Core is the shared runtime whose mutex serializes addon bring-up.
// Every addon built on the same Core takes the same lock.
type Core struct {
	mu sync.Mutex
}

var defaultCore = &Core{}

// DefaultCore returns the process-wide Core.
func DefaultCore() *Core {
	return defaultCore
}

// CoreMutex returns the lock guarding addon state transitions.
func (c *Core) CoreMutex() sync.Locker {
	return &c.mu
}
