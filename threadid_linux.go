// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package allegrodialog

import "golang.org/x/sys/unix"

func currentThreadID() uint64 {
	return uint64(unix.Gettid())
}
