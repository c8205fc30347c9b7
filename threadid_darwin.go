// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package allegrodialog

import (
	"fmt"

	"github.com/ebitengine/purego"
)

var pthreadThreadIDNP func(thread uintptr, tid *uint64) int32

func init() {
	lib, err := purego.Dlopen("/usr/lib/libSystem.B.dylib", purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		panic(fmt.Sprintf("allegrodialog: loading libSystem failed: %v", err))
	}
	purego.RegisterLibFunc(&pthreadThreadIDNP, lib, "pthread_threadid_np")
}

func currentThreadID() uint64 {
	var tid uint64
	// A zero thread means the calling thread.
	pthreadThreadIDNP(0, &tid)
	return tid
}
