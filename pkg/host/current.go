package host

import (
	"fmt"
	"sync"
)

// The process-global current context. Exactly one writer sets it at
// startup and clears it at shutdown; collaborators only read it.
var (
	currentMu  sync.RWMutex
	currentCtx *Context
)

// SetCurrent installs ctx as the process-wide current context. Only
// one context may be current at a time; installing over a live one is
// an error.
func SetCurrent(ctx *Context) error {
	currentMu.Lock()
	defer currentMu.Unlock()

	if currentCtx != nil {
		return fmt.Errorf("a context is already current")
	}
	currentCtx = ctx
	return nil
}

// Current returns the process-wide current context, or nil when none
// is installed.
func Current() *Context {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return currentCtx
}

// ClearCurrent removes the current context. Clearing when none is
// installed is an error: setup and teardown must pair exactly.
func ClearCurrent() error {
	currentMu.Lock()
	defer currentMu.Unlock()

	if currentCtx == nil {
		return fmt.Errorf("no context is current")
	}
	currentCtx = nil
	return nil
}
