// Package lifecycle holds timing constants shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single OnStart or OnStop hook.
const DefaultTimeout = 15 * time.Second

// CleanupTimeout bounds bookkeeping that must finish after the caller has gone away.
const CleanupTimeout = 5 * time.Second
