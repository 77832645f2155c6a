// Package lifecycle holds shared lifecycle constants for graceful startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of managed resources.
const DefaultTimeout = 10 * time.Second
