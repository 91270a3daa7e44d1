// Package lifecycle holds limits shared by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start-up checks and graceful shutdown of long-lived components.
const DefaultTimeout = 10 * time.Second
