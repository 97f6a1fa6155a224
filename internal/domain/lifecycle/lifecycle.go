// Package lifecycle holds shared constants for component start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a start or stop hook may block (DB ping, HTTP shutdown).
const DefaultTimeout = 10 * time.Second
