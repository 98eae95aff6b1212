// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup side effects such as
// index creation.
const DefaultTimeout = 10 * time.Second
