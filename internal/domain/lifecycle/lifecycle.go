// Package lifecycle holds shared lifecycle constants for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks such as database pings
// and HTTP server drains.
const DefaultTimeout = 10 * time.Second
