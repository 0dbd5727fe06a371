// Package lifecycle holds shared timeouts for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart/OnStop hooks such as database pings and server shutdown.
const DefaultTimeout = 10 * time.Second
