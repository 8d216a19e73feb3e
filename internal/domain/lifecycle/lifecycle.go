// Package lifecycle holds shared timing constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds individual startup and shutdown steps, such as the
// initial database ping and HTTP server drain.
const DefaultTimeout = 10 * time.Second
