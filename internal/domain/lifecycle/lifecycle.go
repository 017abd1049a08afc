// Package lifecycle holds the timeouts shared by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook.
const DefaultTimeout = 10 * time.Second

// MigrationTimeout bounds schema migration at startup.
const MigrationTimeout = time.Minute
