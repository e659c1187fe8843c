// File: utils/constants.go
package utils

import "time"

// RoleCachePrefix is the prefix used for Redis role cache keys.
const RoleCachePrefix = "role:"

// RoleCacheTTL is the default time-to-live for cached roles.
const RoleCacheTTL = 10 * time.Minute
