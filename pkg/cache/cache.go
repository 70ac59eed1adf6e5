package cache

import (
	"context"
	"time"
)

// Cache is the contract for the session revocation store. Content
// records are never cached; every repository read hits the database.
// The only keys living here are denylisted access-token IDs, written on
// logout and expiring with the token itself.
type Cache interface {
	// Set stores a value under key with a TTL.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Exists reports whether key is present (and not expired).
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes keys.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
