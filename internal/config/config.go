package config

import "time"

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; must be provided via flag or environment.
	DefaultDatabaseURL = ""

	// DefaultTokenTTL is the lifetime of an issued session token.
	// Expiry is the only invalidation mechanism; there is no revocation list.
	DefaultTokenTTL = 24 * time.Hour

	// BcryptCost is the cost factor for password hashing.
	BcryptCost = 12
)
