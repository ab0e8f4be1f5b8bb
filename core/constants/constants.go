package constants

import "time"

// Request handling
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultTimeout        = 10 * time.Second
)

// Database pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Echo context keys
const (
	ContextTokenData = "token_data"
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist  = "token:blacklist:"
	RedisKeyLoginAttempt    = "login:attempt:"
	RedisKeyLoginBlock      = "login:block:"
	RedisKeyAvailabilityDay = "availability:day:"
)

// Login throttling
const (
	MaxLoginAttempts = 5
	BlockDuration    = 15 * time.Minute
)

// Realtime topics; formatted with the creator ID.
const (
	TopicEvents       = "events:%s"
	TopicAvailability = "availability:%s"
)

// StatusPollInterval is how often the shared poller re-derives event statuses.
// The UI accepts up to this much staleness in a displayed state.
const StatusPollInterval = 30 * time.Second
