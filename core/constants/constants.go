package constants

import "time"

// Request handling
const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultPageSize       = 20
	MaxPageSize           = 100
)

// NotificationListLimit caps the notification feed to the most recent rows.
const NotificationListLimit = 50

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "auth:blacklist:"
	RedisKeyOAuthState     = "auth:oauth-state:"
	RedisKeyWidget         = "widget:"
	RedisKeyAnalytics      = "analytics:snapshot:"
)

// Cache TTLs
const (
	TokenBlacklistTTL    = 24 * time.Hour
	OAuthStateTTL        = 5 * time.Minute
	AnalyticsSnapshotTTL = 5 * time.Minute
)

// Analytics lookback windows in days
var AnalyticsWindows = []int{7, 14, 30, 60, 90}

// Schedule reminder lead time
const ReminderLeadTime = 24 * time.Hour

// Invite code length (nanoid)
const InviteCodeLength = 7
