// ABOUTME: Centralized configuration defaults for fetch-feed
// ABOUTME: Contains the fixed fetch limits, user agent, and display settings

package config

import "time"

// HTTP settings
const (
	DefaultHTTPTimeout = 2 * time.Second
	MaxResponseSize    = 10 * 1024 * 1024 // 10MB
	DefaultUserAgent   = "fetch-feed/1.0 (+https://github.com/jdichev/forest)"
)

// Logging settings
const (
	DefaultLogLevel      = "info"
	DefaultLogMaxSizeMB  = 16
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 7
)

// Display settings
const (
	SeparatorWidth = 60
	DateFormatLong = "Mon, 02 Jan 2006 15:04 MST"
)
