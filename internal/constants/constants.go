// Package constants provides shared constants used across the application
// to avoid circular dependencies between packages.
package constants

import "time"

// AppName is used for config directories, env prefixes and log prefixes
const AppName = "tassist"

// Timeout constants used across the application
const (
	// DefaultGithubTimeout is the timeout for GitHub account lookups
	DefaultGithubTimeout = 10 * time.Second
	// DefaultLaunchTimeout bounds how long opening a browser may block
	DefaultLaunchTimeout = 5 * time.Second
)

// Application defaults
const (
	DefaultDataFile     = "data/tassist.json"
	DefaultStorage      = "json"
	DefaultGithubAPIURL = "https://api.github.com"
	DefaultHistoryLimit = 500
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "text"
)

// StorageBackends are the accepted values of the storage setting
var StorageBackends = []string{"json", "sqlite"}
