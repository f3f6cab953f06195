package app

import "time"

// Config holds runtime configuration for the resolver.
type Config struct {
	// Site
	SiteURL   string
	UserAgent string

	// Search
	SearchURL  string
	SearchFile string
	MaxResults int

	// Threshold is the minimum similarity for an accepted search match,
	// in [0, 1] inclusive. Zero accepts the backend's top result outright.
	Threshold float64

	// Timeout bounds each outbound request.
	Timeout time.Duration

	// Behavior
	Verbose bool
}
