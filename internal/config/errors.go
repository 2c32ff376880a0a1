package config

import "errors"

// Fatal resolution errors. Anything else that goes wrong during
// resolution is logged and recovered from.
var (
	// ErrHostnameUnresolved indicates the machine's hostname could not
	// be determined. The agent must not start without a host identity;
	// setting NODE_HOSTNAME is the usual fix.
	ErrHostnameUnresolved = errors.New("unable to determine the hostname, consider setting NODE_HOSTNAME")

	// ErrInvalidScrapeInterval indicates the user-supplied scrapeInterval
	// is not a valid integer.
	ErrInvalidScrapeInterval = errors.New("invalid scrapeInterval in user configuration")
)
