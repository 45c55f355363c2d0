package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	ScanTimeout        = 60 * time.Second
)

const (
	HTTPMaxConnsPerHost     = 100
	HTTPReadTimeout         = 10 * time.Second
	HTTPWriteTimeout        = 10 * time.Second
	HTTPMaxIdleConnDuration = 1 * time.Minute
)

const (
	DefaultMatchCount = 10
	// match-v5 rejects count above 100
	MaxMatchCount         = 100
	MatchFetchConcurrency = 5
)

const (
	UpstreamBodySnippetLen = 200
)

const (
	ShutdownTimeout = 5 * time.Second
)
