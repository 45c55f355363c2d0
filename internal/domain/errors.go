package domain

import "errors"

var (
	// ErrInvalidIdentifier is returned for bad or missing player input, always before any network call.
	ErrInvalidIdentifier = errors.New("invalid riot id")
	// ErrMissingConfiguration is returned when a required setting such as the API key is absent.
	ErrMissingConfiguration = errors.New("missing configuration")
	// ErrNoData is returned when no fetched match contained the resolved player.
	ErrNoData = errors.New("no match data for player")
)
