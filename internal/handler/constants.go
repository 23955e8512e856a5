package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

const (
	// NextPageTokenHeader carries the token of the next page of a listing.
	NextPageTokenHeader = "X-Next-Page-Token"

	// UnknownTimeAgo is shown when an article has no creation time.
	UnknownTimeAgo = "Unknown time"
)
