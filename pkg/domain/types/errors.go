package types

import "github.com/m-mizutani/goerr/v2"

// Error tags used to classify failures at the ingestion boundary. The core never
// produces errors; everything that reaches a consumer carries one of these tags.
var (
	// ErrTagNotFound means the requested GitHub user does not exist
	ErrTagNotFound = goerr.NewTag("not_found")

	// ErrTagUpstream means GitHub answered with an error, including rate limiting
	ErrTagUpstream = goerr.NewTag("upstream")

	// ErrTagTransport means the request never got a usable answer
	ErrTagTransport = goerr.NewTag("transport")

	// ErrTagInvalidArgument means the caller asked for something that does not exist
	ErrTagInvalidArgument = goerr.NewTag("invalid_argument")
)
