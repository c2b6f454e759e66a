package api

import "errors"

var (
	// ErrPlayerNotFound indicates the requested player appears in neither
	// team's lineup for the match.
	ErrPlayerNotFound = errors.New("player not found in match lineups")

	// ErrMissingPlayer indicates the request carried neither an id nor a
	// name query parameter.
	ErrMissingPlayer = errors.New("player id or name required")

	// ErrInvalidPlayer indicates the id query parameter is not a positive
	// integer.
	ErrInvalidPlayer = errors.New("invalid player id")

	// ErrInvalidMatch indicates the match query parameter is not a
	// positive integer.
	ErrInvalidMatch = errors.New("invalid match id")

	// ErrInvalidTopN indicates the top query parameter is out of range.
	ErrInvalidTopN = errors.New("invalid top parameter")
)
