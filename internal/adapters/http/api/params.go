package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/coachos/pitchpilot/internal/domain/analysis"
)

// matchParam parses the optional ?match= query parameter; 0 means "use the
// configured default match".
func matchParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("match")
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMatch, raw)
	}
	return id, nil
}

// topNParam parses the optional ?top= query parameter against the
// configured cap; 0 means "use the default".
func topNParam(r *http.Request, maxTopN int) (int, error) {
	raw := r.URL.Query().Get("top")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTopN, raw)
	}
	if n > maxTopN {
		return 0, fmt.Errorf("%w: top exceeds maximum %d", ErrInvalidTopN, maxTopN)
	}
	return n, nil
}

// playerParam parses the ?id= and ?name= query parameters into a player
// query. At least one must be present.
func playerParam(r *http.Request) (analysis.PlayerQuery, error) {
	q := analysis.PlayerQuery{Name: r.URL.Query().Get("name")}
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			return q, fmt.Errorf("%w: %q", ErrInvalidPlayer, raw)
		}
		q.ID = id
	}
	if q.ID == 0 && q.Name == "" {
		return q, ErrMissingPlayer
	}
	return q, nil
}
