package api

import "net/http"

// HighlightsHandler handles match-wide highlight requests.
type HighlightsHandler struct {
	deps Dependencies
}

// NewHighlightsHandler creates a new highlights handler.
func NewHighlightsHandler(deps Dependencies) *HighlightsHandler {
	return &HighlightsHandler{deps: deps}
}

// HandleGetHighlights handles GET /highlights?match=...&top=N.
func (h *HighlightsHandler) HandleGetHighlights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	matchID, err := matchParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	topN, err := topNParam(r, h.deps.MaxTopN())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	moments, err := h.deps.MatchHighlights(r.Context(), matchID, topN)
	if err != nil {
		writeError(w, http.StatusBadGateway, "upstream_error", err)
		return
	}
	writeJSON(w, http.StatusOK, toMomentResponses(h.deps, moments))
}
