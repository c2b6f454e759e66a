package api

import "net/http"

// GameStateHandler handles game state requests.
type GameStateHandler struct {
	deps Dependencies
}

// NewGameStateHandler creates a new game state handler.
func NewGameStateHandler(deps Dependencies) *GameStateHandler {
	return &GameStateHandler{deps: deps}
}

// gameStateResponse mirrors the final game state shape.
type gameStateResponse struct {
	Home        string  `json:"home"`
	Away        string  `json:"away"`
	HomeGoals   int     `json:"home_score"`
	AwayGoals   int     `json:"away_score"`
	ScoreDiff   int     `json:"score_diff"`
	QualityDiff float64 `json:"xg_diff"`
}

// HandleGetGameState handles GET /gamestate?match=...
func (h *GameStateHandler) HandleGetGameState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	matchID, err := matchParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	snap, err := h.deps.GameState(r.Context(), matchID)
	if err != nil {
		writeError(w, http.StatusBadGateway, "upstream_error", err)
		return
	}
	writeJSON(w, http.StatusOK, gameStateResponse{
		Home:        snap.Home,
		Away:        snap.Away,
		HomeGoals:   snap.HomeGoals,
		AwayGoals:   snap.AwayGoals,
		ScoreDiff:   snap.ScoreDiff,
		QualityDiff: snap.QualityDiff,
	})
}
