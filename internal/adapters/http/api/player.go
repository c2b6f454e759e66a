package api

import (
	"net/http"

	"github.com/coachos/pitchpilot/internal/domain/analysis"
)

// PlayerHandler handles player analysis requests.
type PlayerHandler struct {
	deps Dependencies
}

// NewPlayerHandler creates a new player handler.
func NewPlayerHandler(deps Dependencies) *PlayerHandler {
	return &PlayerHandler{deps: deps}
}

// playerResponse mirrors the player analysis shape returned to clients.
type playerResponse struct {
	Name            string           `json:"name"`
	PlayerID        int              `json:"player_id,omitempty"`
	Team            string           `json:"team,omitempty"`
	Outcome         string           `json:"outcome"`
	TotalImpact     float64          `json:"total_highlight_score"`
	TotalValueAdded float64          `json:"total_value_added"`
	TotalActions    int              `json:"total_actions"`
	PositiveActions int              `json:"positive_actions"`
	NegativeActions int              `json:"negative_actions"`
	MomentsAnalyzed int              `json:"moments_analyzed"`
	PassAccuracy    string           `json:"pass_accuracy"`
	OraclesActive   map[string]bool  `json:"ml_models_active"`
	Highlights      []momentResponse `json:"highlights"`
	Lowlights       []momentResponse `json:"lowlights"`
}

// HandleGetPlayer handles GET /player?name=...&id=...&match=...&top=N.
func (h *PlayerHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	query, err := playerParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
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

	report, err := h.deps.PlayerAnalysis(r.Context(), matchID, query, topN)
	if err != nil {
		writeError(w, http.StatusBadGateway, "upstream_error", err)
		return
	}
	if report.Summary.Outcome == analysis.OutcomeNotFound {
		writeError(w, http.StatusNotFound, "player_not_found", ErrPlayerNotFound)
		return
	}

	s := report.Summary
	writeJSON(w, http.StatusOK, playerResponse{
		Name:            s.Player,
		PlayerID:        s.PlayerID,
		Team:            s.Team,
		Outcome:         string(s.Outcome),
		TotalImpact:     s.TotalImpact,
		TotalValueAdded: s.TotalBaseValue,
		TotalActions:    s.TotalActions,
		PositiveActions: s.PositiveActions,
		NegativeActions: s.NegativeActions,
		MomentsAnalyzed: s.MomentsKept,
		PassAccuracy:    s.PassAccuracy,
		OraclesActive:   s.Oracles,
		Highlights:      toMomentResponses(h.deps, report.Highlights),
		Lowlights:       toMomentResponses(h.deps, report.Lowlights),
	})
}
