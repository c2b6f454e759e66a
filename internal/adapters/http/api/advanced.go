package api

import (
	"errors"
	"net/http"

	"github.com/coachos/pitchpilot/internal/domain/analysis"
)

// AdvancedHandler handles advanced metrics requests.
type AdvancedHandler struct {
	deps Dependencies
}

// NewAdvancedHandler creates a new advanced metrics handler.
func NewAdvancedHandler(deps Dependencies) *AdvancedHandler {
	return &AdvancedHandler{deps: deps}
}

// advancedResponse mirrors the advanced metrics shape.
type advancedResponse struct {
	ProgressivePasses      int     `json:"progressive_passes"`
	ProgressiveCarries     int     `json:"progressive_carries"`
	ValueProgressed        float64 `json:"value_progressed"`
	ActionsUnderPressure   int     `json:"actions_under_pressure"`
	PassesUnderPressure    int     `json:"passes_under_pressure"`
	CompletedUnderPressure int     `json:"completed_under_pressure"`
	PressuredPassAccuracy  string  `json:"pressured_pass_accuracy"`
	FinalThirdEntries      int     `json:"final_third_entries"`
	BoxEntries             int     `json:"box_entries"`
}

// HandleGetAdvanced handles GET /advanced?match=...&name=...&id=...
// Without a player query it computes match-wide metrics.
func (h *AdvancedHandler) HandleGetAdvanced(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	matchID, err := matchParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	var adv analysis.Advanced
	query, qerr := playerParam(r)
	switch {
	case qerr == nil:
		adv, err = h.deps.AdvancedPlayer(r.Context(), matchID, query)
	case errors.Is(qerr, ErrMissingPlayer):
		// No player named: compute match-wide metrics.
		adv, err = h.deps.AdvancedMatch(r.Context(), matchID)
	default:
		writeError(w, http.StatusBadRequest, "bad_request", qerr)
		return
	}
	if err != nil {
		writeError(w, http.StatusBadGateway, "upstream_error", err)
		return
	}
	writeJSON(w, http.StatusOK, advancedResponse{
		ProgressivePasses:      adv.ProgressivePasses,
		ProgressiveCarries:     adv.ProgressiveCarries,
		ValueProgressed:        adv.ValueProgressed,
		ActionsUnderPressure:   adv.ActionsUnderPressure,
		PassesUnderPressure:    adv.PassesUnderPressure,
		CompletedUnderPressure: adv.CompletedUnderPressure,
		PressuredPassAccuracy:  adv.PressuredPassAccuracy,
		FinalThirdEntries:      adv.FinalThirdEntries,
		BoxEntries:             adv.BoxEntries,
	})
}
