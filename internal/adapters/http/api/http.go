// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coachos/pitchpilot/internal/domain/analysis"
	"github.com/coachos/pitchpilot/internal/domain/state"
)

// Dependencies required by HTTP handlers. An interface bundle keeps the
// handler layer loosely coupled to the service implementation.
type Dependencies interface {
	PlayerAnalysis(ctx context.Context, matchID int, query analysis.PlayerQuery, topN int) (analysis.PlayerReport, error)
	MatchHighlights(ctx context.Context, matchID, topN int) ([]analysis.Moment, error)
	GameState(ctx context.Context, matchID int) (state.Snapshot, error)
	AdvancedPlayer(ctx context.Context, matchID int, query analysis.PlayerQuery) (analysis.Advanced, error)
	AdvancedMatch(ctx context.Context, matchID int) (analysis.Advanced, error)
	VideoURL(period, minute, second int) string
	MaxTopN() int
}

// StatsProvider exposes service-level status for the stats endpoint.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	playerHandler     *PlayerHandler
	highlightsHandler *HighlightsHandler
	gameStateHandler  *GameStateHandler
	advancedHandler   *AdvancedHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		playerHandler:     NewPlayerHandler(deps),
		highlightsHandler: NewHighlightsHandler(deps),
		gameStateHandler:  NewGameStateHandler(deps),
		advancedHandler:   NewAdvancedHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/player", MetricsMiddleware(s.playerHandler.HandleGetPlayer, "player"))
	mux.HandleFunc("/highlights", MetricsMiddleware(s.highlightsHandler.HandleGetHighlights, "highlights"))
	mux.HandleFunc("/gamestate", MetricsMiddleware(s.gameStateHandler.HandleGetGameState, "gamestate"))
	mux.HandleFunc("/advanced", MetricsMiddleware(s.advancedHandler.HandleGetAdvanced, "advanced"))
}

// momentResponse mirrors the moment shape returned to clients. Field names
// stay compatible with the engine's original API consumers.
type momentResponse struct {
	Player       string  `json:"player,omitempty"`
	Team         string  `json:"team,omitempty"`
	TimeDisplay  string  `json:"time_display"`
	EventType    string  `json:"event_type"`
	Description  string  `json:"description"`
	Impact       float64 `json:"highlight_score"`
	ValueAdded   float64 `json:"value_added"`
	SpatialDelta float64 `json:"xt_delta"`
	Period       int     `json:"period"`
	Minute       int     `json:"minute"`
	VideoURL     string  `json:"video_url"`
}

func toMomentResponses(deps Dependencies, moments []analysis.Moment) []momentResponse {
	out := make([]momentResponse, 0, len(moments))
	for _, m := range moments {
		out = append(out, momentResponse{
			Player:       m.Player,
			Team:         m.Team,
			TimeDisplay:  m.Clock,
			EventType:    string(m.EventType),
			Description:  m.Label,
			Impact:       m.Impact,
			ValueAdded:   m.BaseValue,
			SpatialDelta: m.SpatialDelta,
			Period:       m.Period,
			Minute:       m.Minute,
			VideoURL:     deps.VideoURL(m.Period, m.Minute, m.Second),
		})
	}
	return out
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
