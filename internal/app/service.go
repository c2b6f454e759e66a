// Package app provides the core business service that implements the
// dependencies required by the HTTP API and the CLI.
package app

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/coachos/pitchpilot/internal/adapters/statsbomb"
	"github.com/coachos/pitchpilot/internal/adapters/video"
	"github.com/coachos/pitchpilot/internal/domain/analysis"
	"github.com/coachos/pitchpilot/internal/domain/event"
	"github.com/coachos/pitchpilot/internal/domain/oracle"
	"github.com/coachos/pitchpilot/internal/domain/state"
	"github.com/coachos/pitchpilot/pkg/logger"
)

// Service wires match loading, the oracle set and the analyzer into the
// operations callers consume.
type Service struct {
	client   *statsbomb.Client
	oracles  *oracle.Set
	analyzer *analysis.Analyzer
	sync     *video.Sync

	defaultMatch int
	homeSide     string
	defaultTopN  int
	maxTopN      int

	mu      sync.Mutex
	started bool

	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithClient sets the match data client.
func WithClient(c *statsbomb.Client) Option {
	return func(s *Service) {
		if c != nil {
			s.client = c
		}
	}
}

// WithOracles injects the loaded oracle set.
func WithOracles(set *oracle.Set) Option {
	return func(s *Service) {
		if set != nil {
			s.oracles = set
		}
	}
}

// WithVideoSync sets the replay video synchronizer.
func WithVideoSync(v *video.Sync) Option {
	return func(s *Service) {
		if v != nil {
			s.sync = v
		}
	}
}

// WithDefaultMatch sets the match analyzed when a request names none.
func WithDefaultMatch(id int) Option {
	return func(s *Service) {
		if id > 0 {
			s.defaultMatch = id
		}
	}
}

// WithHomeSide designates the side whose perspective win-probability deltas
// take.
func WithHomeSide(side string) Option {
	return func(s *Service) {
		if side != "" {
			s.homeSide = side
		}
	}
}

// WithTopN sets the default and maximum ranked list lengths.
func WithTopN(def, max int) Option {
	return func(s *Service) {
		if def > 0 {
			s.defaultTopN = def
		}
		if max > 0 {
			s.maxTopN = max
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		client:       statsbomb.NewClient(),
		oracles:      oracle.Empty(),
		sync:         video.New("", nil),
		defaultMatch: 0,
		homeSide:     "",
		defaultTopN:  analysis.DefaultTopN,
		maxTopN:      50,
		log:          logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.analyzer = analysis.New(
		analysis.WithOracles(s.oracles),
		analysis.WithLogger(s.log.Named("analysis")),
	)
	return s
}

// Start logs the effective configuration. The service holds no background
// goroutines; analyses run synchronously per call.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}
	s.started = true
	s.log.Info(ctx, "highlight service started",
		logger.Int("default_match", s.defaultMatch),
		logger.String("home_side", s.homeSide),
		logger.Any("oracles", s.oracles.Status()))
	return nil
}

// MaxTopN returns the configured cap on ranked list lengths.
func (s *Service) MaxTopN() int { return s.maxTopN }

// PlayerAnalysis loads the match and analyzes the queried player.
func (s *Service) PlayerAnalysis(ctx context.Context, matchID int, query analysis.PlayerQuery, topN int) (analysis.PlayerReport, error) {
	matchID, topN = s.normalize(matchID, topN)
	events, roster, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return analysis.PlayerReport{}, err
	}
	return s.analyzer.AnalyzePlayer(ctx, events, roster, query, s.home(roster), topN), nil
}

// MatchHighlights loads the match and returns its top highlights.
func (s *Service) MatchHighlights(ctx context.Context, matchID, topN int) ([]analysis.Moment, error) {
	matchID, topN = s.normalize(matchID, topN)
	events, roster, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return s.analyzer.AnalyzeMatch(ctx, events, s.home(roster), topN), nil
}

// GameState replays the match and returns the final game state snapshot.
func (s *Service) GameState(ctx context.Context, matchID int) (state.Snapshot, error) {
	matchID, _ = s.normalize(matchID, 0)
	events, roster, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return state.Snapshot{}, err
	}
	sorted := make([]event.Event, len(events))
	copy(sorted, events)
	event.SortChronological(sorted)
	home := s.home(roster)
	return state.Compute(sorted, home, awayOf(roster, home)), nil
}

// AdvancedPlayer computes progression/pressure metrics for one player.
func (s *Service) AdvancedPlayer(ctx context.Context, matchID int, query analysis.PlayerQuery) (analysis.Advanced, error) {
	matchID, _ = s.normalize(matchID, 0)
	events, roster, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return analysis.Advanced{}, err
	}
	return s.analyzer.AdvancedPlayer(ctx, events, roster, query), nil
}

// AdvancedMatch computes progression/pressure metrics match-wide.
func (s *Service) AdvancedMatch(ctx context.Context, matchID int) (analysis.Advanced, error) {
	matchID, _ = s.normalize(matchID, 0)
	events, _, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return analysis.Advanced{}, err
	}
	return s.analyzer.AdvancedMatch(ctx, events), nil
}

// VideoURL returns a replay link seeking to the given match clock.
func (s *Service) VideoURL(period, minute, second int) string {
	return s.sync.URL(period, minute, second)
}

// GetStats reports service-level status for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"default_match": s.defaultMatch,
		"home_side":     s.homeSide,
		"default_top_n": s.defaultTopN,
		"max_top_n":     s.maxTopN,
		"oracles":       s.oracles.Status(),
	}
}

// loadMatch fetches and decodes events and lineups for a match. A failing
// lineups fetch degrades to a nil roster; analysis still works off event
// player names.
func (s *Service) loadMatch(ctx context.Context, matchID int) ([]event.Event, event.Roster, error) {
	events, err := s.client.MatchEvents(ctx, matchID)
	if err != nil {
		return nil, nil, fmt.Errorf("load match %d: %w", matchID, err)
	}
	roster, err := s.client.Lineups(ctx, matchID)
	if err != nil {
		s.log.Warn(ctx, "lineups unavailable; resolving players from events only",
			logger.Int("match_id", matchID), logger.Error(err))
		roster = nil
	}
	return events, roster, nil
}

// home picks the configured home side, falling back to any roster side so a
// misconfigured name still yields a usable perspective.
func (s *Service) home(roster event.Roster) string {
	if s.homeSide != "" {
		if roster == nil {
			return s.homeSide
		}
		if _, ok := roster[s.homeSide]; ok {
			return s.homeSide
		}
	}
	if sides := sortedSides(roster); len(sides) > 0 {
		return sides[0]
	}
	return s.homeSide
}

func awayOf(roster event.Roster, home string) string {
	for _, side := range sortedSides(roster) {
		if side != home {
			return side
		}
	}
	return ""
}

func sortedSides(roster event.Roster) []string {
	sides := make([]string, 0, len(roster))
	for side := range roster {
		sides = append(sides, side)
	}
	sort.Strings(sides)
	return sides
}

func (s *Service) normalize(matchID, topN int) (int, int) {
	if matchID <= 0 {
		matchID = s.defaultMatch
	}
	if topN <= 0 {
		topN = s.defaultTopN
	}
	if topN > s.maxTopN {
		topN = s.maxTopN
	}
	return matchID, topN
}
