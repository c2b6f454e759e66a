// Package analysis replays a match event list and produces ranked
// highlight/lowlight moments plus aggregate statistics.
//
// Each analysis call owns a private game-state tracker, so concurrent calls
// over the same or different matches need no coordination.
package analysis

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/coachos/pitchpilot/internal/domain/event"
	"github.com/coachos/pitchpilot/internal/domain/oracle"
	"github.com/coachos/pitchpilot/internal/domain/scoring"
	"github.com/coachos/pitchpilot/internal/domain/state"
	"github.com/coachos/pitchpilot/pkg/logger"
	"github.com/coachos/pitchpilot/pkg/metrics"
)

// Reporting thresholds. Impacts in [LowlightThreshold, HighlightThreshold]
// still count toward totals but never surface as moments.
const (
	HighlightThreshold = 0.1
	LowlightThreshold  = -0.1
)

// DefaultTopN bounds the ranked lists when the caller passes no limit.
const DefaultTopN = 5

// Moment is one reportable scored event. Immutable once produced.
type Moment struct {
	Clock        string
	Period       int
	Minute       int
	Second       int
	EventType    event.Type
	Label        string
	Impact       float64
	BaseValue    float64
	SpatialDelta float64
	Player       string
	Team         string
	Location     *event.Location
}

// Outcome tags the result of a player analysis.
type Outcome string

// Player analysis outcomes. DidNotPlay is a player present in the roster
// with zero events; NotFound means the query resolved to nobody.
const (
	OutcomeAnalyzed   Outcome = "analyzed"
	OutcomeDidNotPlay Outcome = "did_not_play"
	OutcomeNotFound   Outcome = "not_found"
)

// Summary aggregates one subject's scored events. Fully recomputed on every
// call; nothing is cached here.
type Summary struct {
	Player          string
	PlayerID        int
	Team            string
	Outcome         Outcome
	TotalImpact     float64
	TotalBaseValue  float64
	TotalActions    int
	PositiveActions int
	NegativeActions int
	MomentsKept     int
	PassAttempts    int
	PassesCompleted int
	PassAccuracy    string
	Oracles         map[string]bool
}

// PlayerQuery identifies the analysis subject. A numeric ID is preferred;
// the name is used case-insensitively, exact match before substring.
type PlayerQuery struct {
	ID   int
	Name string
}

// PlayerReport bundles the outputs of one player analysis.
type PlayerReport struct {
	Summary    Summary
	Highlights []Moment
	Lowlights  []Moment
}

// Analyzer runs scoring passes over whole matches.
type Analyzer struct {
	scorer  *scoring.Scorer
	oracles *oracle.Set
	log     logger.Logger
}

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithOracles injects the oracle set used for scoring and status reporting.
func WithOracles(set *oracle.Set) Option {
	return func(a *Analyzer) {
		if set != nil {
			a.oracles = set
		}
	}
}

// WithLogger sets the analyzer's logger.
func WithLogger(log logger.Logger) Option {
	return func(a *Analyzer) {
		if log != nil {
			a.log = log
		}
	}
}

// New constructs an Analyzer. Without options it scores heuristically and
// logs nowhere.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		oracles: oracle.Empty(),
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.scorer = scoring.New(scoring.WithOracles(a.oracles))
	return a
}

// AnalyzePlayer replays the match and scores only the queried player's
// events. Zero matching events yield a tagged did-not-play or not-found
// summary, never an error.
func (a *Analyzer) AnalyzePlayer(ctx context.Context, events []event.Event, roster event.Roster, query PlayerQuery, homeSide string, topN int) PlayerReport {
	started := time.Now()
	if topN <= 0 {
		topN = DefaultTopN
	}
	sorted := sortedCopy(events)

	matcher, resolved := a.resolveSubject(sorted, roster, query)
	summary := Summary{
		Player:       query.Name,
		PlayerID:     query.ID,
		PassAccuracy: "N/A",
		Oracles:      a.oracles.Status(),
	}
	if resolved != nil {
		summary.Player = resolved.Name
		summary.PlayerID = resolved.ID
		if side, ok := roster.Side(resolved.ID); ok {
			summary.Team = side
		}
	}
	if matcher == nil {
		if resolved != nil {
			summary.Outcome = OutcomeDidNotPlay
		} else {
			summary.Outcome = OutcomeNotFound
		}
		a.log.Info(ctx, "player analysis without events",
			logger.String("player", summary.Player), logger.String("outcome", string(summary.Outcome)))
		return PlayerReport{Summary: summary}
	}
	summary.Outcome = OutcomeAnalyzed

	report := a.replay(ctx, sorted, homeSide, topN, matcher, &summary)
	report.Summary = summary

	metrics.RecordAnalysis("player")
	metrics.ObserveAnalysisDuration(time.Since(started).Seconds())
	a.log.Info(ctx, "player analysis complete",
		logger.String("player", summary.Player),
		logger.Int("actions", summary.TotalActions),
		logger.Int("highlights", len(report.Highlights)),
		logger.Int("lowlights", len(report.Lowlights)))
	return report
}

// AnalyzeMatch replays the match and scores every event with an acting
// player, returning the top match-wide highlights (no lowlights).
func (a *Analyzer) AnalyzeMatch(ctx context.Context, events []event.Event, homeSide string, topN int) []Moment {
	started := time.Now()
	if topN <= 0 {
		topN = DefaultTopN
	}
	sorted := sortedCopy(events)

	summary := Summary{}
	report := a.replay(ctx, sorted, homeSide, topN, func(ev *event.Event) bool {
		return ev.Player != nil
	}, &summary)

	metrics.RecordAnalysis("match")
	metrics.ObserveAnalysisDuration(time.Since(started).Seconds())
	a.log.Info(ctx, "match analysis complete",
		logger.Int("events", len(sorted)),
		logger.Int("highlights", len(report.Highlights)))
	return report.Highlights
}

// replay is the single forward pass shared by player and match analyses.
// State updates apply to every event; scoring applies to subject events
// only, against the state strictly before them.
func (a *Analyzer) replay(ctx context.Context, sorted []event.Event, homeSide string, topN int, subject func(*event.Event) bool, summary *Summary) PlayerReport {
	tracker := state.NewTracker(homeSide, awaySide(sorted, homeSide))
	metrics.UpdateEventsPerPass(len(sorted))

	var highlights, lowlights []Moment
	scored := 0
	for i := range sorted {
		ev := &sorted[i]
		snap := tracker.Snapshot()
		tracker.Update(ev)

		if !subject(ev) {
			continue
		}
		result := a.scorer.Score(ctx, ev, snap)
		scored++

		summary.TotalActions++
		summary.TotalImpact += result.Impact
		summary.TotalBaseValue += result.BaseValue
		if result.Impact > 0 {
			summary.PositiveActions++
		} else if result.Impact < 0 {
			summary.NegativeActions++
		}
		if ev.Type == event.TypePass && ev.Pass != nil {
			summary.PassAttempts++
			if ev.Pass.Completed() {
				summary.PassesCompleted++
			}
		}

		moment := Moment{
			Clock:        ev.Clock(),
			Period:       ev.Period,
			Minute:       ev.Minute,
			Second:       ev.Second,
			EventType:    ev.Type,
			Label:        result.Label,
			Impact:       result.Impact,
			BaseValue:    result.BaseValue,
			SpatialDelta: result.SpatialDelta,
			Team:         ev.Team,
			Location:     ev.Location,
		}
		if ev.Player != nil {
			moment.Player = ev.Player.Name
		}

		switch {
		case result.Impact > HighlightThreshold:
			highlights = append(highlights, moment)
			metrics.RecordMomentKept("highlight")
		case result.Impact < LowlightThreshold:
			lowlights = append(lowlights, moment)
			metrics.RecordMomentKept("lowlight")
		}
	}
	metrics.RecordEventsScored(scored)

	summary.MomentsKept = len(highlights) + len(lowlights)
	if summary.PassAttempts > 0 {
		pct := summary.PassesCompleted * 100 / summary.PassAttempts
		summary.PassAccuracy = strconv.Itoa(pct) + "%"
	}

	sort.SliceStable(highlights, func(i, j int) bool { return highlights[i].Impact > highlights[j].Impact })
	sort.SliceStable(lowlights, func(i, j int) bool { return lowlights[i].Impact < lowlights[j].Impact })
	return PlayerReport{
		Highlights: truncate(highlights, topN),
		Lowlights:  truncate(lowlights, topN),
	}
}

// resolveSubject derives an event matcher for the query. Numeric id first;
// then exact, then substring name matching against the events themselves.
// A nil matcher means the player has no events in this match.
func (a *Analyzer) resolveSubject(sorted []event.Event, roster event.Roster, query PlayerQuery) (func(*event.Event) bool, *event.RosterPlayer) {
	var resolved *event.RosterPlayer
	if p, ok := roster.Find(query.ID, query.Name); ok {
		resolved = &p
	}

	if id := subjectID(query, resolved); id != 0 {
		byID := func(ev *event.Event) bool { return ev.Player != nil && ev.Player.ID == id }
		if anyMatch(sorted, byID) {
			return byID, resolved
		}
	}

	name := strings.ToLower(strings.TrimSpace(query.Name))
	if name == "" && resolved != nil {
		name = strings.ToLower(resolved.Name)
	}
	if name != "" {
		exact := func(ev *event.Event) bool {
			return ev.Player != nil && strings.ToLower(ev.Player.Name) == name
		}
		if anyMatch(sorted, exact) {
			return exact, resolved
		}
		sub := func(ev *event.Event) bool {
			return ev.Player != nil && strings.Contains(strings.ToLower(ev.Player.Name), name)
		}
		if anyMatch(sorted, sub) {
			return sub, resolved
		}
	}
	return nil, resolved
}

func subjectID(query PlayerQuery, resolved *event.RosterPlayer) int {
	if query.ID != 0 {
		return query.ID
	}
	if resolved != nil {
		return resolved.ID
	}
	return 0
}

func anyMatch(events []event.Event, match func(*event.Event) bool) bool {
	for i := range events {
		if match(&events[i]) {
			return true
		}
	}
	return false
}

// awaySide guesses the opposing side from the event stream.
func awaySide(events []event.Event, home string) string {
	for i := range events {
		if events[i].Team != "" && events[i].Team != home {
			return events[i].Team
		}
	}
	return ""
}

func sortedCopy(events []event.Event) []event.Event {
	out := make([]event.Event, len(events))
	copy(out, events)
	event.SortChronological(out)
	return out
}

func truncate(moments []Moment, n int) []Moment {
	if len(moments) > n {
		return moments[:n]
	}
	return moments
}
