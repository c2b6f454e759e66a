// Package state tracks the running game state of a single match replay.
//
// A Tracker is created once per replay, fed every event exactly once in
// chronological order, and discarded when the pass ends. It is not safe for
// concurrent use; concurrent analyses each build their own Tracker.
package state

import "github.com/coachos/pitchpilot/internal/domain/event"

// sideState holds one side's monotone accumulators.
type sideState struct {
	goals   int
	quality float64
}

// Tracker accumulates goals and cumulative shot quality per side.
type Tracker struct {
	home     string
	away     string
	homeSide sideState
	awaySide sideState
}

// NewTracker creates a zero-initialized tracker for the two competing
// sides. The home designation fixes the perspective of snapshots; shots by
// any side other than home accumulate against the away side.
func NewTracker(home, away string) *Tracker {
	return &Tracker{home: home, away: away}
}

// Update applies one event to the running state. Only shots move state: the
// provider quality estimate accumulates for the shooting side, and a "Goal"
// outcome increments its goal count. Everything else is a no-op.
func (t *Tracker) Update(ev *event.Event) {
	if ev.Type != event.TypeShot || ev.Shot == nil {
		return
	}
	side := &t.awaySide
	if ev.Team == t.home {
		side = &t.homeSide
	}
	side.quality += ev.Shot.Quality
	if ev.Shot.Outcome == event.OutcomeGoal {
		side.goals++
	}
}

// Snapshot is a read-only, home-relative view of the running state.
type Snapshot struct {
	Home        string
	Away        string
	HomeGoals   int
	AwayGoals   int
	ScoreDiff   int
	QualityDiff float64
}

// Snapshot returns the current home-relative differentials. The state
// reflects exactly the events applied so far.
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		Home:        t.home,
		Away:        t.away,
		HomeGoals:   t.homeSide.goals,
		AwayGoals:   t.awaySide.goals,
		ScoreDiff:   t.homeSide.goals - t.awaySide.goals,
		QualityDiff: t.homeSide.quality - t.awaySide.quality,
	}
}

// Compute replays an already-sorted event list and returns the final
// snapshot. Streaming callers use NewTracker/Update directly.
func Compute(events []event.Event, home, away string) Snapshot {
	t := NewTracker(home, away)
	for i := range events {
		t.Update(&events[i])
	}
	return t.Snapshot()
}
