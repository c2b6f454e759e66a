// Package event contains the typed match event model passed between layers.
//
// Events are decoded once at the provider boundary into tagged variants:
// a type tag plus optional typed payloads. The scoring engine switches on
// the tag instead of probing nested maps, so a malformed payload can never
// surface as a missing-key failure mid-pass. Events are immutable once
// decoded.
package event

import (
	"fmt"
	"sort"
)

// Type tags the event variant. Values mirror the provider's type names.
type Type string

// Known event types. Anything else scores as regular play.
const (
	TypePass          Type = "Pass"
	TypeShot          Type = "Shot"
	TypeDribble       Type = "Dribble"
	TypeCarry         Type = "Carry"
	TypeInterception  Type = "Interception"
	TypeBallRecovery  Type = "Ball Recovery"
	TypeDispossessed  Type = "Dispossessed"
	TypeMiscontrol    Type = "Miscontrol"
	TypeFoulCommitted Type = "Foul Committed"
	TypePressure      Type = "Pressure"
	TypeSubstitution  Type = "Substitution"
)

// Shot outcome names as supplied by the provider.
const (
	OutcomeGoal    = "Goal"
	OutcomeSaved   = "Saved"
	OutcomeBlocked = "Blocked"
	OutcomePost    = "Post"
	OutcomeOffT    = "Off T"
	OutcomeWayward = "Wayward"
)

// Card names on fouls.
const (
	CardYellow       = "Yellow Card"
	CardSecondYellow = "Second Yellow"
	CardRed          = "Red Card"
)

// Location is a pitch coordinate: x in [0,120] toward the attacking goal,
// y in [0,80] across the pitch.
type Location struct {
	X float64
	Y float64
}

// Player identifies the acting player of an event.
type Player struct {
	ID   int
	Name string
}

// Event is one timestamped match event. Only the payload matching Type is
// non-nil; all other payload pointers stay nil.
type Event struct {
	ID     string
	Type   Type
	Period int
	Minute int
	Second int

	Team          string
	Player        *Player
	Location      *Location
	UnderPressure bool

	Pass    *PassDetail
	Shot    *ShotDetail
	Dribble *DribbleDetail
	Carry   *CarryDetail
	Foul    *FoulDetail
}

// PassDetail carries the pass-specific payload.
// The provider only sets an outcome on failed passes, so Failed doubles as
// the completion flag.
type PassDetail struct {
	EndLocation *Location
	Failed      bool
	GoalAssist  bool
	ShotAssist  bool
	TypeName    string
}

// Completed reports whether the pass reached a teammate.
func (p *PassDetail) Completed() bool { return !p.Failed }

// ShotDetail carries the shot-specific payload. Quality is the provider's
// goal probability estimate; HasQuality distinguishes a genuine 0 from a
// missing value.
type ShotDetail struct {
	Outcome    string
	Quality    float64
	HasQuality bool
}

// DribbleDetail carries the dribble outcome ("Complete" or "Incomplete").
type DribbleDetail struct {
	Outcome string
}

// CarryDetail carries the carry end location.
type CarryDetail struct {
	EndLocation *Location
}

// FoulDetail carries the card shown for a committed foul, if any.
type FoulDetail struct {
	Card string
}

// Clock renders the event's match clock as "m:ss".
func (e *Event) Clock() string {
	return fmt.Sprintf("%d:%02d", e.Minute, e.Second)
}

// SortChronological stable-sorts events by (period, minute, second).
// Ties keep their original order, matching the provider's intra-second
// sequencing.
func SortChronological(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Period != b.Period {
			return a.Period < b.Period
		}
		if a.Minute != b.Minute {
			return a.Minute < b.Minute
		}
		return a.Second < b.Second
	})
}
