package analysis

import (
	"context"
	"strconv"

	"github.com/coachos/pitchpilot/internal/domain/event"
	"github.com/coachos/pitchpilot/internal/domain/pitch"
	"github.com/coachos/pitchpilot/pkg/metrics"
)

// Pitch landmarks for the progression metrics, in provider coordinates.
const (
	finalThirdX = 80.0
	boxEdgeX    = 102.0
	boxLowY     = 18.0
	boxHighY    = 62.0
)

// Advanced holds the secondary progression/pressure/final-third metrics.
// They are computed by an independent replay and never feed the scorer.
type Advanced struct {
	ProgressivePasses  int
	ProgressiveCarries int
	ValueProgressed    float64

	ActionsUnderPressure   int
	PassesUnderPressure    int
	CompletedUnderPressure int
	PressuredPassAccuracy  string

	FinalThirdEntries int
	BoxEntries        int
}

// AdvancedPlayer computes advanced metrics for one player's events. The
// same resolution rules as AnalyzePlayer apply; an unresolvable query
// returns zeroed metrics.
func (a *Analyzer) AdvancedPlayer(ctx context.Context, events []event.Event, roster event.Roster, query PlayerQuery) Advanced {
	sorted := sortedCopy(events)
	matcher, _ := a.resolveSubject(sorted, roster, query)
	if matcher == nil {
		return Advanced{PressuredPassAccuracy: "N/A"}
	}
	metrics.RecordAnalysis("advanced")
	return computeAdvanced(sorted, matcher)
}

// AdvancedMatch computes advanced metrics over every event with an acting
// player.
func (a *Analyzer) AdvancedMatch(ctx context.Context, events []event.Event) Advanced {
	sorted := sortedCopy(events)
	metrics.RecordAnalysis("advanced")
	return computeAdvanced(sorted, func(ev *event.Event) bool { return ev.Player != nil })
}

func computeAdvanced(sorted []event.Event, subject func(*event.Event) bool) Advanced {
	var adv Advanced
	for i := range sorted {
		ev := &sorted[i]
		if !subject(ev) {
			continue
		}

		start, end := movement(ev)
		delta := pitch.Delta(start, end)

		switch ev.Type {
		case event.TypePass:
			if ev.Pass != nil && ev.Pass.Completed() && delta > progressiveThreshold {
				adv.ProgressivePasses++
			}
		case event.TypeCarry:
			if delta > progressiveThreshold {
				adv.ProgressiveCarries++
			}
		}
		if delta > 0 {
			adv.ValueProgressed += delta
		}

		if ev.UnderPressure {
			adv.ActionsUnderPressure++
			if ev.Type == event.TypePass && ev.Pass != nil {
				adv.PassesUnderPressure++
				if ev.Pass.Completed() {
					adv.CompletedUnderPressure++
				}
			}
		}

		if entersZone(start, end, finalThirdX) {
			adv.FinalThirdEntries++
		}
		if entersBox(start, end) {
			adv.BoxEntries++
		}
	}

	adv.PressuredPassAccuracy = "N/A"
	if adv.PassesUnderPressure > 0 {
		pct := adv.CompletedUnderPressure * 100 / adv.PassesUnderPressure
		adv.PressuredPassAccuracy = strconv.Itoa(pct) + "%"
	}
	return adv
}

// progressiveThreshold mirrors the scorer's progressive-pass band so the
// two reports agree on what counts as progression.
const progressiveThreshold = 0.05

// movement returns the start and end locations of a ball-moving event, or
// nils for everything else.
func movement(ev *event.Event) (start, end *event.Location) {
	switch {
	case ev.Type == event.TypePass && ev.Pass != nil:
		return ev.Location, ev.Pass.EndLocation
	case ev.Type == event.TypeCarry && ev.Carry != nil:
		return ev.Location, ev.Carry.EndLocation
	default:
		return nil, nil
	}
}

func entersZone(start, end *event.Location, zoneX float64) bool {
	return start != nil && end != nil && start.X < zoneX && end.X >= zoneX
}

func entersBox(start, end *event.Location) bool {
	if start == nil || end == nil {
		return false
	}
	inBox := end.X >= boxEdgeX && end.Y >= boxLowY && end.Y <= boxHighY
	wasIn := start.X >= boxEdgeX && start.Y >= boxLowY && start.Y <= boxHighY
	return inBox && !wasIn
}
