// Package scoring turns one event plus the running game state into a signed
// impact score.
//
// The scorer is a pure rule engine: given the same event and state snapshot
// it always produces the same result, touches nothing, and never fails. An
// absent or failing oracle routes the event to a heuristic branch instead.
package scoring

import (
	"context"

	"github.com/coachos/pitchpilot/internal/domain/event"
	"github.com/coachos/pitchpilot/internal/domain/oracle"
	"github.com/coachos/pitchpilot/internal/domain/pitch"
	"github.com/coachos/pitchpilot/internal/domain/state"
)

// Domain-tuned scoring constants. These bands were fitted against real
// match footage; behavior preservation depends on the exact literals.
const (
	goalAssistValue = 1.0
	shotAssistValue = 0.6

	exceptionalPassBand = 0.7
	impressivePassBand  = 0.5
	easyPassBand        = 0.8
	routinePassBand     = 0.6

	progressiveDelta = 0.05
	regressiveDelta  = -0.05

	progressivePassValue = 0.3
	failedPassPenalty    = -0.1
	lostTerritoryPenalty = -0.3

	bigChanceBand   = 0.4
	goodChanceBand  = 0.25
	defaultShotXG   = 0.1
	bigChanceRebate = 0.1
	chanceRebate    = 0.15

	savedBigChanceScale = 0.7
	postBigChanceScale  = 0.8
	blockBigChanceScale = 0.6
	savedChanceScale    = 0.5

	lowShotSavedCredit = 0.5
	lowShotPostCredit  = 0.4
	lowShotBlockCredit = 0.2

	dribbleValue        = 0.3
	failedDribbleValue  = -0.25
	interceptionValue   = 0.25
	ballRecoveryValue   = 0.15
	dispossessedPenalty = -0.2
	miscontrolPenalty   = -0.15

	redCardPenalty      = -1.0
	secondYellowPenalty = -0.8
	yellowCardPenalty   = -0.3
	plainFoulPenalty    = -0.1
)

// Scored is the immutable result of scoring one event.
type Scored struct {
	Impact       float64
	Label        string
	SpatialDelta float64
	BaseValue    float64
	WinProbDelta float64
}

// Scorer evaluates events against the injected oracle set. The zero
// configuration scores everything heuristically.
type Scorer struct {
	oracles *oracle.Set
}

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithOracles injects the probability oracles consulted during scoring.
func WithOracles(set *oracle.Set) Option {
	return func(s *Scorer) {
		if set != nil {
			s.oracles = set
		}
	}
}

// New constructs a Scorer. Without options all oracles report absent and
// every event takes its heuristic branch.
func New(opts ...Option) *Scorer {
	s := &Scorer{oracles: oracle.Empty()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score computes the signed impact of one event given the state strictly
// before it. It never fails: unknown types score as regular play and every
// missing input degrades to a neutral contribution.
func (s *Scorer) Score(ctx context.Context, ev *event.Event, snap state.Snapshot) Scored {
	spatialDelta := 0.0
	switch {
	case ev.Type == event.TypePass && ev.Pass != nil:
		spatialDelta = pitch.Delta(ev.Location, ev.Pass.EndLocation)
	case ev.Type == event.TypeCarry && ev.Carry != nil:
		spatialDelta = pitch.Delta(ev.Location, ev.Carry.EndLocation)
	}

	base := 0.0
	label := "Regular Play"
	winProbDelta := 0.0

	switch ev.Type {
	case event.TypePass:
		base, label = s.scorePass(ctx, ev, spatialDelta)
	case event.TypeShot:
		base, label, winProbDelta = s.scoreShot(ctx, ev, snap)
	case event.TypeDribble:
		base, label = scoreDribble(ev)
	case event.TypeInterception:
		base, label = interceptionValue, "Defensive Interception"
	case event.TypeBallRecovery:
		base, label = ballRecoveryValue, "Ball Recovery"
	case event.TypeDispossessed:
		base, label = dispossessedPenalty, "Dispossessed"
	case event.TypeMiscontrol:
		base, label = miscontrolPenalty, "Miscontrol"
	case event.TypeFoulCommitted:
		base, label = scoreFoul(ev)
	}

	clutch := 1.0 + abs(winProbDelta)
	return Scored{
		Impact:       (base + spatialDelta) * clutch,
		Label:        label,
		SpatialDelta: spatialDelta,
		BaseValue:    base,
		WinProbDelta: winProbDelta,
	}
}

// scorePass prices a pass by the difficulty it overcame (oracle path) or by
// territory gained (heuristic path).
func (s *Scorer) scorePass(ctx context.Context, ev *event.Event, spatialDelta float64) (float64, string) {
	pass := ev.Pass
	if pass == nil {
		return 0.0, "Regular Play"
	}
	if pass.GoalAssist {
		return goalAssistValue, "Goal Assist"
	}
	if pass.ShotAssist {
		return shotAssistValue, "Key Pass"
	}

	var pSuccess float64
	hasOracle := false
	if features := oracle.ExtractPassFeatures(ev); features != nil {
		pSuccess, hasOracle = s.oracles.Pass.Predict(ctx, features.Vector())
	}

	if hasOracle {
		if pass.Completed() {
			value := 1.0 - pSuccess
			switch {
			case value > exceptionalPassBand:
				return value, "Exceptional Pass"
			case value > impressivePassBand:
				return value, "Impressive Pass"
			case spatialDelta > progressiveDelta:
				return value, "Line-Breaking Pass"
			default:
				return value, "Completed Pass"
			}
		}
		// The easier the pass should have been, the harsher the penalty.
		switch {
		case pSuccess > easyPassBand:
			return -(pSuccess - 0.5), "Easy Pass Missed"
		case pSuccess > routinePassBand:
			return -(pSuccess - 0.4), "Pass Failed"
		default:
			return failedPassPenalty, "Ambitious Pass Failed"
		}
	}

	if pass.Completed() {
		if spatialDelta > progressiveDelta {
			return progressivePassValue, "Progressive Pass"
		}
		return 0.0, "Regular Pass"
	}
	if spatialDelta < regressiveDelta {
		return lostTerritoryPenalty, "Pass Failed (Lost Territory)"
	}
	return failedPassPenalty, "Pass Failed"
}

// scoreShot prices a shot against its quality estimate. Goals additionally
// earn a win-probability swing that feeds the clutch factor.
func (s *Scorer) scoreShot(ctx context.Context, ev *event.Event, snap state.Snapshot) (float64, string, float64) {
	shot := ev.Shot
	if shot == nil {
		return 0.0, "Regular Play", 0.0
	}

	quality := defaultShotXG
	if shot.HasQuality {
		quality = shot.Quality
	}
	if features := oracle.ExtractShotFeatures(ev); features != nil {
		if predicted, ok := s.oracles.Shot.Predict(ctx, features.Vector()); ok {
			quality = predicted
		}
	}

	if shot.Outcome == event.OutcomeGoal {
		return 1.0 - quality, "GOAL SCORED", s.winProbDelta(ctx, ev, snap, quality)
	}

	switch {
	case quality > bigChanceBand:
		penalty := -(quality - bigChanceRebate)
		switch shot.Outcome {
		case event.OutcomeSaved:
			return penalty * savedBigChanceScale, "Big Chance Missed (Saved)", 0.0
		case event.OutcomePost:
			return penalty * postBigChanceScale, "Big Chance Missed (Post)", 0.0
		case event.OutcomeBlocked:
			return penalty * blockBigChanceScale, "Big Chance Missed (Blocked)", 0.0
		default:
			return penalty, "Big Chance Missed (Off Target)", 0.0
		}
	case quality > goodChanceBand:
		penalty := -(quality - chanceRebate)
		if shot.Outcome == event.OutcomeSaved {
			return penalty * savedChanceScale, "Chance Missed (Saved)", 0.0
		}
		return penalty, "Chance Missed", 0.0
	default:
		switch shot.Outcome {
		case event.OutcomeSaved:
			return quality * lowShotSavedCredit, "Shot on Target", 0.0
		case event.OutcomePost:
			return quality * lowShotPostCredit, "Shot Hit the Post", 0.0
		case event.OutcomeBlocked:
			return quality * lowShotBlockCredit, "Shot Blocked", 0.0
		default:
			return 0.0, "Shot Off Target", 0.0
		}
	}
}

// winProbDelta compares win probability before and after a goal, from the
// home side's perspective. Absent win oracle means no swing.
func (s *Scorer) winProbDelta(ctx context.Context, ev *event.Event, snap state.Snapshot, quality float64) float64 {
	scoreAfter := snap.ScoreDiff
	qualityAfter := snap.QualityDiff
	if ev.Team == snap.Home {
		scoreAfter++
		qualityAfter += quality
	} else {
		scoreAfter--
		qualityAfter -= quality
	}

	before := oracle.ExtractWinFeatures(ev.Minute, snap.ScoreDiff, snap.QualityDiff)
	after := oracle.ExtractWinFeatures(ev.Minute, scoreAfter, qualityAfter)

	pBefore, okBefore := s.oracles.Win.Predict(ctx, before.Vector())
	pAfter, okAfter := s.oracles.Win.Predict(ctx, after.Vector())
	if !okBefore || !okAfter {
		return 0.0
	}
	return pAfter - pBefore
}

func scoreDribble(ev *event.Event) (float64, string) {
	if ev.Dribble == nil {
		return 0.0, "Regular Play"
	}
	switch ev.Dribble.Outcome {
	case "Complete":
		return dribbleValue, "Successful Dribble"
	case "Incomplete":
		return failedDribbleValue, "Failed Dribble (Dispossessed)"
	default:
		return 0.0, "Regular Play"
	}
}

func scoreFoul(ev *event.Event) (float64, string) {
	card := ""
	if ev.Foul != nil {
		card = ev.Foul.Card
	}
	switch card {
	case event.CardRed:
		return redCardPenalty, "RED CARD - Sent Off"
	case event.CardSecondYellow:
		return secondYellowPenalty, "SECOND YELLOW - Sent Off"
	case event.CardYellow:
		return yellowCardPenalty, "Yellow Card"
	default:
		return plainFoulPenalty, "Foul Committed"
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
