// Package testmatch generates deterministic synthetic match data for tests
// and local development, so the engine can be exercised without network
// access to real match feeds.
package testmatch

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/coachos/pitchpilot/internal/domain/event"
)

// Default generation parameters.
const (
	defaultEvents    = 200
	defaultSeed      = 1
	playersPerSide   = 11
	shotShare        = 0.12
	dribbleShare     = 0.08
	pressureShare    = 0.25
	passFailShare    = 0.2
	goalShare        = 0.25
	maxPassLength    = 30.0
	shotZoneX        = 90.0
	secondHalfStart  = 45
	matchMinutes     = 90
	shotQualityCeil  = 0.6
	shotQualityFloor = 0.02
)

// Config controls synthetic match generation. Zero values fall back to the
// defaults above.
type Config struct {
	Home   string
	Away   string
	Events int
	Seed   int64
}

// Generate produces a chronologically ordered synthetic match plus matching
// lineups. The same Config always yields the same match.
func Generate(cfg Config) ([]event.Event, event.Roster) {
	if cfg.Home == "" {
		cfg.Home = "Home FC"
	}
	if cfg.Away == "" {
		cfg.Away = "Away FC"
	}
	if cfg.Events <= 0 {
		cfg.Events = defaultEvents
	}
	if cfg.Seed == 0 {
		cfg.Seed = defaultSeed
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	roster := buildRoster(cfg.Home, cfg.Away)

	events := make([]event.Event, 0, cfg.Events)
	for i := 0; i < cfg.Events; i++ {
		minute := i * matchMinutes / cfg.Events
		period := 1
		if minute >= secondHalfStart {
			period = 2
		}

		team := cfg.Home
		if rng.Intn(2) == 1 {
			team = cfg.Away
		}
		player := pick(rng, roster[team])

		ev := event.Event{
			ID:            eventID(cfg.Seed, i),
			Period:        period,
			Minute:        minute,
			Second:        rng.Intn(60),
			Team:          team,
			Player:        &event.Player{ID: player.ID, Name: player.Name},
			UnderPressure: rng.Float64() < pressureShare,
		}
		fill(rng, &ev)
		events = append(events, ev)
	}
	event.SortChronological(events)
	return events, roster
}

// fill assigns a type and payload to the event based on its draw.
func fill(rng *rand.Rand, ev *event.Event) {
	draw := rng.Float64()
	switch {
	case draw < shotShare:
		ev.Type = event.TypeShot
		ev.Location = &event.Location{
			X: shotZoneX + rng.Float64()*(120-shotZoneX),
			Y: 20 + rng.Float64()*40,
		}
		quality := shotQualityFloor + rng.Float64()*(shotQualityCeil-shotQualityFloor)
		outcome := event.OutcomeSaved
		if rng.Float64() < goalShare {
			outcome = event.OutcomeGoal
		}
		ev.Shot = &event.ShotDetail{Outcome: outcome, Quality: quality, HasQuality: true}
	case draw < shotShare+dribbleShare:
		ev.Type = event.TypeDribble
		ev.Location = randomLocation(rng)
		outcome := "Complete"
		if rng.Intn(2) == 1 {
			outcome = "Incomplete"
		}
		ev.Dribble = &event.DribbleDetail{Outcome: outcome}
	default:
		ev.Type = event.TypePass
		start := randomLocation(rng)
		ev.Location = start
		ev.Pass = &event.PassDetail{
			EndLocation: &event.Location{
				X: clampPitch(start.X+(rng.Float64()*2-1)*maxPassLength, 120),
				Y: clampPitch(start.Y+(rng.Float64()*2-1)*maxPassLength, 80),
			},
			Failed: rng.Float64() < passFailShare,
		}
	}
}

func buildRoster(home, away string) event.Roster {
	roster := event.Roster{}
	for side, base := range map[string]int{home: 100, away: 200} {
		players := make([]event.RosterPlayer, 0, playersPerSide)
		for j := 1; j <= playersPerSide; j++ {
			players = append(players, event.RosterPlayer{
				ID:     base + j,
				Name:   fmt.Sprintf("%s Player %d", side, j),
				Jersey: j,
			})
		}
		roster[side] = players
	}
	return roster
}

// eventID derives a stable UUID from the seed and index so repeated runs
// produce identical matches.
func eventID(seed int64, i int) string {
	name := fmt.Sprintf("pitchpilot/testmatch/%d/%d", seed, i)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

func pick(rng *rand.Rand, players []event.RosterPlayer) event.RosterPlayer {
	return players[rng.Intn(len(players))]
}

func randomLocation(rng *rand.Rand) *event.Location {
	return &event.Location{X: rng.Float64() * 120, Y: rng.Float64() * 80}
}

func clampPitch(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
