// Package statsbomb fetches and decodes open-data match files into the
// typed domain model.
//
// Decoding happens once at this boundary: the raw nested-map shape of the
// provider JSON is flattened into tagged event variants, so nothing past
// this package ever probes a map for optional keys.
package statsbomb

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/coachos/pitchpilot/internal/domain/event"
)

// rawEvent mirrors the provider's event JSON. Only the fields the engine
// consumes are decoded.
type rawEvent struct {
	ID            string      `json:"id"`
	Period        int         `json:"period"`
	Minute        int         `json:"minute"`
	Second        int         `json:"second"`
	Type          named       `json:"type"`
	Team          named       `json:"team"`
	Player        *named      `json:"player"`
	Location      []float64   `json:"location"`
	UnderPressure bool        `json:"under_pressure"`
	Pass          *rawPass    `json:"pass"`
	Shot          *rawShot    `json:"shot"`
	Dribble       *rawOutcome `json:"dribble"`
	Carry         *rawCarry   `json:"carry"`
	Foul          *rawFoul    `json:"foul_committed"`
}

type named struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type rawPass struct {
	EndLocation []float64 `json:"end_location"`
	Outcome     *named    `json:"outcome"`
	GoalAssist  bool      `json:"goal_assist"`
	ShotAssist  bool      `json:"shot_assist"`
	Type        *named    `json:"type"`
}

type rawShot struct {
	Outcome *named   `json:"outcome"`
	XG      *float64 `json:"statsbomb_xg"`
}

type rawOutcome struct {
	Outcome *named `json:"outcome"`
}

type rawCarry struct {
	EndLocation []float64 `json:"end_location"`
}

type rawFoul struct {
	Card *named `json:"card"`
}

// DecodeEvents parses a provider events file into typed events. Events keep
// provider order; callers sort chronologically before replaying.
func DecodeEvents(data []byte) ([]event.Event, error) {
	var raws []rawEvent
	if err := json.Unmarshal(data, &raws); err != nil {
		// Cached files written by older revisions keyed events by id.
		var keyed map[string]rawEvent
		if err2 := json.Unmarshal(data, &keyed); err2 != nil {
			return nil, fmt.Errorf("decode events: %w", err)
		}
		ids := make([]string, 0, len(keyed))
		for id := range keyed {
			ids = append(ids, id)
		}
		// Map iteration order would shuffle chronological ties between
		// runs; the id keeps them stable.
		sort.Strings(ids)
		raws = make([]rawEvent, 0, len(keyed))
		for _, id := range ids {
			raws = append(raws, keyed[id])
		}
	}

	events := make([]event.Event, 0, len(raws))
	for i := range raws {
		events = append(events, convertEvent(&raws[i]))
	}
	return events, nil
}

func convertEvent(r *rawEvent) event.Event {
	ev := event.Event{
		ID:            r.ID,
		Type:          event.Type(r.Type.Name),
		Period:        r.Period,
		Minute:        r.Minute,
		Second:        r.Second,
		Team:          r.Team.Name,
		Location:      toLocation(r.Location),
		UnderPressure: r.UnderPressure,
	}
	if r.Player != nil {
		ev.Player = &event.Player{ID: r.Player.ID, Name: r.Player.Name}
	}
	if r.Pass != nil {
		ev.Pass = &event.PassDetail{
			EndLocation: toLocation(r.Pass.EndLocation),
			// The provider only sets a pass outcome when the pass failed.
			Failed:     r.Pass.Outcome != nil,
			GoalAssist: r.Pass.GoalAssist,
			ShotAssist: r.Pass.ShotAssist,
		}
		if r.Pass.Type != nil {
			ev.Pass.TypeName = r.Pass.Type.Name
		}
	}
	if r.Shot != nil {
		ev.Shot = &event.ShotDetail{}
		if r.Shot.Outcome != nil {
			ev.Shot.Outcome = r.Shot.Outcome.Name
		}
		if r.Shot.XG != nil {
			ev.Shot.Quality = *r.Shot.XG
			ev.Shot.HasQuality = true
		}
	}
	if r.Dribble != nil && r.Dribble.Outcome != nil {
		ev.Dribble = &event.DribbleDetail{Outcome: r.Dribble.Outcome.Name}
	}
	if r.Carry != nil {
		ev.Carry = &event.CarryDetail{EndLocation: toLocation(r.Carry.EndLocation)}
	}
	if r.Foul != nil {
		ev.Foul = &event.FoulDetail{}
		if r.Foul.Card != nil {
			ev.Foul.Card = r.Foul.Card.Name
		}
	}
	return ev
}

func toLocation(coords []float64) *event.Location {
	if len(coords) < 2 {
		return nil
	}
	return &event.Location{X: coords[0], Y: coords[1]}
}

// rawLineup mirrors one side of the provider lineups file.
type rawLineup struct {
	TeamID   int    `json:"team_id"`
	TeamName string `json:"team_name"`
	Lineup   []struct {
		PlayerID       int    `json:"player_id"`
		PlayerName     string `json:"player_name"`
		PlayerNickname string `json:"player_nickname"`
		JerseyNumber   int    `json:"jersey_number"`
	} `json:"lineup"`
}

// DecodeLineups parses a provider lineups file into a roster keyed by side
// name.
func DecodeLineups(data []byte) (event.Roster, error) {
	var raws []rawLineup
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decode lineups: %w", err)
	}
	roster := make(event.Roster, len(raws))
	for _, side := range raws {
		players := make([]event.RosterPlayer, 0, len(side.Lineup))
		for _, p := range side.Lineup {
			players = append(players, event.RosterPlayer{
				ID:       p.PlayerID,
				Name:     p.PlayerName,
				Nickname: p.PlayerNickname,
				Jersey:   p.JerseyNumber,
			})
		}
		roster[side.TeamName] = players
	}
	return roster, nil
}
