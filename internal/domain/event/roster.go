package event

import "strings"

// RosterPlayer is one entry in a side's lineup.
type RosterPlayer struct {
	ID       int
	Name     string
	Nickname string
	Jersey   int
}

// Roster maps a side name to its lineup.
type Roster map[string][]RosterPlayer

// Find resolves a player query against the roster. Numeric id matches are
// preferred; otherwise names and nicknames are compared case-insensitively,
// exact match first, then substring.
func (r Roster) Find(id int, name string) (RosterPlayer, bool) {
	if id != 0 {
		for _, players := range r {
			for _, p := range players {
				if p.ID == id {
					return p, true
				}
			}
		}
	}
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return RosterPlayer{}, false
	}
	for _, players := range r {
		for _, p := range players {
			if strings.ToLower(p.Name) == needle || strings.ToLower(p.Nickname) == needle {
				return p, true
			}
		}
	}
	for _, players := range r {
		for _, p := range players {
			if strings.Contains(strings.ToLower(p.Name), needle) ||
				(p.Nickname != "" && strings.Contains(strings.ToLower(p.Nickname), needle)) {
				return p, true
			}
		}
	}
	return RosterPlayer{}, false
}

// Side returns the side a roster player belongs to.
func (r Roster) Side(playerID int) (string, bool) {
	for side, players := range r {
		for _, p := range players {
			if p.ID == playerID {
				return side, true
			}
		}
	}
	return "", false
}
