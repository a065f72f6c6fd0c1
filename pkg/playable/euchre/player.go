package euchre

import (
	"encoding/json"

	"euchre-server/pkg/deck"
)

// Team identifies one of the two partnerships.
// Seats 0 and 2 form Team1; seats 1 and 3 form Team2.
type Team int

// team constants
const (
	NoTeam Team = iota
	Team1
	Team2
)

func (t Team) String() string {
	switch t {
	case Team1:
		return "team 1"
	case Team2:
		return "team 2"
	}

	return "no team"
}

// MarshalJSON encodes the team as its display name
func (t Team) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// index returns the team's position in a [2]int tally
func (t Team) index() int {
	return int(t) - 1
}

// Opposing returns the other team
func (t Team) Opposing() Team {
	switch t {
	case Team1:
		return Team2
	case Team2:
		return Team1
	}

	return NoTeam
}

func teamForSeat(seat int) Team {
	if seat%2 == 0 {
		return Team1
	}

	return Team2
}

// Player is a seat at the euchre table.
// Players are created once at game start and persist for the whole game.
type Player struct {
	Name    string `json:"name"`
	Seat    int    `json:"seat"`
	IsHuman bool   `json:"isHuman"`

	hand deck.Hand
}

// Team returns the partnership the player belongs to
func (p *Player) Team() Team {
	return teamForSeat(p.Seat)
}

// Hand returns a copy of the player's current hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// partnerSeat returns the seat across the table
func partnerSeat(seat int) int {
	return (seat + 2) % 4
}

// leftOf returns the next seat clockwise
func leftOf(seat int) int {
	return (seat + 1) % 4
}
