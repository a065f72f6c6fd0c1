package euchre

import "euchre-server/pkg/deck"

// PlayedCard pairs a card with the seat that played it
type PlayedCard struct {
	Seat int        `json:"seat"`
	Card *deck.Card `json:"card"`
}

// Trick is one trick within a round. It grows as each active player plays a
// card and is finalized once all active players have played.
type Trick struct {
	Number int           `json:"number"`
	Leader int           `json:"leader"`
	Plays  []*PlayedCard `json:"plays"`
	Winner int           `json:"winner"` // -1 until the trick is complete
}

// leadSuit returns the effective suit of the first card played, or "" if the
// trick is empty
func (t *Trick) leadSuit(trump deck.Suit) deck.Suit {
	if len(t.Plays) == 0 {
		return ""
	}

	return effectiveSuit(t.Plays[0].Card, trump)
}

// round holds the state for a single hand of euchre, deal through scoring
type round struct {
	dealer int

	// the four undealt cards; the discard joins them after a pickup
	kitty      deck.Hand
	upCard     *deck.Card
	turnedDown bool

	// bidding state
	bidRound int // 1 or 2
	bidTurn  int // seat currently deciding
	passes   int

	// trump state, immutable once determined
	trump       deck.Suit
	caller      int
	calledRound int
	goingAlone  bool
	satOut      int // seat sitting out for a loner, else -1

	awaitingDiscard bool

	tricks    []*Trick
	tricksWon [2]int

	result *RoundResult
}

func newRound(dealer int) *round {
	return &round{
		dealer:   dealer,
		bidRound: 1,
		bidTurn:  leftOf(dealer),
		caller:   -1,
		satOut:   -1,
	}
}

// trumpDetermined returns true once bidding has fixed a trump suit
func (r *round) trumpDetermined() bool {
	return r.trump != ""
}

// activePlayers returns the number of seats playing tricks this round
func (r *round) activePlayers() int {
	if r.satOut >= 0 {
		return 3
	}

	return 4
}

// nextActiveSeat returns the seat clockwise of the given seat, skipping the
// sat-out partner of a loner
func (r *round) nextActiveSeat(seat int) int {
	next := leftOf(seat)
	if next == r.satOut {
		next = leftOf(next)
	}

	return next
}

// firstActiveSeatFrom returns the seat itself unless it sits out
func (r *round) firstActiveSeatFrom(seat int) int {
	if seat == r.satOut {
		return leftOf(seat)
	}

	return seat
}

// currentTrick returns the trick in progress, or nil before trick play starts
func (r *round) currentTrick() *Trick {
	if len(r.tricks) == 0 {
		return nil
	}

	return r.tricks[len(r.tricks)-1]
}

// turnSeat returns the seat due to play the next card
func (r *round) turnSeat() int {
	trick := r.currentTrick()
	seat := trick.Leader
	for i := 0; i < len(trick.Plays); i++ {
		seat = r.nextActiveSeat(seat)
	}

	return seat
}

// isOver returns true once the round has been scored
func (r *round) isOver() bool {
	return r.result != nil
}

// startTricks begins trick play; the first trick is led by the seat left of
// the dealer (or the next active seat for a loner round)
func (r *round) startTricks() {
	r.tricks = []*Trick{{
		Number: 1,
		Leader: r.firstActiveSeatFrom(leftOf(r.dealer)),
		Winner: -1,
	}}
}
