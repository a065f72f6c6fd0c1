package euchre

import (
	"fmt"

	"euchre-server/pkg/deck"
)

// RoundState is the client-visible snapshot of the current hand
type RoundState struct {
	Dealer          int            `json:"dealer"`
	UpCard          *deck.Card     `json:"upCard"`
	TurnedDown      bool           `json:"turnedDown"`
	BidRound        int            `json:"bidRound"`
	BidTurn         int            `json:"bidTurn"` // -1 once trump is determined
	Trump           deck.Suit      `json:"trump"`
	Caller          int            `json:"caller"`
	CalledRound     int            `json:"calledRound"`
	GoingAlone      bool           `json:"goingAlone"`
	SatOut          int            `json:"satOut"`
	AwaitingDiscard bool           `json:"awaitingDiscard"`
	Turn            int            `json:"turn"` // seat due to play a card, or -1
	Tricks          []*Trick       `json:"tricks"`
	TricksWon       map[string]int `json:"tricksWon"`
	Result          *RoundResult   `json:"result"`
}

// GameState is the client-visible snapshot of the whole game
type GameState struct {
	Players     []*Player      `json:"players"`
	Dealer      int            `json:"dealer"`
	Score       map[string]int `json:"score"`
	HandsPlayed int            `json:"handsPlayed"`
	Winner      Team           `json:"winner"`
	Round       *RoundState    `json:"round"`
}

// PlayerState is the game state plus the player's own hand
type PlayerState struct {
	Player    *Player    `json:"player"`
	Hand      deck.Hand  `json:"hand"`
	GameState *GameState `json:"gameState"`
}

func (g *Game) getRoundState() *RoundState {
	r := g.round
	if r == nil {
		return nil
	}

	bidTurn := -1
	if !r.trumpDetermined() {
		bidTurn = r.bidTurn
	}

	turn := -1
	if trick := r.currentTrick(); trick != nil && !r.isOver() &&
		trick.Winner < 0 && len(trick.Plays) < r.activePlayers() {
		turn = r.turnSeat()
	}

	return &RoundState{
		Dealer:          r.dealer,
		UpCard:          r.upCard,
		TurnedDown:      r.turnedDown,
		BidRound:        r.bidRound,
		BidTurn:         bidTurn,
		Trump:           r.trump,
		Caller:          r.caller,
		CalledRound:     r.calledRound,
		GoingAlone:      r.goingAlone,
		SatOut:          r.satOut,
		AwaitingDiscard: r.awaitingDiscard,
		Turn:            turn,
		Tricks:          r.tricks,
		TricksWon: map[string]int{
			Team1.String(): r.tricksWon[Team1.index()],
			Team2.String(): r.tricksWon[Team2.index()],
		},
		Result: r.result,
	}
}

func (g *Game) getGameState() *GameState {
	return &GameState{
		Players:     g.players[:],
		Dealer:      g.dealer,
		Score:       g.Scores(),
		HandsPlayed: g.handsPlayed,
		Winner:      g.winner,
		Round:       g.getRoundState(),
	}
}

// GetPlayerState returns the game state from the seat's point of view,
// including the seat's hand
func (g *Game) GetPlayerState(seat int) (*PlayerState, error) {
	if seat < 0 || seat >= numPlayers {
		return nil, fmt.Errorf("invalid seat: %d", seat)
	}

	return &PlayerState{
		Player:    g.players[seat],
		Hand:      g.players[seat].Hand(),
		GameState: g.getGameState(),
	}, nil
}
