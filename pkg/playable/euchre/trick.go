package euchre

import (
	"euchre-server/pkg/deck"
	"euchre-server/pkg/playable"
)

// StepAction describes what happened during a single trick-play step
type StepAction string

// trick-play step outcomes
const (
	// ActionAwaitingPlayer means a human must play before the trick can advance
	ActionAwaitingPlayer StepAction = "awaiting-player"

	// ActionBotPlayed means a bot played a card
	ActionBotPlayed StepAction = "bot-played"

	// ActionCardPlayed means a human played a card
	ActionCardPlayed StepAction = "card-played"

	// ActionTrickCompleted means the trick was finalized and a winner determined
	ActionTrickCompleted StepAction = "trick-completed"

	// ActionRoundCompleted means the fifth trick was scored and the round is over
	ActionRoundCompleted StepAction = "round-completed"
)

// TrickStep is the result of advancing trick play by one step
type TrickStep struct {
	Action      StepAction   `json:"action"`
	Seat        int          `json:"seat"`
	Card        *deck.Card   `json:"card,omitempty"`
	Trick       *Trick       `json:"trick,omitempty"`
	RoundResult *RoundResult `json:"roundResult,omitempty"`
}

// legalPlays returns the cards the hand may legally play into the trick.
// A player holding the effective lead suit must follow it; the left bower
// belongs to the trump suit here, not its printed suit.
func legalPlays(hand deck.Hand, trick *Trick, trump deck.Suit) deck.Hand {
	lead := trick.leadSuit(trump)
	if lead == "" || !hasEffectiveSuit(hand, lead, trump) {
		return hand
	}

	var legal deck.Hand
	for _, c := range hand {
		if effectiveSuit(c, trump) == lead {
			legal = append(legal, c)
		}
	}

	return legal
}

// trickWinner returns the seat that won a fully played trick
func trickWinner(trick *Trick, trump deck.Suit) int {
	seat, _ := trickLeaderSoFar(trick, trump)
	return seat
}

// trickGuard validates that trick play may advance
func (g *Game) trickGuard() error {
	if g.round == nil {
		return ErrNoHandDealt
	}

	if g.winner != NoTeam {
		return ErrGameOver
	}

	r := g.round
	if r.awaitingDiscard {
		return ErrAwaitingDiscard
	}

	if !r.trumpDetermined() {
		return ErrBiddingNotComplete
	}

	if r.isOver() {
		return ErrRoundIsOver
	}

	return nil
}

// PlayCard plays a card from a human player's hand into the current trick.
// The play must follow suit when the hand can.
func (g *Game) PlayCard(seat int, card *deck.Card) (*TrickStep, error) {
	if err := g.trickGuard(); err != nil {
		return nil, err
	}

	r := g.round
	trick := r.currentTrick()
	if trick.Winner >= 0 || len(trick.Plays) == r.activePlayers() {
		return nil, ErrNotPlayersTurn
	}

	if seat != r.turnSeat() {
		return nil, ErrNotPlayersTurn
	}

	hand := g.players[seat].hand
	if !hand.HasCard(card) {
		return nil, ErrCardNotInHand
	}

	lead := trick.leadSuit(r.trump)
	if lead != "" && effectiveSuit(card, r.trump) != lead && hasEffectiveSuit(hand, lead, r.trump) {
		return nil, ErrMustFollowSuit
	}

	g.players[seat].hand.Discard(card)
	trick.Plays = append(trick.Plays, &PlayedCard{Seat: seat, Card: card})
	g.sendLogMessages(playable.SimpleLogMessage(seat, card, "{} played the %s", card))

	return &TrickStep{Action: ActionCardPlayed, Seat: seat, Card: card}, nil
}

// PlayTrickStep advances trick play by a single step: a bot plays a card, a
// full trick is finalized, or the round is scored. If a human is due to play,
// no action is taken and the step reports which seat is awaited. Clients poll
// this until they see ActionAwaitingPlayer or ActionRoundCompleted.
func (g *Game) PlayTrickStep() (*TrickStep, error) {
	if err := g.trickGuard(); err != nil {
		return nil, err
	}

	r := g.round
	trick := r.currentTrick()

	// the fifth trick stays finalized with no successor; the next step
	// scores the round
	if trick.Winner >= 0 {
		result := g.finishRound()
		return &TrickStep{Action: ActionRoundCompleted, Seat: -1, RoundResult: result}, nil
	}

	if len(trick.Plays) == r.activePlayers() {
		winner := trickWinner(trick, r.trump)
		trick.Winner = winner
		r.tricksWon[teamForSeat(winner).index()]++
		g.sendLogMessages(playable.SimpleLogMessage(winner, nil, "{} won trick %d", trick.Number))

		if trick.Number < tricksPerRound {
			r.tricks = append(r.tricks, &Trick{
				Number: trick.Number + 1,
				Leader: winner,
				Winner: -1,
			})
		}

		return &TrickStep{Action: ActionTrickCompleted, Seat: winner, Trick: trick}, nil
	}

	seat := r.turnSeat()
	if g.players[seat].IsHuman {
		return &TrickStep{Action: ActionAwaitingPlayer, Seat: seat}, nil
	}

	card := chooseCard(seat, g.players[seat].hand, trick, r.trump)
	g.players[seat].hand.Discard(card)
	trick.Plays = append(trick.Plays, &PlayedCard{Seat: seat, Card: card})
	g.sendLogMessages(playable.SimpleLogMessage(seat, card, "{} played the %s", card))

	return &TrickStep{Action: ActionBotPlayed, Seat: seat, Card: card}, nil
}
