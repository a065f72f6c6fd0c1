package euchre

import (
	"fmt"

	"euchre-server/pkg/deck"
	"euchre-server/pkg/playable"
)

// Decision is a bidding choice
type Decision string

// bidding choices
const (
	DecisionPass    Decision = "pass"
	DecisionOrderUp Decision = "order-up"
	DecisionCall    Decision = "call"
)

// BidDecision is a single bidding choice along with the suit and loner
// declaration when the choice names trump
type BidDecision struct {
	Decision   Decision  `json:"decision"`
	Suit       deck.Suit `json:"suit,omitempty"`
	GoingAlone bool      `json:"goingAlone"`
}

// BidAction describes what happened during a single bidding step
type BidAction string

// bidding step outcomes
const (
	BidAwaitingPlayer BidAction = "awaiting-player"
	BidPassed         BidAction = "passed"
	BidOrderedUp      BidAction = "ordered-up"
	BidCalled         BidAction = "called"
	BidDiscarded      BidAction = "discarded"
)

// BidStep is the result of advancing the bidding by one bot action
type BidStep struct {
	Action   BidAction    `json:"action"`
	Seat     int          `json:"seat"`
	Decision *BidDecision `json:"decision,omitempty"`
}

// bidGuard validates that the seat may act in the bidding phase
func (g *Game) bidGuard(seat int) error {
	if g.round == nil {
		return ErrNoHandDealt
	}

	if g.winner != NoTeam {
		return ErrGameOver
	}

	if g.round.awaitingDiscard {
		return ErrAwaitingDiscard
	}

	if g.round.trumpDetermined() {
		return ErrBiddingComplete
	}

	if seat != g.round.bidTurn {
		return ErrNotPlayersTurn
	}

	return nil
}

// DetermineTrump returns the bot's bidding decision for the seat currently
// deciding. The decision is not applied; callers follow up with PassBid or
// AcceptTrump. It is an error to ask on behalf of a human player.
func (g *Game) DetermineTrump(seat int) (*BidDecision, error) {
	if err := g.bidGuard(seat); err != nil {
		return nil, err
	}

	player := g.players[seat]
	if player.IsHuman {
		return nil, ErrNotABot
	}

	return decideBid(player.hand, seat, g.round.dealer, g.round.upCard, g.round.bidRound), nil
}

// PassBid passes the bid for the seat. Four passes in the first round turn
// the up-card down and start the second round. The dealer may not pass in
// the second round.
func (g *Game) PassBid(seat int) error {
	if err := g.bidGuard(seat); err != nil {
		return err
	}

	r := g.round
	if r.bidRound == 2 && seat == r.dealer {
		return ErrDealerMustCall
	}

	r.passes++
	if r.bidRound == 1 && r.passes == numPlayers {
		r.bidRound = 2
		r.turnedDown = true
		r.passes = 0
		r.bidTurn = leftOf(r.dealer)
		g.sendLogMessages(playable.SimpleLogMessage(seat, nil, "{} passed; the %s is turned down", r.upCard))
	} else {
		r.bidTurn = leftOf(r.bidTurn)
		g.sendLogMessages(playable.SimpleLogMessage(seat, nil, "{} passed"))
	}

	return nil
}

// AcceptTrump names trump for the seat. In the first round the suit must
// match the up-card, and the dealer picks the up-card up and must discard
// before trick play starts. In the second round any suit but the turned-down
// one may be named.
func (g *Game) AcceptTrump(seat int, suit deck.Suit, goingAlone bool) error {
	if err := g.bidGuard(seat); err != nil {
		return err
	}

	if !suit.IsValid() {
		return fmt.Errorf("invalid suit: %s", suit)
	}

	r := g.round
	if r.bidRound == 1 && suit != r.upCard.Suit {
		return fmt.Errorf("must order up %s in the first round", r.upCard.Suit)
	}

	if r.bidRound == 2 && suit == r.upCard.Suit {
		return ErrSuitTurnedDown
	}

	r.trump = suit
	r.caller = seat
	r.calledRound = r.bidRound
	r.goingAlone = goingAlone
	if goingAlone {
		r.satOut = partnerSeat(seat)
	}

	if goingAlone {
		g.sendLogMessages(playable.SimpleLogMessage(seat, nil, "{} called %s trump and is going alone", suit))
	} else {
		g.sendLogMessages(playable.SimpleLogMessage(seat, nil, "{} called %s trump", suit))
	}

	if r.bidRound == 1 && r.satOut != r.dealer {
		r.kitty.Discard(r.upCard)
		g.players[r.dealer].hand.AddCard(r.upCard)
		r.awaitingDiscard = true
		return nil
	}

	r.startTricks()
	return nil
}

// DealerDiscard sheds a card from the dealer's hand after picking up the
// up-card. The discard joins the kitty face down and trick play begins.
func (g *Game) DealerDiscard(seat int, card *deck.Card) error {
	if g.round == nil {
		return ErrNoHandDealt
	}

	r := g.round
	if !r.awaitingDiscard {
		return ErrNotAwaitingDiscard
	}

	if seat != r.dealer {
		return ErrNotPlayersTurn
	}

	if !g.players[seat].hand.Discard(card) {
		return ErrCardNotInHand
	}

	r.kitty.AddCard(card)
	r.awaitingDiscard = false
	r.startTricks()

	g.sendLogMessages(playable.SimpleLogMessage(seat, nil, "{} discarded"))
	return nil
}

// BidStep advances the bidding by at most one bot action. If a human is due
// to act, no action is taken and the step reports which seat is awaited.
func (g *Game) BidStep() (*BidStep, error) {
	if g.round == nil {
		return nil, ErrNoHandDealt
	}

	r := g.round
	if r.awaitingDiscard {
		if g.players[r.dealer].IsHuman {
			return &BidStep{Action: BidAwaitingPlayer, Seat: r.dealer}, nil
		}

		hand := g.players[r.dealer].hand
		if err := g.DealerDiscard(r.dealer, worstCard(hand, r.trump)); err != nil {
			return nil, err
		}

		return &BidStep{Action: BidDiscarded, Seat: r.dealer}, nil
	}

	if r.trumpDetermined() {
		return nil, ErrBiddingComplete
	}

	seat := r.bidTurn
	if g.players[seat].IsHuman {
		return &BidStep{Action: BidAwaitingPlayer, Seat: seat}, nil
	}

	decision, err := g.DetermineTrump(seat)
	if err != nil {
		return nil, err
	}

	if decision.Decision == DecisionPass {
		if err := g.PassBid(seat); err != nil {
			return nil, err
		}

		return &BidStep{Action: BidPassed, Seat: seat, Decision: decision}, nil
	}

	if err := g.AcceptTrump(seat, decision.Suit, decision.GoingAlone); err != nil {
		return nil, err
	}

	action := BidCalled
	if decision.Decision == DecisionOrderUp {
		action = BidOrderedUp
	}

	return &BidStep{Action: action, Seat: seat, Decision: decision}, nil
}
