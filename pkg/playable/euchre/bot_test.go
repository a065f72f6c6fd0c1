package euchre

import (
	"testing"

	"euchre-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateTrump(t *testing.T) {
	h := hand("J of spades, J of clubs, A of spades, 9 of hearts, 10 of hearts")
	assert.InDelta(t, 0.54, evaluateTrump(h, deck.Spades), 0.0001)

	assert.InDelta(t, 0, evaluateTrump(h, deck.Diamonds), 0.0001)
}

func TestEvaluateAces(t *testing.T) {
	h := hand("A of hearts, A of clubs, 9 of hearts, 10 of diamonds, Q of spades")

	// the ace of the left bower's suit counts 0.9
	assert.InDelta(t, 1.9/3, evaluateAces(h, deck.Spades), 0.0001)

	// the ace of trump is not an off-suit ace
	h2 := hand("A of spades, 9 of hearts, 10 of hearts, Q of clubs, K of diamonds")
	assert.InDelta(t, 0, evaluateAces(h2, deck.Spades), 0.0001)
}

func TestEvaluateVoids(t *testing.T) {
	// one effective suit; the left bower counts as trump
	h := hand("A of spades, K of spades, 9 of spades, J of clubs, 10 of spades")
	assert.InDelta(t, 1, evaluateVoids(h, deck.Spades), 0.0001)

	// no trump means voids are worthless
	h2 := hand("9 of hearts, 10 of hearts, 9 of diamonds, 10 of diamonds, Q of hearts")
	assert.InDelta(t, 0, evaluateVoids(h2, deck.Spades), 0.0001)
}

func TestDecideBid_firstRound(t *testing.T) {
	h := hand("J of spades, J of clubs, K of spades, 9 of hearts, 10 of diamonds")
	up := card("A of spades")

	// the dealer evaluates with the up-card picked up and clears the 0.45 bar
	decision := decideBid(h, 3, 3, up, 1)
	assert.Equal(t, DecisionOrderUp, decision.Decision)
	assert.Equal(t, deck.Spades, decision.Suit)
	assert.False(t, decision.GoingAlone)

	// the same hand in first seat is under the 0.60 bar
	decision = decideBid(h, 0, 3, up, 1)
	assert.Equal(t, DecisionPass, decision.Decision)
}

func TestDecideBid_goingAlone(t *testing.T) {
	h := hand("J of spades, J of clubs, A of spades, K of spades, A of hearts")
	decision := decideBid(h, 1, 3, card("9 of spades"), 1)

	assert.Equal(t, DecisionOrderUp, decision.Decision)
	assert.True(t, decision.GoingAlone)
}

func TestDecideBid_secondRound(t *testing.T) {
	h := hand("9 of hearts, 10 of diamonds, Q of clubs, 9 of spades, 10 of hearts")
	up := card("A of spades")

	// a weak non-dealer passes
	decision := decideBid(h, 0, 3, up, 2)
	assert.Equal(t, DecisionPass, decision.Decision)

	// the stuck dealer calls their best suit no matter how weak
	decision = decideBid(h, 3, 3, up, 2)
	assert.Equal(t, DecisionCall, decision.Decision)
	assert.Equal(t, deck.Hearts, decision.Suit)
	assert.False(t, decision.GoingAlone)
}

func TestDecideBid_secondRoundNeverCallsTurnedDownSuit(t *testing.T) {
	// all spades, but spades were turned down
	h := hand("J of spades, A of spades, K of spades, Q of spades, 10 of spades")
	decision := decideBid(h, 3, 3, card("9 of spades"), 2)

	assert.Equal(t, DecisionCall, decision.Decision)
	assert.NotEqual(t, deck.Spades, decision.Suit)
	assert.True(t, decision.Suit.IsValid())
}

func TestWorstCard(t *testing.T) {
	h := hand("J of clubs, 9 of hearts, A of spades, 10 of diamonds, K of spades")
	assert.True(t, worstCard(h, deck.Spades).Equal(card("9 of hearts")))

	// with hearts trump the left bower is safe and the spades are junk
	assert.True(t, worstCard(h, deck.Hearts).Equal(card("10 of diamonds")))
}

func TestChooseCard(t *testing.T) {
	trump := deck.Diamonds

	t.Run("leads strongest", func(t *testing.T) {
		trick := &Trick{Leader: 0, Winner: -1}
		got := chooseCard(0, hand("J of diamonds, 9 of hearts"), trick, trump)
		assert.True(t, got.Equal(card("J of diamonds")))
	})

	t.Run("ducks when partner is winning", func(t *testing.T) {
		trick := &Trick{Leader: 0, Winner: -1, Plays: []*PlayedCard{
			{Seat: 0, Card: card("A of hearts")},
			{Seat: 1, Card: card("9 of hearts")},
		}}
		got := chooseCard(2, hand("K of hearts, Q of hearts, 9 of spades"), trick, trump)
		assert.True(t, got.Equal(card("Q of hearts")))
	})

	t.Run("wins when it can", func(t *testing.T) {
		trick := &Trick{Leader: 0, Winner: -1, Plays: []*PlayedCard{
			{Seat: 0, Card: card("K of hearts")},
		}}
		got := chooseCard(1, hand("A of hearts, 9 of hearts, Q of spades"), trick, trump)
		assert.True(t, got.Equal(card("A of hearts")))
	})

	t.Run("sheds lowest when it cannot win", func(t *testing.T) {
		trick := &Trick{Leader: 0, Winner: -1, Plays: []*PlayedCard{
			{Seat: 0, Card: card("A of hearts")},
		}}
		got := chooseCard(1, hand("K of hearts, 9 of hearts, A of spades"), trick, trump)
		assert.True(t, got.Equal(card("9 of hearts")))
	})

	t.Run("trumps in when void", func(t *testing.T) {
		trick := &Trick{Leader: 0, Winner: -1, Plays: []*PlayedCard{
			{Seat: 0, Card: card("A of hearts")},
		}}
		got := chooseCard(1, hand("9 of diamonds, A of spades, K of clubs"), trick, trump)
		assert.True(t, got.Equal(card("9 of diamonds")))
	})
}
