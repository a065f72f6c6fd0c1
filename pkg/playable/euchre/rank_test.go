package euchre

import (
	"testing"

	"euchre-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func card(s string) *deck.Card {
	c, err := deck.CardFromString(s)
	if err != nil {
		panic(err)
	}

	return c
}

func hand(s string) deck.Hand {
	return deck.Hand(deck.CardsFromString(s))
}

func TestBowers(t *testing.T) {
	assert.True(t, isRightBower(card("J of spades"), deck.Spades))
	assert.False(t, isRightBower(card("J of clubs"), deck.Spades))
	assert.False(t, isRightBower(card("A of spades"), deck.Spades))

	assert.True(t, isLeftBower(card("J of clubs"), deck.Spades))
	assert.True(t, isLeftBower(card("J of diamonds"), deck.Hearts))
	assert.False(t, isLeftBower(card("J of hearts"), deck.Spades))
}

func TestEffectiveSuit(t *testing.T) {
	// the left bower counts as trump
	assert.Equal(t, deck.Spades, effectiveSuit(card("J of clubs"), deck.Spades))
	assert.Equal(t, deck.Clubs, effectiveSuit(card("J of clubs"), deck.Hearts))
	assert.Equal(t, deck.Clubs, effectiveSuit(card("10 of clubs"), deck.Spades))
	assert.Equal(t, deck.Hearts, effectiveSuit(card("J of hearts"), ""))
}

func TestRankValue(t *testing.T) {
	trump := deck.Spades
	lead := deck.Hearts

	// right bower > left bower > ace of trump
	right := rankValue(card("J of spades"), trump, lead)
	left := rankValue(card("J of clubs"), trump, lead)
	aceTrump := rankValue(card("A of spades"), trump, lead)
	assert.Greater(t, right, left)
	assert.Greater(t, left, aceTrump)

	// any trump beats the best lead-suit card
	assert.Greater(t, rankValue(card("9 of spades"), trump, lead), rankValue(card("A of hearts"), trump, lead))

	// off-suit cards are worthless
	assert.Equal(t, 0, rankValue(card("A of diamonds"), trump, lead))
	assert.Greater(t, rankValue(card("10 of hearts"), trump, lead), 0)
}

func TestRankValue_leftBowerBeatsPlainAce(t *testing.T) {
	// J of clubs is the left bower when spades are trump
	trick := &Trick{
		Leader: 0,
		Plays: []*PlayedCard{
			{Seat: 0, Card: card("A of spades")},
			{Seat: 1, Card: card("J of clubs")},
		},
		Winner: -1,
	}

	assert.Equal(t, 1, trickWinner(trick, deck.Spades))
}

func TestHasEffectiveSuit(t *testing.T) {
	h := hand("J of clubs, 9 of hearts")

	// the only "club" counts as a spade
	assert.True(t, hasEffectiveSuit(h, deck.Spades, deck.Spades))
	assert.False(t, hasEffectiveSuit(h, deck.Clubs, deck.Spades))
	assert.True(t, hasEffectiveSuit(h, deck.Clubs, deck.Hearts))
}
