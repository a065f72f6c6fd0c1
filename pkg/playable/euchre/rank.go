package euchre

import "euchre-server/pkg/deck"

// Trump rank values. Trump outranks every plain-suit card, and within trump
// the right bower outranks the left bower, which outranks the ace.
const (
	rightBowerValue = 120
	leftBowerValue  = 119
	trumpBase       = 100
)

// isRightBower returns true if the card is the jack of the trump suit
func isRightBower(c *deck.Card, trump deck.Suit) bool {
	return c.Rank == deck.Jack && c.Suit == trump
}

// isLeftBower returns true if the card is the jack of the suit sharing trump's color
func isLeftBower(c *deck.Card, trump deck.Suit) bool {
	return c.Rank == deck.Jack && c.Suit == trump.SameColor()
}

// effectiveSuit returns the suit the card counts as during the round.
// The left bower counts as trump, not its printed suit.
func effectiveSuit(c *deck.Card, trump deck.Suit) deck.Suit {
	if trump != "" && isLeftBower(c, trump) {
		return trump
	}

	return c.Suit
}

// rankValue returns the strength of a card given the trump and lead suits.
// A non-trump card only has value when it follows the lead suit; an off-suit
// discard can never win a trick.
func rankValue(c *deck.Card, trump, lead deck.Suit) int {
	if trump != "" {
		if isRightBower(c, trump) {
			return rightBowerValue
		}

		if isLeftBower(c, trump) {
			return leftBowerValue
		}

		if c.Suit == trump {
			return trumpBase + c.Rank
		}
	}

	if c.Suit == lead {
		return c.Rank
	}

	return 0
}

// hasEffectiveSuit returns true if any card in the hand counts as the given suit
func hasEffectiveSuit(hand deck.Hand, suit, trump deck.Suit) bool {
	for _, c := range hand {
		if effectiveSuit(c, trump) == suit {
			return true
		}
	}

	return false
}
