package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits lists the four suits in deck-build order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

var sameColor = map[Suit]Suit{
	Hearts:   Diamonds,
	Diamonds: Hearts,
	Clubs:    Spades,
	Spades:   Clubs,
}

// SameColor returns the other suit sharing this suit's color
func (s Suit) SameColor() Suit {
	return sameColor[s]
}

// IsValid returns true if the suit is one of the four suits
func (s Suit) IsValid() bool {
	_, ok := sameColor[s]
	return ok
}

// euchre ranks; nine is the lowest card in the deck
const (
	Nine  = 9
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// ErrInvalidCard is returned when a card string cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Card is an individual playing card
type Card struct {
	Rank int
	Suit Suit
}

// RankName returns the short rank name used in the wire format
func (c *Card) RankName() string {
	switch c.Rank {
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		panic(fmt.Sprintf("unknown rank: %d", c.Rank))
	}
}

// String returns the canonical form of the card (i.e., "J of spades").
// This is the only representation that crosses the client boundary.
func (c *Card) String() string {
	return fmt.Sprintf("%s of %s", c.RankName(), c.Suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Clone returns a clone of the card
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

// CardFromString returns a Card parsed from its canonical "<Rank> of <suit>" form
func CardFromString(s string) (*Card, error) {
	parts := strings.SplitN(s, " of ", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var rank int
	switch parts[0] {
	case "9":
		rank = Nine
	case "10":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		return nil, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, parts[0])
	}

	suit := Suit(parts[1])
	if !suit.IsValid() {
		return nil, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, parts[1])
	}

	return &Card{Rank: rank, Suit: suit}, nil
}

// CardsFromString returns a slice of cards from a comma-separated list.
// It panics on a malformed string and exists for test setup.
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, cs := range cardStrings {
		card, err := CardFromString(strings.TrimSpace(cs))
		if err != nil {
			panic(err)
		}

		cards[i] = card
	}

	return cards
}

// CardsToString converts a slice of cards to a comma-separated string
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ", ")
}

// MarshalJSON encodes the card in its canonical wire form
func (c *Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a card from its canonical wire form
func (c *Card) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	card, err := CardFromString(s)
	if err != nil {
		return err
	}

	*c = *card
	return nil
}
