package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("9 of hearts", (&Card{Rank: Nine, Suit: Hearts}).String())
	a.Equal("10 of clubs", (&Card{Rank: Ten, Suit: Clubs}).String())
	a.Equal("J of spades", (&Card{Rank: Jack, Suit: Spades}).String())
	a.Equal("A of diamonds", (&Card{Rank: Ace, Suit: Diamonds}).String())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	card, err := CardFromString("J of spades")
	a.NoError(err)
	a.Equal(Card{Rank: Jack, Suit: Spades}, *card)

	card, err = CardFromString("10 of hearts")
	a.NoError(err)
	a.Equal(Card{Rank: Ten, Suit: Hearts}, *card)

	for _, bad := range []string{"", "J", "2 of spades", "J of swords", "jack of spades"} {
		card, err = CardFromString(bad)
		a.Nil(card)
		a.ErrorIs(err, ErrInvalidCard)
	}
}

func TestCard_JSONRoundTrip(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(&Card{Rank: Queen, Suit: Diamonds})
	a.NoError(err)
	a.Equal(`"Q of diamonds"`, string(b))

	var card Card
	a.NoError(json.Unmarshal([]byte(`"K of clubs"`), &card))
	a.Equal(Card{Rank: King, Suit: Clubs}, card)

	a.Error(json.Unmarshal([]byte(`"K of cups"`), &card))
}

func TestSuit_SameColor(t *testing.T) {
	a := assert.New(t)
	a.Equal(Spades, Clubs.SameColor())
	a.Equal(Clubs, Spades.SameColor())
	a.Equal(Diamonds, Hearts.SameColor())
	a.Equal(Hearts, Diamonds.SameColor())
}

func TestCardsFromString(t *testing.T) {
	cards := CardsFromString("9 of hearts, J of clubs,A of spades")
	assert.Equal(t, 3, len(cards))
	assert.Equal(t, Card{Rank: Jack, Suit: Clubs}, *cards[1])

	assert.Panics(t, func() {
		CardsFromString("bogus")
	})
}
