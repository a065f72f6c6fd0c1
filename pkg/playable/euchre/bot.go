package euchre

import "euchre-server/pkg/deck"

// Strategy weights for the hand-strength evaluation. Trump holdings dominate,
// off-suit aces matter, and voids add a little.
const (
	weightTrump = 0.5
	weightAces  = 0.3
	weightVoids = 0.2
)

// callThresholds is the minimum hand score needed to call trump, indexed by
// seat relative to the dealer (0 = left of dealer, 3 = dealer). Third seat
// needs the strongest hand; the dealer, who picks up the up-card in round
// one, needs the weakest.
var callThresholds = [4]float64{0.60, 0.55, 0.70, 0.45}

// goingAloneThreshold is the hand score at which a bot plays without its
// partner. Scores top out near 0.6, so this needs both bowers plus strong
// support to reach.
const goingAloneThreshold = 0.55

// trumpCardValues scores each non-bower trump rank
var trumpCardValues = map[int]float64{
	deck.Ace:   0.8,
	deck.King:  0.7,
	deck.Queen: 0.6,
	deck.Ten:   0.5,
	deck.Nine:  0.4,
}

// relativeSeat returns the seat's bidding position: 0 for the seat left of
// the dealer through 3 for the dealer
func relativeSeat(seat, dealer int) int {
	return ((seat - dealer - 1) + 4) % 4
}

// evaluateHand scores a hand from 0 to 1 for the candidate trump suit
func evaluateHand(hand deck.Hand, trump deck.Suit) float64 {
	return weightTrump*evaluateTrump(hand, trump) +
		weightAces*evaluateAces(hand, trump) +
		weightVoids*evaluateVoids(hand, trump)
}

// evaluateTrump scores the trump holding. The right bower counts 1.0, the
// left 0.9, and the remaining trump cards fall off from there.
func evaluateTrump(hand deck.Hand, trump deck.Suit) float64 {
	var sum float64
	for _, c := range hand {
		switch {
		case isRightBower(c, trump):
			sum += 1.0
		case isLeftBower(c, trump):
			sum += 0.9
		case c.Suit == trump:
			sum += trumpCardValues[c.Rank]
		}
	}

	return sum / 5
}

// evaluateAces scores the off-suit aces. The ace of the left bower's suit is
// worth slightly less since that suit is one card shorter.
func evaluateAces(hand deck.Hand, trump deck.Suit) float64 {
	var sum float64
	for _, c := range hand {
		if c.Rank != deck.Ace || c.Suit == trump {
			continue
		}

		if c.Suit == trump.SameColor() {
			sum += 0.9
		} else {
			sum += 1.0
		}
	}

	return sum / 3
}

// evaluateVoids rewards short suits. A hand with no trump counts as holding
// all four suits since voids are only useful when you can trump in.
func evaluateVoids(hand deck.Hand, trump deck.Suit) float64 {
	suits := make(map[deck.Suit]bool)
	for _, c := range hand {
		suits[effectiveSuit(c, trump)] = true
	}

	numSuits := len(suits)
	if !suits[trump] {
		numSuits = 4
	}

	return float64(4-numSuits) / 3
}

// decideBid produces a bot's bidding decision. Round one considers the
// up-card suit only; round two scores every candidate suit except the
// turned-down one. The decision is a pure function of the inputs.
func decideBid(hand deck.Hand, seat, dealer int, upCard *deck.Card, bidRound int) *BidDecision {
	threshold := callThresholds[relativeSeat(seat, dealer)]

	if bidRound == 1 {
		trump := upCard.Suit

		evalHand := hand
		if seat == dealer {
			// the dealer will pick up the up-card and shed their worst card
			evalHand = hand.Clone()
			evalHand.AddCard(upCard)
			evalHand.Discard(worstCard(evalHand, trump))
		}

		score := evaluateHand(evalHand, trump)
		if score < threshold {
			return &BidDecision{Decision: DecisionPass}
		}

		return &BidDecision{
			Decision:   DecisionOrderUp,
			Suit:       trump,
			GoingAlone: score >= goingAloneThreshold,
		}
	}

	var bestSuit deck.Suit
	var bestScore float64
	for _, suit := range deck.Suits {
		if suit == upCard.Suit {
			continue
		}

		if score := evaluateHand(hand, suit); score > bestScore {
			bestSuit, bestScore = suit, score
		}
	}

	// stuck dealer: must call the best available suit no matter how weak
	if seat != dealer && bestScore < threshold {
		return &BidDecision{Decision: DecisionPass}
	}

	return &BidDecision{
		Decision:   DecisionCall,
		Suit:       bestSuit,
		GoingAlone: bestScore >= goingAloneThreshold,
	}
}

// worstCard returns the weakest card in the hand given a trump suit,
// preferring to shed low off-suit cards before ever touching trump
func worstCard(hand deck.Hand, trump deck.Suit) *deck.Card {
	var worst *deck.Card
	var worstVal int
	for _, c := range hand {
		val := rankValue(c, trump, effectiveSuit(c, trump))
		if worst == nil || val < worstVal {
			worst, worstVal = c, val
		}
	}

	return worst
}

// chooseCard picks a bot's play for the current trick. When leading, play
// the strongest card. When following: duck if the partner already holds the
// trick, otherwise win as cheaply as possible, otherwise shed the weakest
// legal card.
func chooseCard(seat int, hand deck.Hand, trick *Trick, trump deck.Suit) *deck.Card {
	legal := legalPlays(hand, trick, trump)

	if len(trick.Plays) == 0 {
		var best *deck.Card
		var bestVal int
		for _, c := range legal {
			if val := rankValue(c, trump, effectiveSuit(c, trump)); best == nil || val > bestVal {
				best, bestVal = c, val
			}
		}

		return best
	}

	lead := trick.leadSuit(trump)
	winningSeat, winningVal := trickLeaderSoFar(trick, trump)

	cheapest := func(cards deck.Hand) *deck.Card {
		var card *deck.Card
		var cardVal int
		for _, c := range cards {
			if val := rankValue(c, trump, effectiveSuit(c, trump)); card == nil || val < cardVal {
				card, cardVal = c, val
			}
		}

		return card
	}

	if winningSeat == partnerSeat(seat) {
		return cheapest(legal)
	}

	var winners deck.Hand
	for _, c := range legal {
		if rankValue(c, trump, lead) > winningVal {
			winners = append(winners, c)
		}
	}

	if len(winners) > 0 {
		return cheapest(winners)
	}

	return cheapest(legal)
}

// trickLeaderSoFar returns the seat currently winning the trick and the
// value of their card
func trickLeaderSoFar(trick *Trick, trump deck.Suit) (int, int) {
	lead := trick.leadSuit(trump)

	seat, val := -1, -1
	for _, play := range trick.Plays {
		if v := rankValue(play.Card, trump, lead); v > val {
			seat, val = play.Seat, v
		}
	}

	return seat, val
}
