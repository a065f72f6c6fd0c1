// Package euchre implements a four-seat game of euchre with one human seat
// and three bot seats.
package euchre

import (
	"euchre-server/pkg/deck"
	"euchre-server/pkg/playable"

	"github.com/sirupsen/logrus"
)

const (
	numPlayers     = 4
	cardsPerHand   = 5
	kittySize      = 4
	tricksPerRound = 5
)

const logChanSize = 256

// Game is a game of euchre
type Game struct {
	options Options
	logger  logrus.FieldLogger

	players [4]*Player

	// dealer is -1 until StartGame determines the first dealer
	dealer int

	deck  *deck.Deck
	round *round

	score       [2]int
	handsPlayed int

	// winner is set once a team reaches the win threshold
	winner Team

	logChan chan []*playable.LogMessage
}

var _ playable.Playable = (*Game)(nil)

// NewGame returns a new game of euchre. The human sits at seat 0 and
// partners with the bot at seat 2.
func NewGame(logger logrus.FieldLogger, playerName string, options Options) *Game {
	if playerName == "" {
		playerName = "Player"
	}

	if options.WinThreshold <= 0 {
		options.WinThreshold = DefaultOptions().WinThreshold
	}

	names := [4]string{playerName, "Opponent 1", "Partner", "Opponent 2"}

	g := &Game{
		options: options,
		logger:  logger,
		dealer:  -1,
		deck:    deck.New(),
		logChan: make(chan []*playable.LogMessage, logChanSize),
	}

	for seat, name := range names {
		g.players[seat] = &Player{
			Name:    name,
			Seat:    seat,
			IsHuman: seat == 0,
		}
	}

	return g
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "euchre"
}

// LogChan returns a channel the game sends log messages to
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

func (g *Game) sendLogMessages(messages ...*playable.LogMessage) {
	select {
	case g.logChan <- messages:
	default:
		g.logger.Warn("log channel is full; dropping messages")
	}
}

// shuffleSeed returns the seed for the next shuffle. A configured seed is
// varied per hand so consecutive deals differ but stay reproducible.
func (g *Game) shuffleSeed() int64 {
	if g.options.Seed == 0 {
		return 0
	}

	return g.options.Seed + int64(g.handsPlayed)
}

// StartGame determines the first dealer by a deal-off: each seat draws one
// card and the highest rank deals first. Tied seats re-draw until one seat
// holds the highest card alone.
func (g *Game) StartGame() error {
	if g.dealer >= 0 {
		return ErrGameAlreadyStarted
	}

	g.deck.Shuffle(g.shuffleSeed())

	var reshuffles int64
	contenders := []int{0, 1, 2, 3}
	for len(contenders) > 1 {
		if !g.deck.CanDraw(len(contenders)) {
			// vary a fixed seed so the re-deal draws fresh cards
			seed := g.shuffleSeed()
			if seed != 0 {
				reshuffles++
				seed += reshuffles
			}

			g.deck.Shuffle(seed)
		}

		high := -1
		var tied []int
		for _, seat := range contenders {
			card, err := g.deck.Draw()
			if err != nil {
				return err
			}

			g.sendLogMessages(playable.SimpleLogMessage(seat, card, "{} drew the %s", card))

			if card.Rank > high {
				high = card.Rank
				tied = []int{seat}
			} else if card.Rank == high {
				tied = append(tied, seat)
			}
		}

		contenders = tied
	}

	g.dealer = contenders[0]
	g.sendLogMessages(playable.SimpleLogMessage(g.dealer, nil, "{} deals first"))
	g.logger.WithField("dealer", g.dealer).Info("game started")

	return nil
}

// DealHand deals the first hand of the game
func (g *Game) DealHand() error {
	if g.dealer < 0 {
		return ErrGameNotStarted
	}

	if g.round != nil && !g.round.isOver() {
		return ErrHandInProgress
	}

	if g.winner != NoTeam {
		return ErrGameOver
	}

	return g.deal()
}

// DealNextHand rotates the deal clockwise and deals the next hand. The
// current round must be scored first.
func (g *Game) DealNextHand() error {
	if g.dealer < 0 {
		return ErrGameNotStarted
	}

	if g.winner != NoTeam {
		return ErrGameOver
	}

	if g.round == nil {
		return ErrNoHandDealt
	}

	if !g.round.isOver() {
		return ErrRoundNotOver
	}

	g.dealer = leftOf(g.dealer)
	return g.deal()
}

// deal shuffles and deals five cards to each seat, one at a time starting
// left of the dealer. The four undealt cards form the kitty and the top one
// is turned up for the first bidding round.
func (g *Game) deal() error {
	g.deck.Shuffle(g.shuffleSeed())

	for _, p := range g.players {
		p.hand = nil
	}

	seat := leftOf(g.dealer)
	for i := 0; i < numPlayers*cardsPerHand; i++ {
		card, err := g.deck.Draw()
		if err != nil {
			return err
		}

		g.players[seat].hand.AddCard(card)
		seat = leftOf(seat)
	}

	r := newRound(g.dealer)
	for i := 0; i < kittySize; i++ {
		card, err := g.deck.Draw()
		if err != nil {
			return err
		}

		r.kitty.AddCard(card)
	}

	r.upCard = r.kitty[0]
	g.round = r

	g.sendLogMessages(playable.SimpleLogMessage(g.dealer, r.upCard, "{} dealt; the %s is turned up", r.upCard))
	g.logger.WithFields(logrus.Fields{
		"dealer": g.dealer,
		"upCard": r.upCard.String(),
	}).Info("hand dealt")

	return nil
}

// finishRound scores the round and applies the points to the game score
func (g *Game) finishRound() *RoundResult {
	r := g.round
	result := scoreRound(teamForSeat(r.caller), r.goingAlone, r.tricksWon)
	r.result = result
	g.handsPlayed++

	g.score[Team1.index()] += result.Team1Points
	g.score[Team2.index()] += result.Team2Points

	winning := result.CallingTeam
	if result.Euchred {
		winning = result.CallingTeam.Opposing()
	}

	switch {
	case result.Euchred:
		g.sendLogMessages(playable.SimpleLogMessage(-1, nil, "%s was euchred; %s scores %d", result.CallingTeam, winning, pointsEuchre))
	case result.March && result.GoingAlone:
		g.sendLogMessages(playable.SimpleLogMessage(-1, nil, "%s marched alone for %d", winning, pointsLonerMarch))
	case result.March:
		g.sendLogMessages(playable.SimpleLogMessage(-1, nil, "%s marched for %d", winning, pointsMarch))
	default:
		g.sendLogMessages(playable.SimpleLogMessage(-1, nil, "%s made their bid", winning))
	}

	for _, team := range []Team{Team1, Team2} {
		if g.score[team.index()] >= g.options.WinThreshold {
			g.winner = team
			result.WinningTeam = team
			g.sendLogMessages(playable.SimpleLogMessage(-1, nil, "%s wins the game", team))
			g.logger.WithFields(logrus.Fields{
				"winner": team.String(),
				"hands":  g.handsPlayed,
			}).Info("game over")
		}
	}

	return result
}

// RemainingCards returns the undealt cards for the current hand. After a
// dealer pickup the face-down discard is among them.
func (g *Game) RemainingCards() (deck.Hand, error) {
	if g.round == nil {
		return nil, ErrNoHandDealt
	}

	return g.round.kitty.Clone(), nil
}

// Reset returns the game to its pre-start state, keeping the seats and
// options. A new deal-off is required before the next hand.
func (g *Game) Reset() {
	g.dealer = -1
	g.deck = deck.New()
	g.round = nil
	g.score = [2]int{}
	g.handsPlayed = 0
	g.winner = NoTeam

	for _, p := range g.players {
		p.hand = nil
	}

	g.sendLogMessages(playable.SimpleLogMessage(-1, nil, "the game was reset"))
}

// Dealer returns the current dealer's seat, or -1 before the game starts
func (g *Game) Dealer() int {
	return g.dealer
}

// Scores returns the current game score by team
func (g *Game) Scores() map[string]int {
	return map[string]int{
		Team1.String(): g.score[Team1.index()],
		Team2.String(): g.score[Team2.index()],
	}
}

// Winner returns the winning team, or NoTeam while the game is in progress
func (g *Game) Winner() Team {
	return g.winner
}

// HandsPlayed returns the number of scored hands
func (g *Game) HandsPlayed() int {
	return g.handsPlayed
}

// Player returns the player at the seat
func (g *Game) Player(seat int) *Player {
	return g.players[seat]
}
