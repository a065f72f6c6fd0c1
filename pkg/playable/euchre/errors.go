package euchre

import "errors"

// ErrGameAlreadyStarted is an error when StartGame() is called twice
var ErrGameAlreadyStarted = errors.New("game has already started")

// ErrGameNotStarted is an error when an action is attempted before the first dealer is determined
var ErrGameNotStarted = errors.New("game has not started")

// ErrGameOver is an error when an action is attempted after a team reached the winning score
var ErrGameOver = errors.New("game is over")

// ErrNoHandDealt is an error when an action requires a dealt hand
var ErrNoHandDealt = errors.New("no hand has been dealt")

// ErrHandInProgress is an error when a new hand is dealt before the current one finishes
var ErrHandInProgress = errors.New("a hand is already in progress")

// ErrNotPlayersTurn is returned when an operation is invoked for a player who is not the active player
var ErrNotPlayersTurn = errors.New("not player's turn")

// ErrCardNotInHand is returned when a referenced card is not held by the acting player
var ErrCardNotInHand = errors.New("card is not in player's hand")

// ErrMustFollowSuit is returned when a play violates the follow-suit rule
var ErrMustFollowSuit = errors.New("player must follow the lead suit")

// ErrDealerMustCall enforces the stuck-dealer rule: the dealer cannot pass
// in the second bidding round
var ErrDealerMustCall = errors.New("dealer must call a suit in the second bidding round")

// ErrSuitTurnedDown is returned when a player calls the suit that was turned down
var ErrSuitTurnedDown = errors.New("cannot call the turned-down suit")

// ErrBiddingComplete is an error when a bid is attempted after trump was determined
var ErrBiddingComplete = errors.New("bidding is complete")

// ErrBiddingNotComplete is an error when trick play is attempted before trump was determined
var ErrBiddingNotComplete = errors.New("bidding is not complete")

// ErrAwaitingDiscard is an error when trick play is attempted before the dealer discarded
var ErrAwaitingDiscard = errors.New("waiting on the dealer to discard")

// ErrNotAwaitingDiscard is an error when a discard is attempted and none is owed
var ErrNotAwaitingDiscard = errors.New("dealer does not owe a discard")

// ErrRoundIsOver is an error when cards beyond the round are played
var ErrRoundIsOver = errors.New("the round is over")

// ErrRoundNotOver is an error when the next hand is dealt mid-round
var ErrRoundNotOver = errors.New("the round is not over")

// ErrNotABot is returned when a bot-only query names the human seat
var ErrNotABot = errors.New("player is not a bot")
