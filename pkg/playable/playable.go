// Package playable provides the shared plumbing for games hosted by the server.
package playable

import (
	"fmt"
	"time"

	"euchre-server/pkg/deck"

	"github.com/google/uuid"
)

// Playable is a game that can be hosted by the server
type Playable interface {
	// Name returns the name of the game
	Name() string

	// LogChan returns a channel the game sends log messages to
	LogChan() <-chan []*LogMessage
}

// LogMessage is the format a game sends log messages in.
// If Seats is empty, the message is a general statement about the game.
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Seats   []int        `json:"seats"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

// SimpleLogMessage returns a new LogMessage
// Pass a seat < 0 for a general statement.
func SimpleLogMessage(seat int, card *deck.Card, format string, a ...interface{}) *LogMessage {
	var seats []int
	if seat >= 0 {
		seats = []int{seat}
	}

	var cards []*deck.Card
	if card != nil {
		cards = []*deck.Card{card}
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Seats:   seats,
		Cards:   cards,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// SimpleLogMessageSlice returns a single log message in a slice
func SimpleLogMessageSlice(seat int, card *deck.Card, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(seat, card, format, a...)}
}
