package mux

import (
	"sync"
	"time"

	"euchre-server/pkg/playable"
	"euchre-server/pkg/playable/euchre"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// sessions untouched for this long are evicted by the sweeper
const sessionIdleTimeout = time.Hour * 24

const sessionSweepInterval = time.Hour

// session is a single player's game of euchre. Handlers must hold mu while
// touching the game.
type session struct {
	UUID     string
	playerID int64
	game     *euchre.Game

	// lastActive is guarded by the store's lock, not the session's
	lastActive time.Time

	mu   sync.Mutex
	logs []*playable.LogMessage

	// resultRecorded guards against writing the game result twice
	resultRecorded bool
}

// drainLogs moves pending game log messages into the session's log history.
// Callers must hold mu.
func (s *session) drainLogs() {
	for {
		select {
		case messages := <-s.game.LogChan():
			s.logs = append(s.logs, messages...)
		default:
			return
		}
	}
}

// gameStore keeps the active game sessions in memory
type gameStore struct {
	mu    sync.Mutex
	games map[string]*session
}

func newGameStore() *gameStore {
	gs := &gameStore{
		games: make(map[string]*session),
	}

	go gs.sweep()
	return gs
}

func (gs *gameStore) create(playerID int64, playerName string, options euchre.Options) *session {
	sess := &session{
		UUID:     uuid.New().String(),
		playerID: playerID,
		game: euchre.NewGame(
			logrus.WithFields(logrus.Fields{"game": "euchre", "playerID": playerID}),
			playerName,
			options,
		),
		lastActive: time.Now(),
	}

	gs.mu.Lock()
	gs.games[sess.UUID] = sess
	gs.mu.Unlock()

	return sess
}

func (gs *gameStore) get(uuid string) (*session, bool) {
	gs.mu.Lock()
	sess, ok := gs.games[uuid]
	if ok {
		sess.lastActive = time.Now()
	}
	gs.mu.Unlock()

	return sess, ok
}

// sweep periodically drops sessions whose player walked away
func (gs *gameStore) sweep() {
	ticker := time.NewTicker(sessionSweepInterval)
	for range ticker.C {
		if n := gs.evictIdle(sessionIdleTimeout); n > 0 {
			logrus.WithField("sessions", n).Info("evicted idle game sessions")
		}
	}
}

// evictIdle removes sessions idle longer than maxAge and returns the count
func (gs *gameStore) evictIdle(maxAge time.Duration) int {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	evicted := 0
	for uuid, sess := range gs.games {
		if time.Since(sess.lastActive) > maxAge {
			delete(gs.games, uuid)
			evicted++
		}
	}

	return evicted
}

func (gs *gameStore) remove(uuid string) {
	gs.mu.Lock()
	delete(gs.games, uuid)
	gs.mu.Unlock()
}
