package mux

import (
	"errors"
	"net/http"
	"strconv"

	"euchre-server/internal/config"
	"euchre-server/pkg/deck"
	"euchre-server/pkg/model"
	"euchre-server/pkg/playable"
	"euchre-server/pkg/playable/euchre"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type gameResponse struct {
	UUID  string              `json:"uuid"`
	State *euchre.PlayerState `json:"state"`
}

// humanSeat is the seat the authenticated player occupies in every session
const humanSeat = 0

func (m *Mux) writeGameResponse(w http.ResponseWriter, statusCode int, sess *session) {
	state, err := sess.game.GetPlayerState(humanSeat)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, statusCode, gameResponse{
		UUID:  sess.UUID,
		State: state,
	})
}

type postGamePayload struct {
	WinThreshold int `json:"winThreshold"`
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postGamePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		options := euchre.DefaultOptions()
		if threshold := config.Instance().Game.WinThreshold; threshold > 0 {
			options.WinThreshold = threshold
		}

		if payload.WinThreshold > 0 {
			options.WinThreshold = payload.WinThreshold
		}

		player := r.Context().Value(ctxPlayerKey).(*model.Player)
		sess := m.games.create(player.ID, player.DisplayName, options)

		sess.mu.Lock()
		defer sess.mu.Unlock()

		if err := sess.game.StartGame(); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		if err := sess.game.DealHand(); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		sess.drainLogs()
		m.writeGameResponse(w, http.StatusCreated, sess)
	}
}

func (m *Mux) getGameUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session)

		sess.mu.Lock()
		defer sess.mu.Unlock()

		sess.drainLogs()
		m.writeGameResponse(w, http.StatusOK, sess)
	}
}

func (m *Mux) postGameUUIDDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session)

		sess.mu.Lock()
		defer sess.mu.Unlock()

		err := sess.game.DealNextHand()
		if errors.Is(err, euchre.ErrNoHandDealt) {
			err = sess.game.DealHand()
		}

		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		sess.drainLogs()
		m.writeGameResponse(w, http.StatusOK, sess)
	}
}

type bidPayload struct {
	Action     string `json:"action"`
	Suit       string `json:"suit"`
	GoingAlone bool   `json:"goingAlone"`
}

func (m *Mux) postGameUUIDBid() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload bidPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		sess := r.Context().Value(ctxSessionKey).(*session)

		sess.mu.Lock()
		defer sess.mu.Unlock()

		var err error
		switch payload.Action {
		case "pass":
			err = sess.game.PassBid(humanSeat)
		case "accept":
			err = sess.game.AcceptTrump(humanSeat, deck.Suit(payload.Suit), payload.GoingAlone)
		default:
			err = errors.New(`action must be "pass" or "accept"`)
		}

		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		sess.drainLogs()
		m.writeGameResponse(w, http.StatusOK, sess)
	}
}

type cardPayload struct {
	Card string `json:"card"`
}

func (m *Mux) postGameUUIDDiscard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cardPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		card, err := deck.CardFromString(payload.Card)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		sess := r.Context().Value(ctxSessionKey).(*session)

		sess.mu.Lock()
		defer sess.mu.Unlock()

		if err := sess.game.DealerDiscard(humanSeat, card); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		sess.drainLogs()
		m.writeGameResponse(w, http.StatusOK, sess)
	}
}

func (m *Mux) postGameUUIDPlay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cardPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		card, err := deck.CardFromString(payload.Card)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		sess := r.Context().Value(ctxSessionKey).(*session)

		sess.mu.Lock()
		defer sess.mu.Unlock()

		if _, err := sess.game.PlayCard(humanSeat, card); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		sess.drainLogs()
		m.writeGameResponse(w, http.StatusOK, sess)
	}
}

type stepResponse struct {
	Bid   *euchre.BidStep     `json:"bid,omitempty"`
	Play  *euchre.TrickStep   `json:"play,omitempty"`
	State *euchre.PlayerState `json:"state"`
}

// postGameUUIDStep advances the game by one bot action. Clients poll this
// endpoint until the game is waiting on the player.
func (m *Mux) postGameUUIDStep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session)

		sess.mu.Lock()
		defer sess.mu.Unlock()

		var resp stepResponse

		bidStep, err := sess.game.BidStep()
		if err == nil {
			resp.Bid = bidStep
		} else if errors.Is(err, euchre.ErrBiddingComplete) {
			trickStep, err := sess.game.PlayTrickStep()
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}

			resp.Play = trickStep
			if trickStep.Action == euchre.ActionRoundCompleted {
				m.recordResultIfOver(r, sess)
			}
		} else {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		state, err := sess.game.GetPlayerState(humanSeat)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		resp.State = state
		sess.drainLogs()
		writeJSON(w, http.StatusOK, resp)
	}
}

// recordResultIfOver persists a game_results row once the game has a winner.
// Callers must hold the session lock.
func (m *Mux) recordResultIfOver(r *http.Request, sess *session) {
	game := sess.game
	if game.Winner() == euchre.NoTeam || sess.resultRecorded {
		return
	}

	scores := game.Scores()
	playerScore := scores[euchre.Team1.String()]
	opponentScore := scores[euchre.Team2.String()]

	if _, err := model.CreateGameResult(r.Context(), sess.playerID, sess.UUID, playerScore, opponentScore, game.HandsPlayed()); err != nil {
		logrus.WithError(err).WithField("game", sess.UUID).Error("could not record game result")
		return
	}

	sess.resultRecorded = true
}

func (m *Mux) postGameUUIDReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session)

		sess.mu.Lock()
		defer sess.mu.Unlock()

		sess.game.Reset()
		sess.resultRecorded = false

		if err := sess.game.StartGame(); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		sess.drainLogs()
		m.writeGameResponse(w, http.StatusOK, sess)
	}
}

func (m *Mux) getGameUUIDLog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session)

		sess.mu.Lock()
		defer sess.mu.Unlock()

		sess.drainLogs()

		logs := sess.logs
		if sinceStr := r.FormValue("since"); sinceStr != "" {
			since, err := strconv.Atoi(sinceStr)
			if err != nil || since < 0 {
				writeJSONError(w, http.StatusBadRequest, errors.New("since must be a non-negative integer"))
				return
			}

			if since < len(logs) {
				logs = logs[since:]
			} else {
				logs = []*playable.LogMessage{}
			}
		}

		writeJSON(w, http.StatusOK, logs)
	}
}

func (m *Mux) getGameUUIDRemainingCards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session)

		sess.mu.Lock()
		defer sess.mu.Unlock()

		cards, err := sess.game.RemainingCards()
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, cards)
	}
}

func (m *Mux) deleteGameUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := r.Context().Value(ctxSessionKey).(*session)
		m.games.remove(sess.UUID)

		writeJSON(w, http.StatusOK, statusOK)
	}
}

// note: players may only see their own history
func (m *Mux) getPlayerIDGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// ParseInt will always succeed due to the route pattern
		playerID, _ := strconv.ParseInt(gmux.Vars(r)["id"], 10, 64)

		player := r.Context().Value(ctxPlayerKey).(*model.Player)
		if player.ID != playerID && !player.IsSiteAdmin {
			writeJSONError(w, http.StatusForbidden, nil)
			return
		}

		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		results, err := model.GetGameResultsByPlayerID(r.Context(), playerID, start, rows)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, results)
	}
}
