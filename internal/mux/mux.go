// Package mux provides the HTTP interface for the euchre server.
package mux

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"euchre-server/internal/config"
	"euchre-server/internal/jwt"
	"euchre-server/pkg/model"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxPlayerKey ctxKey = iota
	ctxSessionKey
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config    muxConfig
	version   string
	recaptcha recaptcha
	games     *gameStore

	// store for testing purposes
	authRouter *gmux.Router
}

type muxConfig struct {
	// playerCreateDelay is the minimum duration between two player create events from a single remote address
	playerCreateDelay time.Duration
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		games:   newGameStore(),
		config: muxConfig{
			playerCreateDelay: time.Second * time.Duration(config.Instance().PlayerCreateDelay),
		},
		recaptcha: newRecaptcha(),
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/player").Handler(this.postPlayer())
		r.Methods(http.MethodPost).Path("/player/auth").Handler(this.postPlayerAuth())
		r.Methods(http.MethodGet).Path("/player/auth/{jwt:.*}").Handler(this.getPlayerAuthJWT())
	}

	// requires bearer authorization
	{
		r := this.authRouter

		r.Methods(http.MethodPost).Path("/player/{id:[0-9]+}").Handler(this.postPlayerID())
		r.Methods(http.MethodGet).Path("/player/{id:[0-9]+}/game").Handler(this.getPlayerIDGame())

		r.Methods(http.MethodPost).Path("/game").Handler(this.postGame())

		gr := r.PathPrefix("/game/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		gr.Use(this.gameMiddleware)

		gr.Methods(http.MethodGet).Path("").Handler(this.getGameUUID())
		gr.Methods(http.MethodGet).Path("/log").Handler(this.getGameUUIDLog())
		gr.Methods(http.MethodGet).Path("/remaining-cards").Handler(this.getGameUUIDRemainingCards())
		gr.Methods(http.MethodPost).Path("/deal").Handler(this.postGameUUIDDeal())
		gr.Methods(http.MethodPost).Path("/bid").Handler(this.postGameUUIDBid())
		gr.Methods(http.MethodPost).Path("/discard").Handler(this.postGameUUIDDiscard())
		gr.Methods(http.MethodPost).Path("/play").Handler(this.postGameUUIDPlay())
		gr.Methods(http.MethodPost).Path("/step").Handler(this.postGameUUIDStep())
		gr.Methods(http.MethodPost).Path("/reset").Handler(this.postGameUUIDReset())
		gr.Methods(http.MethodDelete).Path("").Handler(this.deleteGameUUID())
	}

	return this
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		id, err := jwt.ValidUserID(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		player, err := model.GetPlayerByID(r.Context(), id)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxPlayerKey, player)
		w.Header().Set("EuchreServer-UserID", strconv.FormatInt(player.ID, 10))
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// gameMiddleware requires authMiddleware to execute first. A player may only
// see their own game sessions.
func (m *Mux) gameMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*model.Player)

		sess, ok := m.games.get(gmux.Vars(r)["uuid"])
		if !ok || sess.playerID != player.ID {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxSessionKey, sess)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
