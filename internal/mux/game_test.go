package mux

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"euchre-server/pkg/deck"
	"euchre-server/pkg/playable"
	"euchre-server/pkg/playable/euchre"

	"github.com/stretchr/testify/assert"
)

func gameState(t *testing.T, ts *httptest.Server, path, signedJWT string) *euchre.PlayerState {
	t.Helper()

	var resp gameResponse
	assertGet(t, ts, path, &resp, 200, signedJWT)
	return resp.State
}

// tryPlay attempts a card and reports whether the server accepted it
func tryPlay(t *testing.T, ts *httptest.Server, path, signedJWT string, card *deck.Card) bool {
	t.Helper()

	b, err := json.Marshal(cardPayload{Card: card.String()})
	if err != nil {
		t.Fatal(err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signedJWT)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

func Test_postGame(t *testing.T) {
	setupJWT(t)

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	_, signedJWT := player(t)

	var created gameResponse
	assertPost(t, ts, "/game", "{}", &created, 201, signedJWT)
	assert.NotEmpty(t, created.UUID)
	assert.Len(t, created.State.Hand, 5)
	assert.Equal(t, 0, created.State.Player.Seat)
	assert.NotNil(t, created.State.GameState.Round)
	assert.Equal(t, euchre.NoTeam, created.State.GameState.Winner)

	base := "/game/" + created.UUID

	// cards cross the wire as "<Rank> of <suit>"
	var raw struct {
		State struct {
			Hand []string `json:"hand"`
		} `json:"state"`
	}
	assertGet(t, ts, base, &raw, 200, signedJWT)
	assert.Len(t, raw.State.Hand, 5)
	for _, c := range raw.State.Hand {
		assert.Regexp(t, `^(9|10|J|Q|K|A) of (clubs|diamonds|hearts|spades)$`, c)
	}

	var remaining []*deck.Card
	assertGet(t, ts, base+"/remaining-cards", &remaining, 200, signedJWT)
	assert.Len(t, remaining, 4)

	// a game is only visible to the player who created it
	_, otherJWT := player(t)
	var errObj errorResponse
	assertGet(t, ts, base, &errObj, 404, otherJWT)
}

// Test_gameFlow drives one full hand through the polled step API, standing in
// for the human whenever the game waits on seat 0.
func Test_gameFlow(t *testing.T) {
	setupJWT(t)

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	_, signedJWT := player(t)

	var created gameResponse
	assertPost(t, ts, "/game", "{}", &created, 201, signedJWT)
	base := "/game/" + created.UUID

	var result *euchre.RoundResult
	for i := 0; result == nil; i++ {
		if i > 200 {
			t.Fatal("hand did not finish")
		}

		var step stepResponse
		assertPost(t, ts, base+"/step", "{}", &step, 200, signedJWT)

		if step.Bid != nil {
			if step.Bid.Action != euchre.BidAwaitingPlayer {
				continue
			}

			state := gameState(t, ts, base, signedJWT)
			round := state.GameState.Round

			if round.AwaitingDiscard {
				var resp gameResponse
				assertPost(t, ts, base+"/discard", cardPayload{Card: state.Hand[0].String()}, &resp, 200, signedJWT)
				assert.Len(t, resp.State.Hand, 5)
				continue
			}

			if round.BidRound == 2 && round.Dealer == humanSeat {
				// stuck: call a suit other than the turned-down one
				for _, suit := range deck.Suits {
					if suit != round.UpCard.Suit {
						assertPost(t, ts, base+"/bid", bidPayload{Action: "accept", Suit: string(suit)}, &gameResponse{}, 200, signedJWT)
						break
					}
				}
			} else {
				assertPost(t, ts, base+"/bid", bidPayload{Action: "pass"}, &gameResponse{}, 200, signedJWT)
			}

			continue
		}

		switch step.Play.Action {
		case euchre.ActionAwaitingPlayer:
			assert.Equal(t, humanSeat, step.Play.Seat)
			state := gameState(t, ts, base, signedJWT)

			played := false
			for _, c := range state.Hand {
				if tryPlay(t, ts, base+"/play", signedJWT, c) {
					played = true
					break
				}
			}

			assert.True(t, played, "no legal card was accepted")
		case euchre.ActionTrickCompleted:
			assert.NotNil(t, step.Play.Trick)
			assert.GreaterOrEqual(t, step.Play.Trick.Winner, 0)
		case euchre.ActionRoundCompleted:
			result = step.Play.RoundResult
		}
	}

	assert.Equal(t, 5, result.Team1Tricks+result.Team2Tricks)
	assert.Greater(t, result.Team1Points+result.Team2Points, 0)

	// everything that happened is in the log
	var logs []*playable.LogMessage
	assertGet(t, ts, base+"/log", &logs, 200, signedJWT)
	assert.NotEmpty(t, logs)

	var since []*playable.LogMessage
	assertGet(t, ts, base+"/log?since=1", &since, 200, signedJWT)
	assert.Len(t, since, len(logs)-1)

	// the next hand rotates the deal
	dealerBefore := gameState(t, ts, base, signedJWT).GameState.Dealer

	var dealt gameResponse
	assertPost(t, ts, base+"/deal", "{}", &dealt, 200, signedJWT)
	assert.Len(t, dealt.State.Hand, 5)
	assert.NotEqual(t, dealerBefore, dealt.State.GameState.Round.Dealer)
}

func Test_postGameReset_idempotent(t *testing.T) {
	setupJWT(t)

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	_, signedJWT := player(t)

	var created gameResponse
	assertPost(t, ts, "/game", "{}", &created, 201, signedJWT)
	base := "/game/" + created.UUID

	var first, second gameResponse
	assertPost(t, ts, base+"/reset", "{}", &first, 200, signedJWT)
	assertPost(t, ts, base+"/reset", "{}", &second, 200, signedJWT)

	assert.Nil(t, first.State.GameState.Round)
	assert.Nil(t, second.State.GameState.Round)
	assert.Equal(t, first.State.GameState.Score, second.State.GameState.Score)
	assert.Equal(t, euchre.NoTeam, second.State.GameState.Winner)

	// a fresh hand can be dealt after a reset
	var dealt gameResponse
	assertPost(t, ts, base+"/deal", "{}", &dealt, 200, signedJWT)
	assert.Len(t, dealt.State.Hand, 5)
}

func Test_deleteGame(t *testing.T) {
	setupJWT(t)

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	_, signedJWT := player(t)

	var created gameResponse
	assertPost(t, ts, "/game", "{}", &created, 201, signedJWT)
	base := "/game/" + created.UUID

	req, err := http.NewRequest(http.MethodDelete, ts.URL+base, nil)
	if err != nil {
		t.Fatal(err)
	}

	var resp map[string]string
	assertDo(t, req, &resp, 200, signedJWT)
	assert.Equal(t, "OK", resp["status"])

	var errObj errorResponse
	assertGet(t, ts, base, &errObj, 404, signedJWT)
}
