package mux

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"euchre-server/internal/jwt"
	"euchre-server/internal/util"
	"euchre-server/pkg/model"

	"github.com/stretchr/testify/assert"
)

func Test_postPlayer(t *testing.T) {
	m := NewMux("")
	m.config.playerCreateDelay = time.Second * -1

	ts := httptest.NewServer(m)
	defer ts.Close()

	var obj errorResponse
	assertPost(t, ts, "/player", "{}", &obj, 400)
	assert.Equal(t, "missing or invalid email address", obj.Message)

	obj = errorResponse{}
	assertPost(t, ts, "/player", playerPayload{
		DisplayName: "&",
	}, &obj, 400)
	assert.Equal(t, "display name must only contain letters, numbers, and spaces, and be 40 characters or less", obj.Message)

	email := util.RandomEmail()
	obj = errorResponse{}
	assertPost(t, ts, "/player", playerPayload{
		Email:    email,
		Password: "",
	}, &obj, 400)
	assert.Equal(t, "password must be 6 or more characters", obj.Message)

	var pObj playerWithEmail
	assertPost(t, ts, "/player", playerPayload{
		Email:       email,
		Password:    "123456",
		DisplayName: "Tommy",
	}, &pObj, 201)
	assert.Greater(t, pObj.ID, int64(0))
	assert.Equal(t, email, pObj.Email)
	assert.Equal(t, "Tommy", pObj.DisplayName)

	obj = errorResponse{}
	assertPost(t, ts, "/player", playerPayload{
		Email:    email,
		Password: "123456",
	}, &obj, 400)
	assert.Equal(t, "email address is already taken", obj.Message)

	m.config.playerCreateDelay = time.Hour
	obj = errorResponse{}
	assertPost(t, ts, "/player", playerPayload{
		Email:    util.RandomEmail(),
		Password: "123456",
	}, &obj, 400)
	assert.Equal(t, "please wait before creating another player", obj.Message)
}

func Test_postPlayerAuth(t *testing.T) {
	setupJWT(t)

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	email := util.RandomEmail()
	pw := "my-password"

	created, err := model.CreatePlayer(cbg, email, "Auth Tester", pw, "")
	if err != nil {
		t.Fatal(err)
	}

	var obj errorResponse
	assertPost(t, ts, "/player/auth", playerPayload{
		Email:    email,
		Password: "wrong-password",
	}, &obj, 401)

	var resp postPlayerAuthResponse
	assertPost(t, ts, "/player/auth", playerPayload{
		Email:    email,
		Password: pw,
	}, &resp, 200)

	id, err := jwt.ValidUserID(resp.JWT)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, id)
	assert.Equal(t, email, resp.Player.Email)

	var playerObj playerWithEmail
	assertGet(t, ts, fmt.Sprintf("/player/auth/%s", resp.JWT), &playerObj, 200)
	assert.Equal(t, email, playerObj.Email)
}

func Test_getPlayerAuthJWT_badToken(t *testing.T) {
	setupJWT(t)

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var errObj errorResponse
	assertGet(t, ts, "/player/auth/bad", &errObj, 401)
}

func Test_postPlayerID(t *testing.T) {
	setupJWT(t)

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	p, signedJWT := player(t)
	other, _ := player(t)

	// players may only update themselves
	var errObj errorResponse
	assertPost(t, ts, fmt.Sprintf("/player/%d", other.ID), postPlayerIDPayload{DisplayName: "Nope"}, &errObj, 403, signedJWT)

	var resp map[string]string
	assertPost(t, ts, fmt.Sprintf("/player/%d", p.ID), postPlayerIDPayload{DisplayName: "Renamed"}, &resp, 200, signedJWT)
	assert.Equal(t, "OK", resp["status"])

	updated, err := model.GetPlayerByID(cbg, p.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.DisplayName)
}
