package mux

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bigtwo-server/internal/jwt"
)

func Test_postSession(t *testing.T) {
	m := testMux("")
	m.playerCreateDelay = time.Second * -1

	ts := httptest.NewServer(m)
	defer ts.Close()

	var errObj errorResponse
	assertPost(t, ts, "/session", sessionPayload{DisplayName: "&"}, &errObj, 400)
	assert.Equal(t, "display name must only contain letters, numbers, and spaces, and be 40 characters or less", errObj.Message)

	var obj sessionResponse
	assertPost(t, ts, "/session", sessionPayload{DisplayName: "Tommy"}, &obj, 201)
	assert.Greater(t, obj.Player.ID, int64(0))
	assert.Equal(t, "Tommy", obj.Player.DisplayName)

	id, err := jwt.ValidUserID(obj.JWT)
	assert.NoError(t, err)
	assert.Equal(t, obj.Player.ID, id)

	// an empty display name gets a random one
	obj = sessionResponse{}
	assertPost(t, ts, "/session", "{}", &obj, 201)
	assert.NotEmpty(t, obj.Player.DisplayName)

	m.playerCreateDelay = time.Hour
	errObj = errorResponse{}
	assertPost(t, ts, "/session", sessionPayload{DisplayName: "Tommy"}, &errObj, 400)
	assert.Equal(t, "please wait before creating another player", errObj.Message)
}
