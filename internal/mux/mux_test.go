package mux

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_authRouter(t *testing.T) {
	m := testMux("")

	m.authRouter.Path("/test").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, "OK")
	})

	ts := httptest.NewServer(m)
	defer ts.Close()

	var errObj errorResponse
	assertGet(t, ts, "/test", &errObj, 401)
	assert.Equal(t, "Unauthorized", errObj.Message)

	p, token := player(t)

	// test using auth header
	var str string
	resp := assertGet(t, ts, "/test", &str, 200, token)
	assert.Equal(t, "OK", str)
	assert.Equal(t, strconv.FormatInt(p.ID, 10), resp.Header.Get("BigTwo-UserID"))

	// test using query parameter
	resp = assertGet(t, ts, "/test?access_token="+url.QueryEscape(token), &str, 200)
	assert.Equal(t, "OK", str)
	assert.Equal(t, strconv.FormatInt(p.ID, 10), resp.Header.Get("BigTwo-UserID"))
}

func Test_roomRouter_notFound(t *testing.T) {
	m := testMux("")
	ts := httptest.NewServer(m)
	defer ts.Close()

	_, token := player(t)

	var errObj errorResponse
	assertGet(t, ts, "/room/00000000-0000-0000-0000-000000000000", &errObj, 404, token)
	assert.Equal(t, "Not Found", errObj.Message)
}
