package mux

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	"bigtwo-server/internal/jwt"
	"bigtwo-server/pkg/match"
)

type sessionPayload struct {
	DisplayName string `json:"displayName"`
}

type sessionResponse struct {
	Player *match.Player `json:"player"`
	JWT    string        `json:"jwt"`
}

var validDisplayNameRx = regexp.MustCompile(`^[\p{L}\p{N} ]{0,40}\z`)

// postSession creates a guest player and returns a signed session token.
// Guests authenticate every later request with that token only.
func (m *Mux) postSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sp sessionPayload
		if !decodeRequest(w, r, &sp) {
			return
		}

		if !validDisplayNameRx.MatchString(sp.DisplayName) {
			writeJSONError(w, http.StatusBadRequest, errors.New("display name must only contain letters, numbers, and spaces, and be 40 characters or less"))
			return
		}

		addr := remoteAddr(r)
		at, err := match.LastPlayerCreatedAt(r.Context(), addr)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		if time.Since(at) < m.playerCreateDelay {
			writeJSONError(w, http.StatusBadRequest, errors.New("please wait before creating another player"))
			return
		}

		player, err := match.CreatePlayer(r.Context(), sp.DisplayName, addr)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		signedJWT, err := jwt.Sign(player.ID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, sessionResponse{
			Player: player,
			JWT:    signedJWT,
		})
	}
}
