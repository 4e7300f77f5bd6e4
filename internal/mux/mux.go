package mux

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bigtwo-server/internal/config"
	"bigtwo-server/internal/jwt"
	"bigtwo-server/pkg/match"
	"bigtwo-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxPlayerKey ctxKey = iota
	ctxRoomKey
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	store   match.Store
	pitBoss *room.PitBoss

	// playerCreateDelay is the minimum duration between two guest sign-ups
	// from a single remote address
	playerCreateDelay time.Duration

	// stored for testing purposes
	authRouter *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	store := match.NewPostgresStore()
	pitBoss := room.NewPitBoss(store)
	pitBoss.StartShift()

	return newMux(version, store, pitBoss)
}

func newMux(version string, store match.Store, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:            gmux.NewRouter(),
		version:           version,
		store:             store,
		pitBoss:           pitBoss,
		playerCreateDelay: time.Second * time.Duration(config.Instance().PlayerCreateDelay),
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/session").Handler(this.postSession())
	}

	// requires bearer authorization
	{
		r := this.authRouter

		r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())
		r.Methods(http.MethodGet).Path("/room/invite/{code}").Handler(this.getRoomInviteCode())

		rr := r.PathPrefix("/room/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		rr.Use(this.roomMiddleware)

		rr.Methods(http.MethodGet).Path("").Handler(this.getRoomUUID())
		rr.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomUUIDWS())
		rr.Methods(http.MethodPost).Path("/seat").Handler(this.postRoomUUIDSeat())
		rr.Methods(http.MethodPost).Path("/bot").Handler(this.postRoomUUIDBot())
		rr.Methods(http.MethodGet).Path("/report").Handler(this.getRoomUUIDReport())
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

		player, err := match.GetPlayerByID(r.Context(), id)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxPlayerKey, player)
		w.Header().Set("BigTwo-UserID", strconv.FormatInt(player.ID, 10))
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func (m *Mux) roomMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rm, err := match.GetRoomByUUID(r.Context(), gmux.Vars(r)["uuid"])
		if err != nil {
			if err == match.ErrRoomNotFound {
				writeJSONError(w, http.StatusNotFound, nil)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxRoomKey, rm)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
