package mux

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"bigtwo-server/pkg/bigtwo"
	"bigtwo-server/pkg/bot"
	"bigtwo-server/pkg/match"

	gmux "github.com/gorilla/mux"
)

const defaultReportRows = 25
const maxReportRows = 100

var wordChar = regexp.MustCompile(`\w`)

type postRoomPayload struct {
	Name     string `json:"name"`
	Passcode string `json:"passcode"`
}

func (m *Mux) postRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rp postRoomPayload
		if !decodeRequest(w, r, &rp) {
			return
		}

		if !wordChar.MatchString(rp.Name) || len(rp.Name) < 3 || len(rp.Name) > 40 {
			writeJSONError(w, http.StatusBadRequest, errors.New("name must be 3-40 characters"))
			return
		}

		player := r.Context().Value(ctxPlayerKey).(*match.Player)
		rm, err := player.CreateRoom(r.Context(), rp.Name, rp.Passcode)
		if err != nil {
			var ue match.UserError
			if errors.As(err, &ue) {
				writeJSONError(w, http.StatusBadRequest, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, rm)
	}
}

type getRoomResponse struct {
	*match.Room
	Seats []*match.Seat `json:"seats"`
}

func (m *Mux) getRoomUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rm := r.Context().Value(ctxRoomKey).(*match.Room)
		seats, err := rm.GetSeats(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, getRoomResponse{
			Room:  rm,
			Seats: seats,
		})
	})
}

func (m *Mux) getRoomInviteCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm, err := match.GetRoomByInviteCode(r.Context(), gmux.Vars(r)["code"])
		if err != nil {
			if err == match.ErrRoomNotFound {
				writeJSONError(w, http.StatusNotFound, nil)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, rm)
	}
}

type postSeatPayload struct {
	Passcode string `json:"passcode"`
	// Seat is the desired seat index; -1 picks the first open seat
	Seat *int `json:"seat"`
}

func (m *Mux) postRoomUUIDSeat() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sp postSeatPayload
		if !decodeRequest(w, r, &sp) {
			return
		}

		rm := r.Context().Value(ctxRoomKey).(*match.Room)
		player := r.Context().Value(ctxPlayerKey).(*match.Player)

		if err := rm.VerifyPasscode(sp.Passcode); err != nil {
			writeJSONError(w, http.StatusForbidden, err)
			return
		}

		seat := -1
		if sp.Seat != nil {
			seat = *sp.Seat
			if seat < 0 || seat >= bigtwo.NumSeats {
				writeJSONError(w, http.StatusBadRequest, errors.New("seat must be 0 through 3"))
				return
			}
		}

		record, err := rm.Join(r.Context(), player, seat)
		if err != nil {
			var ue match.UserError
			if errors.As(err, &ue) {
				writeJSONError(w, http.StatusBadRequest, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, record)
	})
}

type postBotPayload struct {
	Seat int    `json:"seat"`
	Tier string `json:"tier"`
}

func (m *Mux) postRoomUUIDBot() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var bp postBotPayload
		if !decodeRequest(w, r, &bp) {
			return
		}

		rm := r.Context().Value(ctxRoomKey).(*match.Room)
		player := r.Context().Value(ctxPlayerKey).(*match.Player)

		if player.ID != rm.HostID {
			writeJSONError(w, http.StatusForbidden, errors.New("only the host can add a bot"))
			return
		}

		if bp.Seat < 0 || bp.Seat >= bigtwo.NumSeats {
			writeJSONError(w, http.StatusBadRequest, errors.New("seat must be 0 through 3"))
			return
		}

		if bp.Tier != bot.TierCasual && bp.Tier != bot.TierShark {
			writeJSONError(w, http.StatusBadRequest, errors.New("tier must be casual or shark"))
			return
		}

		record, err := rm.SeatBot(r.Context(), bp.Seat, bp.Tier)
		if err != nil {
			var ue match.UserError
			if errors.As(err, &ue) {
				writeJSONError(w, http.StatusBadRequest, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, record)
	})
}

func (m *Mux) getRoomUUIDReport() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows := defaultReportRows
		if rowsStr := r.FormValue("rows"); rowsStr != "" {
			val, err := strconv.Atoi(rowsStr)
			if err != nil || val <= 0 || val > maxReportRows {
				writeJSONError(w, http.StatusBadRequest, errors.New("rows must be 1-100"))
				return
			}

			rows = val
		}

		rm := r.Context().Value(ctxRoomKey).(*match.Room)
		reports, err := match.GetReports(r.Context(), rm.UUID, rows)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, reports)
	})
}
