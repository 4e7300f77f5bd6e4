package mux

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"bigtwo-server/pkg/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_postRoom(t *testing.T) {
	m := testMux("")
	ts := httptest.NewServer(m)
	defer ts.Close()

	_, token := player(t)

	var errObj errorResponse
	assertPost(t, ts, "/room", postRoomPayload{Name: "ab"}, &errObj, 400, token)
	assert.Equal(t, "name must be 3-40 characters", errObj.Message)

	var rm match.Room
	assertPost(t, ts, "/room", postRoomPayload{Name: "Friday Night"}, &rm, 201, token)
	assert.NotEmpty(t, rm.UUID)
	assert.NotEmpty(t, rm.InviteCode)
	assert.Equal(t, "Friday Night", rm.Name)

	// the host is already seated
	var roomObj getRoomResponse
	assertGet(t, ts, "/room/"+rm.UUID, &roomObj, 200, token)
	require.Len(t, roomObj.Seats, 1)
	assert.Equal(t, 0, roomObj.Seats[0].Seat)

	var byCode match.Room
	assertGet(t, ts, "/room/invite/"+rm.InviteCode, &byCode, 200, token)
	assert.Equal(t, rm.UUID, byCode.UUID)

	assertGet(t, ts, "/room/invite/zzzzzz", &errObj, 404, token)
}

func Test_postRoomUUIDSeat(t *testing.T) {
	m := testMux("")
	ts := httptest.NewServer(m)
	defer ts.Close()

	_, hostToken := player(t)

	var rm match.Room
	assertPost(t, ts, "/room", postRoomPayload{Name: "Guarded", Passcode: "sesame"}, &rm, 201, hostToken)

	_, token := player(t)

	var errObj errorResponse
	assertPost(t, ts, "/room/"+rm.UUID+"/seat", postSeatPayload{Passcode: "wrong"}, &errObj, 403, token)

	seat := 5
	assertPost(t, ts, "/room/"+rm.UUID+"/seat", postSeatPayload{Passcode: "sesame", Seat: &seat}, &errObj, 400, token)
	assert.Equal(t, "seat must be 0 through 3", errObj.Message)

	// no seat specified takes the first open seat
	var record match.Seat
	assertPost(t, ts, "/room/"+rm.UUID+"/seat", postSeatPayload{Passcode: "sesame"}, &record, 201, token)
	assert.Equal(t, 1, record.Seat)

	// the seat is taken
	_, token2 := player(t)
	seat = 1
	assertPost(t, ts, "/room/"+rm.UUID+"/seat", postSeatPayload{Passcode: "sesame", Seat: &seat}, &errObj, 400, token2)
}

func Test_postRoomUUIDBot(t *testing.T) {
	m := testMux("")
	ts := httptest.NewServer(m)
	defer ts.Close()

	_, hostToken := player(t)

	var rm match.Room
	assertPost(t, ts, "/room", postRoomPayload{Name: "Bot Pit"}, &rm, 201, hostToken)

	path := fmt.Sprintf("/room/%s/bot", rm.UUID)

	_, token := player(t)
	var errObj errorResponse
	assertPost(t, ts, path, postBotPayload{Seat: 1, Tier: "shark"}, &errObj, 403, token)
	assert.Equal(t, "only the host can add a bot", errObj.Message)

	assertPost(t, ts, path, postBotPayload{Seat: 1, Tier: "grandmaster"}, &errObj, 400, hostToken)
	assert.Equal(t, "tier must be casual or shark", errObj.Message)

	var record match.Seat
	assertPost(t, ts, path, postBotPayload{Seat: 1, Tier: "shark"}, &record, 201, hostToken)
	assert.True(t, record.IsBot)
	assert.Equal(t, "shark", record.BotTier)

	// seat already occupied
	assertPost(t, ts, path, postBotPayload{Seat: 1, Tier: "casual"}, &errObj, 400, hostToken)
}

func Test_getRoomUUIDReport(t *testing.T) {
	m := testMux("")
	ts := httptest.NewServer(m)
	defer ts.Close()

	_, hostToken := player(t)

	var rm match.Room
	assertPost(t, ts, "/room", postRoomPayload{Name: "History"}, &rm, 201, hostToken)

	var reports []*match.Report
	assertGet(t, ts, "/room/"+rm.UUID+"/report", &reports, 200, hostToken)
	assert.Len(t, reports, 0)

	var errObj errorResponse
	assertGet(t, ts, "/room/"+rm.UUID+"/report?rows=0", &errObj, 400, hostToken)
	assert.Equal(t, "rows must be 1-100", errObj.Message)
}
