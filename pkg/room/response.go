package room

import (
	"bigtwo-server/pkg/dispatch"
	"bigtwo-server/pkg/match"
)

type clientStateSeat struct {
	*match.Seat
	IsConnected bool `json:"isConnected"`
}

// newErrorResponse carries the error kind in Value so clients can branch on
// it without parsing the human-readable message
func newErrorResponse(ctx string, err error) *Response {
	kind := dispatch.ErrorKind(err)
	if _, ok := err.(match.UserError); ok {
		kind = "UserError"
	}

	return &Response{
		Key:     "error",
		Value:   kind,
		Data:    err.Error(),
		Context: ctx,
	}
}
