package room

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action string   `json:"action"`
	Cards  []string `json:"cards"`
	// Context will be passed back on any outgoing message
	Context        string                 `json:"context"`
	AdditionalData map[string]interface{} `json:"additionalData"`
}

// Response is a message sent to one or more connected clients
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data,omitempty"`
	Context string      `json:"context,omitempty"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}
