package preview

import "encoding/json"

// Message types sent by the page.
const (
	msgHello = "hello"
	msgEvent = "event"
	msgReply = "reply"
)

// Request types sent by the server.
const (
	reqInit       = "init"
	reqSetOption  = "setOption"
	reqResize     = "resize"
	reqGetDataURL = "getDataURL"
	reqDispose    = "dispose"
)

// inbound is any message sent by the page.
type inbound struct {
	Type     string   `json:"type"`
	Elements []string `json:"elements,omitempty"`
	Event    string   `json:"event,omitempty"`
	ID       string   `json:"id,omitempty"`
	Error    string   `json:"error,omitempty"`
	Data     string   `json:"data,omitempty"`
}

// request is any message sent by the server. Instance names the engine
// instance the request addresses; init creates it.
type request struct {
	Type     string          `json:"type"`
	ID       string          `json:"id"`
	Instance string          `json:"instance"`
	Target   string          `json:"target,omitempty"`
	Theme    *string         `json:"theme,omitempty"`
	Width    *uint32         `json:"width,omitempty"`
	Height   *uint32         `json:"height,omitempty"`
	Option   json.RawMessage `json:"option,omitempty"`
	Options  any             `json:"options,omitempty"`
}
