package notify

import (
	"encoding/json"
	"strconv"
)

// Kind selects how the notification protocol fans a message out.
type Kind int

const (
	// KindBroadcast delivers to every subscriber of the channel; the
	// recipient is the channel address itself.
	KindBroadcast Kind = 1

	// KindTargeted delivers to a single subscriber.
	KindTargeted Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindBroadcast:
		return "broadcast"
	case KindTargeted:
		return "targeted"
	default:
		return "unknown"
	}
}

// Payload is the human readable message a channel wants delivered.
// Length limits of Title and Body are the channel's responsibility.
type Payload struct {
	Recipient string            `validate:"required,eth_addr"`
	Kind      Kind              `validate:"oneof=1 3"`
	Title     string            `validate:"required"`
	Body      string            `validate:"required"`
	CTA       string            `validate:"omitempty,url"`
	Image     string            `validate:"omitempty,url"`
	Extra     map[string]string `validate:"omitempty"`
}

// envelope is the document uploaded to the content store. Its layout is
// fixed by the notification protocol.
type envelope struct {
	Notification struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	} `json:"notification"`
	Data struct {
		Type   string            `json:"type"`
		Secret string            `json:"secret"`
		ASub   string            `json:"asub"`
		AMsg   string            `json:"amsg"`
		ACta   string            `json:"acta"`
		AImg   string            `json:"aimg"`
		Extra  map[string]string `json:"extra,omitempty"`
	} `json:"data"`
}

// Envelope renders p into the protocol document, compactly encoded.
func (p Payload) Envelope() ([]byte, error) {
	var e envelope
	e.Notification.Title = p.Title
	e.Notification.Body = p.Body
	e.Data.Type = strconv.Itoa(int(p.Kind))
	e.Data.ASub = p.Title
	e.Data.AMsg = p.Body
	e.Data.ACta = p.CTA
	e.Data.AImg = p.Image
	e.Data.Extra = p.Extra

	return json.Marshal(e)
}
