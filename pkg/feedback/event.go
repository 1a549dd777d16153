// Package feedback carries backend-to-editor widget updates: the event
// shape, a process-wide publish/subscribe bus, and the listener that
// applies events to live widgets.
package feedback

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dshills/lumiwidgets/pkg/domain/types"
)

// EventName is the backend event that carries widget updates.
const EventName = "lumi-node-feedback"

// Sentinel errors for event decoding
var (
	ErrMalformedEvent = errors.New("malformed feedback event")
	ErrInvalidJSON    = errors.New("invalid JSON payload")
)

// Event asserts that a widget's value should now be Value.
type Event struct {
	NodeID     types.NodeID
	WidgetName string
	Value      string
}

// Decode parses a feedback payload:
//
//	{"node_id": 12, "widget_name": "populated_text", "value": "a red cat"}
//
// node_id may be a number or a string. A missing or null value decodes
// as the empty string.
func Decode(data []byte) (Event, error) {
	if !gjson.ValidBytes(data) {
		return Event{}, ErrInvalidJSON
	}
	return decodeResult(gjson.ParseBytes(data))
}

// SplitEnvelope parses a server message of the form
//
//	{"type": "lumi-node-feedback", "data": {...}}
//
// and returns the message type and the raw data payload.
func SplitEnvelope(data []byte) (string, []byte, error) {
	if !gjson.ValidBytes(data) {
		return "", nil, ErrInvalidJSON
	}

	msg := gjson.ParseBytes(data)
	payload := msg.Get("data")
	if !payload.IsObject() {
		return msg.Get("type").String(), nil, fmt.Errorf("%w: missing data object", ErrMalformedEvent)
	}
	return msg.Get("type").String(), []byte(payload.Raw), nil
}

// DecodeEnvelope splits a server message and decodes its payload.
// Messages of any other type are returned with a zero Event and no error
// so the caller can skip them.
func DecodeEnvelope(data []byte) (string, Event, error) {
	msgType, payload, err := SplitEnvelope(data)
	if errors.Is(err, ErrInvalidJSON) {
		return "", Event{}, err
	}
	if msgType != EventName {
		return msgType, Event{}, nil
	}
	if err != nil {
		return msgType, Event{}, err
	}

	ev, err := Decode(payload)
	return msgType, ev, err
}

func decodeResult(r gjson.Result) (Event, error) {
	if !r.IsObject() {
		return Event{}, fmt.Errorf("%w: payload is not an object", ErrMalformedEvent)
	}

	nodeID := r.Get("node_id")
	switch nodeID.Type {
	case gjson.Number, gjson.String:
	default:
		return Event{}, fmt.Errorf("%w: node_id must be a number or string", ErrMalformedEvent)
	}
	if nodeID.String() == "" {
		return Event{}, fmt.Errorf("%w: empty node_id", ErrMalformedEvent)
	}

	widgetName := r.Get("widget_name")
	if widgetName.Type != gjson.String || widgetName.Str == "" {
		return Event{}, fmt.Errorf("%w: widget_name must be a non-empty string", ErrMalformedEvent)
	}

	return Event{
		NodeID:     types.NodeID(nodeID.String()),
		WidgetName: widgetName.Str,
		Value:      r.Get("value").String(),
	}, nil
}
