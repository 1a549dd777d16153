package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/lumiwidgets/pkg/domain/types"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Event
		wantErr error
	}{
		{
			name:    "numeric node id",
			payload: `{"node_id": 12, "widget_name": "populated_text", "value": "a red cat"}`,
			want:    Event{NodeID: "12", WidgetName: "populated_text", Value: "a red cat"},
		},
		{
			name:    "string node id",
			payload: `{"node_id": "5:3", "widget_name": "populated_text", "value": "x"}`,
			want:    Event{NodeID: "5:3", WidgetName: "populated_text", Value: "x"},
		},
		{
			name:    "value kept byte for byte",
			payload: `{"node_id": 1, "widget_name": "w", "value": "  two  spaces\nand <lora:a:1> "}`,
			want:    Event{NodeID: "1", WidgetName: "w", Value: "  two  spaces\nand <lora:a:1> "},
		},
		{
			name:    "missing value",
			payload: `{"node_id": 1, "widget_name": "w"}`,
			want:    Event{NodeID: "1", WidgetName: "w", Value: ""},
		},
		{
			name:    "invalid json",
			payload: `{"node_id": 1,`,
			wantErr: ErrInvalidJSON,
		},
		{
			name:    "not an object",
			payload: `[1, 2]`,
			wantErr: ErrMalformedEvent,
		},
		{
			name:    "missing node id",
			payload: `{"widget_name": "w", "value": "v"}`,
			wantErr: ErrMalformedEvent,
		},
		{
			name:    "boolean node id",
			payload: `{"node_id": true, "widget_name": "w", "value": "v"}`,
			wantErr: ErrMalformedEvent,
		},
		{
			name:    "missing widget name",
			payload: `{"node_id": 1, "value": "v"}`,
			wantErr: ErrMalformedEvent,
		},
		{
			name:    "empty widget name",
			payload: `{"node_id": 1, "widget_name": "", "value": "v"}`,
			wantErr: ErrMalformedEvent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.payload))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeEnvelope(t *testing.T) {
	msgType, ev, err := DecodeEnvelope([]byte(`{"type": "lumi-node-feedback", "data": {"node_id": 4, "widget_name": "populated_text", "value": "done"}}`))
	require.NoError(t, err)
	assert.Equal(t, EventName, msgType)
	assert.Equal(t, types.NodeID("4"), ev.NodeID)
	assert.Equal(t, "done", ev.Value)

	// Other message types are skipped, with or without data
	msgType, ev, err = DecodeEnvelope([]byte(`{"type": "status", "data": {"status": {}}}`))
	require.NoError(t, err)
	assert.Equal(t, "status", msgType)
	assert.Equal(t, Event{}, ev)

	msgType, _, err = DecodeEnvelope([]byte(`{"type": "executing"}`))
	require.NoError(t, err)
	assert.Equal(t, "executing", msgType)

	_, _, err = DecodeEnvelope([]byte(`{"type": "lumi-node-feedback"}`))
	assert.ErrorIs(t, err, ErrMalformedEvent)

	_, _, err = DecodeEnvelope([]byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestSplitEnvelope(t *testing.T) {
	msgType, payload, err := SplitEnvelope([]byte(`{"type": "lumi-node-feedback", "data": {"node_id": 1}}`))
	require.NoError(t, err)
	assert.Equal(t, EventName, msgType)
	assert.JSONEq(t, `{"node_id": 1}`, string(payload))
}
