package ws

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastEventPreservesOrder(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	hub.BroadcastEvent(Event{Type: "stock_update", Action: "first"})
	hub.BroadcastEvent(Event{Type: "stock_update", Action: "second"})

	var got Event
	require.NoError(t, json.Unmarshal(<-hub.Broadcast, &got))
	assert.Equal(t, "first", got.Action)
	require.NoError(t, json.Unmarshal(<-hub.Broadcast, &got))
	assert.Equal(t, "second", got.Action)
}

func TestBroadcastEventNeverBlocks(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	// Overfill the buffer without a running hub loop; every call must
	// return, the overflow is dropped.
	for i := 0; i < broadcastBuffer+10; i++ {
		hub.BroadcastEvent(Event{Type: "stock_update", Action: "queued"})
	}
	assert.Len(t, hub.Broadcast, broadcastBuffer)
}
