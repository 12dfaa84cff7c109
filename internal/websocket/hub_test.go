package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcastsToWatchersOfSameRound(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	watcher := &Client{RoundID: "mon-1", Send: make(chan []byte, 1)}
	other := &Client{RoundID: "tue-1", Send: make(chan []byte, 1)}
	hub.Register(watcher)
	hub.Register(other)

	hub.BroadcastScore(ScoreUpdate{
		RoundID:    "mon-1",
		PlayerID:   "p1",
		PlayerName: "Rocky Dare",
		HoleNumber: 7,
		Strokes:    3,
	})

	select {
	case data := <-watcher.Send:
		var update ScoreUpdate
		require.NoError(t, json.Unmarshal(data, &update))
		assert.Equal(t, "mon-1", update.RoundID)
		assert.Equal(t, 7, update.HoleNumber)
		assert.Equal(t, 3, update.Strokes)
	case <-time.After(time.Second):
		t.Fatal("watcher never received the update")
	}

	select {
	case <-other.Send:
		t.Fatal("watcher of another round received the update")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubEvictsSlowConsumerWithoutStalling(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	slow := &Client{RoundID: "mon-1", Send: make(chan []byte, 1)}
	hub.Register(slow)

	update := ScoreUpdate{
		RoundID:    "mon-1",
		PlayerID:   "p1",
		PlayerName: "Gil Moniz",
		HoleNumber: 1,
		Strokes:    4,
	}
	// First broadcast fills the client's buffer; the second overflows it,
	// which must evict the client instead of wedging the hub loop.
	hub.BroadcastScore(update)
	hub.BroadcastScore(update)

	registered := make(chan struct{})
	go func() {
		hub.Register(&Client{RoundID: "mon-1", Send: make(chan []byte, 1)})
		close(registered)
	}()
	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("hub stopped serving registrations after a slow consumer overflowed")
	}

	// The evicted client's channel is closed behind its buffered frame.
	select {
	case <-slow.Send:
	case <-time.After(2 * time.Second):
		t.Fatal("buffered frame never delivered")
	}
	select {
	case _, ok := <-slow.Send:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("slow client was not evicted")
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{RoundID: "mon-1", Send: make(chan []byte, 1)}
	hub.Register(client)
	hub.Unregister(client)

	select {
	case _, ok := <-client.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel never closed")
	}
}
