package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codexam/internal/model"
)

func TestHubBroadcastsSubmissions(t *testing.T) {
	hub := NewHub()
	conn := &Connection{Send: make(chan []byte, 8)}
	hub.Register(conn)
	defer hub.Unregister(conn)

	rec := model.SubmissionRecord{
		ID:      "rec-1",
		Kind:    model.SubmissionExam,
		Score:   85,
		Summary: "17 of 20 correct",
	}
	hub.SubmissionRecorded(rec)

	select {
	case data := <-conn.Send:
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, MsgSubmissionRecorded, msg.Type)

		var got model.SubmissionRecord
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, rec.ID, got.ID)
		assert.Equal(t, rec.Score, got.Score)
	case <-time.After(time.Second):
		t.Fatal("no broadcast received")
	}
}

func TestHubDropsForSlowConsumer(t *testing.T) {
	hub := NewHub()
	// Unbuffered channel with no reader simulates a stuck consumer.
	conn := &Connection{Send: make(chan []byte)}
	hub.Register(conn)
	defer hub.Unregister(conn)

	// Must not block even though nobody reads.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			hub.SubmissionRecorded(model.SubmissionRecord{ID: "x"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on slow consumer")
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	conn := &Connection{Send: make(chan []byte, 1)}
	hub.Register(conn)
	hub.Unregister(conn)

	select {
	case _, ok := <-conn.Send:
		assert.False(t, ok, "send channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("send channel not closed after unregister")
	}
}
