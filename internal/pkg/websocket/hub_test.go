package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastNotifiesListeners(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	listener := make(chan *Message, 1)
	hub.AddMessageListener(listener)

	sent := &Message{
		Type:        "text",
		ClassroomID: "CLS0001",
		SenderID:    "STU0001",
		SenderRole:  "student",
		Content:     "hello",
		SentAt:      time.Now(),
	}
	hub.BroadcastToClassroom(sent)

	select {
	case got := <-listener:
		assert.Equal(t, "CLS0001", got.ClassroomID)
		assert.Equal(t, "STU0001", got.SenderID)
		assert.Equal(t, "hello", got.Content)
		// Listeners get their own copy; mutating it must not reach the
		// message the hub is fanning out.
		assert.NotSame(t, sent, got)
	case <-time.After(time.Second):
		require.Fail(t, "listener did not receive the broadcast message")
	}
}

func TestBroadcastDropsStalledClients(t *testing.T) {
	hub := NewHub()

	healthy := &Client{hub: hub, send: make(chan []byte, 4), userID: "STU0001", classroomID: "CLS0005"}
	stalled := &Client{hub: hub, send: make(chan []byte), userID: "STU0002", classroomID: "CLS0005"}

	hub.mu.Lock()
	hub.clients["CLS0005"] = map[*Client]bool{healthy: true, stalled: true}
	hub.mu.Unlock()

	hub.broadcastMessage(&Message{Type: "text", ClassroomID: "CLS0005", Content: "hi"})

	select {
	case data := <-healthy.send:
		assert.Contains(t, string(data), `"content":"hi"`)
	default:
		require.Fail(t, "healthy client did not receive the broadcast")
	}

	// The stalled client was unregistered and its send channel closed.
	assert.Equal(t, 1, hub.ClientCount("CLS0005"))
	_, open := <-stalled.send
	assert.False(t, open)
}

func TestSlowListenerIsSkipped(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Unbuffered with no reader: the hub must skip it without blocking.
	slow := make(chan *Message)
	fast := make(chan *Message, 1)
	hub.AddMessageListener(slow)
	hub.AddMessageListener(fast)

	hub.BroadcastToClassroom(&Message{Type: "text", ClassroomID: "CLS0002", Content: "ping"})

	select {
	case got := <-fast:
		assert.Equal(t, "ping", got.Content)
	case <-time.After(time.Second):
		require.Fail(t, "fast listener did not receive the broadcast message")
	}
}

func TestRemoveMessageListener(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	listener := make(chan *Message, 1)
	hub.AddMessageListener(listener)
	hub.RemoveMessageListener(listener)

	hub.BroadcastToClassroom(&Message{Type: "text", ClassroomID: "CLS0003", Content: "gone"})

	select {
	case <-listener:
		require.Fail(t, "removed listener still received a message")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestClientCountEmpty(t *testing.T) {
	hub := NewHub()
	assert.Equal(t, 0, hub.ClientCount("CLS0004"))
}
