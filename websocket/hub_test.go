package websocket

import (
	"sync"
	"testing"
	"time"
)

func notification() WebSocketMessage {
	return WebSocketMessage{
		Type:      MessageTypeNotification,
		Payload:   "ping",
		Timestamp: time.Now(),
	}
}

func TestHubSendToUserSlowClientUnderContention(t *testing.T) {
	h := NewHub()
	go h.Run()

	// Unbuffered and never drained, so every push to it hits the slow path.
	slow := &Client{UserEmail: "ops@example.com", Send: make(chan WebSocketMessage)}
	fast := &Client{UserEmail: "ops@example.com", Send: make(chan WebSocketMessage, 8)}
	other := &Client{UserEmail: "partner@example.com", Send: make(chan WebSocketMessage, 8)}
	for _, client := range []*Client{slow, fast, other} {
		h.register <- client
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				h.SendToUser("ops@example.com", notification())
				h.GetClientCount()
			}
		}()
	}
	wg.Wait()

	// Fan-out never touches the registry itself; the slow client stays
	// registered until its own connection teardown unregisters it.
	if got := h.GetClientCount(); got != 3 {
		t.Errorf("GetClientCount() = %d, want 3", got)
	}

	select {
	case msg := <-fast.Send:
		if msg.Type != MessageTypeNotification {
			t.Errorf("Type = %s, want %s", msg.Type, MessageTypeNotification)
		}
	default:
		t.Error("fast connection of the target user received nothing")
	}
	if len(other.Send) != 0 {
		t.Errorf("other user received %d messages, want 0", len(other.Send))
	}
}

func TestHubUnregisterIsIdempotent(t *testing.T) {
	h := NewHub()
	go h.Run()

	client := &Client{UserEmail: "ops@example.com", Send: make(chan WebSocketMessage, 1)}
	h.register <- client
	h.unregister <- client
	h.unregister <- client

	// Send was closed exactly once by the first unregister.
	if _, ok := <-client.Send; ok {
		t.Error("Send should be closed after unregister")
	}
	if got := h.GetClientCount(); got != 0 {
		t.Errorf("GetClientCount() = %d, want 0", got)
	}
}
