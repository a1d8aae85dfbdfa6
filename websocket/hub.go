package websocket

import (
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeNotification  MessageType = "NOTIFICATION"
	MessageTypeImportUpdate  MessageType = "IMPORT_UPDATE"
	MessageTypeInvoiceUpdate MessageType = "INVOICE_UPDATE"
	MessageTypeUserStatus    MessageType = "USER_STATUS"
	MessageTypeError         MessageType = "ERROR"
)

type WebSocketMessage struct {
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type Client struct {
	ID        uuid.UUID
	UserEmail string
	Conn      *websocket.Conn
	Hub       *Hub
	Send      chan WebSocketMessage
}

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan WebSocketMessage
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan WebSocketMessage),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.broadcastToAll(message)
		}
	}
}

// Broadcast sends a message to all connected clients
func (h *Hub) Broadcast(message WebSocketMessage) {
	h.broadcast <- message
}

// SendToUser delivers a message to every open connection of one user. A
// user who is offline simply misses the push; the persisted notification
// row is the durable copy.
func (h *Hub) SendToUser(userEmail string, message WebSocketMessage) {
	h.mu.RLock()
	var slow []*Client
	for client := range h.clients {
		if client.UserEmail != userEmail {
			continue
		}
		select {
		case client.Send <- message:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	evictSlow(slow)
}

// broadcastToAll sends a message to all connected clients
func (h *Hub) broadcastToAll(message WebSocketMessage) {
	h.mu.RLock()
	var slow []*Client
	for client := range h.clients {
		select {
		case client.Send <- message:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	evictSlow(slow)
}

// evictSlow drops clients whose send buffer is full. Closing the connection
// makes the read pump exit and unregister, so the map delete and the close
// of Send stay in Run; fan-out paths never mutate the map or close Send.
func evictSlow(slow []*Client) {
	for _, client := range slow {
		client.disconnect()
	}
}

func (c *Client) disconnect() {
	if c.Conn != nil {
		c.Conn.Close()
	}
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
