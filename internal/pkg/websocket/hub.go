package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// Hub maintains the set of active clients and broadcasts messages to the
// clients of each classroom.
type Hub struct {
	// Registered clients organized by classroom ID
	clients map[string]map[*Client]bool

	// Channel for inbound messages from clients
	broadcast chan *Message

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	mu sync.RWMutex

	listenersMu sync.RWMutex

	// Listeners receive every broadcast message, used for persistence
	messageListeners []chan *Message
}

// Message is the wire format exchanged over a chat connection.
type Message struct {
	// Type of message, currently always "text"
	Type string `json:"type"`

	// Classroom this message belongs to
	ClassroomID string `json:"classroomId"`

	// Sender identity, stamped server-side from the authenticated claims
	SenderID   string `json:"senderId"`
	SenderRole string `json:"senderRole"`
	SenderName string `json:"senderName,omitempty"`

	Content string `json:"content"`

	// Timestamp when the message was sent
	SentAt time.Time `json:"sentAt"`

	// Message ID once the message has been persisted
	ID string `json:"id,omitempty"`
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		broadcast:        make(chan *Message),
		register:         make(chan *Client),
		unregister:       make(chan *Client),
		clients:          make(map[string]map[*Client]bool),
		messageListeners: []chan *Message{},
	}
}

// Run starts the hub, handling client registrations and broadcasts.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	classroomID := client.classroomID
	if _, ok := h.clients[classroomID]; !ok {
		h.clients[classroomID] = make(map[*Client]bool)
	}
	h.clients[classroomID][client] = true

	logger.Info().
		Str("classroomID", classroomID).
		Str("userID", client.userID).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Chat client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	classroomID := client.classroomID
	if _, ok := h.clients[classroomID]; ok {
		if _, ok := h.clients[classroomID][client]; ok {
			delete(h.clients[classroomID], client)
			close(client.send)

			if len(h.clients[classroomID]) == 0 {
				delete(h.clients, classroomID)
			}

			logger.Info().
				Str("classroomID", classroomID).
				Str("userID", client.userID).
				Msg("Chat client unregistered")
		}
	}
}

// broadcastMessage notifies listeners, then fans the message out to every
// client connected to the message's classroom.
func (h *Hub) broadcastMessage(message *Message) {
	h.notifyMessageListeners(message)

	data, err := json.Marshal(message)
	if err != nil {
		logger.Error().
			Err(err).
			Str("classroomID", message.ClassroomID).
			Msg("Failed to marshal message for broadcast")
		return
	}

	// Clients with a full send buffer are collected during the fan-out and
	// dropped afterwards, outside the read lock.
	var stalled []*Client

	h.mu.RLock()
	for client := range h.clients[message.ClassroomID] {
		select {
		case client.send <- data:
		default:
			stalled = append(stalled, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range stalled {
		h.unregisterClient(client)
	}
}

// notifyMessageListeners hands each listener its own copy, so a listener that
// mutates the message cannot race the broadcast fan-out.
func (h *Hub) notifyMessageListeners(message *Message) {
	h.listenersMu.RLock()
	defer h.listenersMu.RUnlock()

	for _, listener := range h.messageListeners {
		msgCopy := *message
		select {
		case listener <- &msgCopy:
		default:
			logger.Warn().Msg("Skipped slow chat message listener")
		}
	}
}

// BroadcastToClassroom sends a message to all connected clients in a classroom.
func (h *Hub) BroadcastToClassroom(message *Message) {
	h.broadcast <- message
}

// ClientCount returns the number of connected clients for a classroom.
func (h *Hub) ClientCount(classroomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.clients[classroomID]; ok {
		return len(clients)
	}
	return 0
}

// AddMessageListener registers a channel that receives every broadcast
// message. The channel should be buffered; slow listeners are skipped.
func (h *Hub) AddMessageListener(listener chan *Message) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()

	h.messageListeners = append(h.messageListeners, listener)
}

// RemoveMessageListener removes a listener from the hub.
func (h *Hub) RemoveMessageListener(listener chan *Message) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()

	for i, l := range h.messageListeners {
		if l == listener {
			h.messageListeners[i] = h.messageListeners[len(h.messageListeners)-1]
			h.messageListeners = h.messageListeners[:len(h.messageListeners)-1]
			break
		}
	}
}
