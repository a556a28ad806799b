package websocket

import (
	"context"
	"time"

	"github.com/vwings/eduadmin/internal/app/models/dto"
	"github.com/vwings/eduadmin/internal/app/services"
	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// MessagePersister stores broadcast chat messages through the classroom
// service so WebSocket traffic shares validation and storage with the REST
// endpoints.
type MessagePersister struct {
	classroomService *services.ClassroomService
	hub              *Hub
}

// NewMessagePersister creates a new MessagePersister.
func NewMessagePersister(classroomService *services.ClassroomService, hub *Hub) *MessagePersister {
	return &MessagePersister{
		classroomService: classroomService,
		hub:              hub,
	}
}

// Start begins persisting messages broadcast through the hub.
func (p *MessagePersister) Start() {
	go p.processMessages()
}

func (p *MessagePersister) processMessages() {
	messageChan := make(chan *Message, 64)
	p.hub.AddMessageListener(messageChan)

	for message := range messageChan {
		// Inbound client frames reach the hub with an empty ID; anything
		// carrying one is already stored and must not be saved twice.
		if message.ID != "" || message.Type != "text" {
			continue
		}
		p.persist(message)
	}
}

func (p *MessagePersister) persist(message *Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stored, err := p.classroomService.PostMessage(ctx, message.ClassroomID, &dto.PostMessageRequest{
		SenderID:   message.SenderID,
		SenderRole: message.SenderRole,
		Content:    message.Content,
	})
	if err != nil {
		logger.Error().
			Err(err).
			Str("classroomID", message.ClassroomID).
			Str("senderID", message.SenderID).
			Msg("Failed to persist chat message")
		return
	}

	logger.Debug().
		Str("messageID", stored.ID).
		Str("classroomID", message.ClassroomID).
		Msg("Chat message persisted")
}
