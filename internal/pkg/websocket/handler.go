package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vwings/eduadmin/internal/app/models"
	"github.com/vwings/eduadmin/internal/app/models/dto"
	"github.com/vwings/eduadmin/internal/app/services"
	"github.com/vwings/eduadmin/internal/middleware"
	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// historyReplayCount is how many recent messages a client receives on connect.
const historyReplayCount = 50

// Handler upgrades chat connections and wires them into the hub.
type Handler struct {
	hub              *Hub
	classroomService *services.ClassroomService
}

// NewHandler creates a new WebSocket handler.
func NewHandler(hub *Hub, classroomService *services.ClassroomService) *Handler {
	return &Handler{
		hub:              hub,
		classroomService: classroomService,
	}
}

// HandleConnection godoc
// @Summary Establish a WebSocket connection for classroom chat
// @Description Upgrades the HTTP connection to a WebSocket for real-time classroom chat; recent history is replayed on connect
// @Tags chat
// @Security BearerAuth
// @Param id path string true "Classroom ID"
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Not a member of the classroom"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Router /classrooms/{id}/chat/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	classroomID := c.Param("id")
	userID := c.GetString(middleware.ContextUserID)
	role := c.GetString(middleware.ContextRole)

	classroom, err := h.classroomService.Get(c.Request.Context(), classroomID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if !mayJoin(classroom, userID, role) {
		c.JSON(http.StatusForbidden, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeForbidden, "Not a member of this classroom"),
			Timestamp: time.Now(),
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error().
			Err(err).
			Str("classroomID", classroomID).
			Str("userID", userID).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:         h.hub,
		conn:        conn,
		send:        make(chan []byte, 256),
		userID:      userID,
		role:        role,
		classroomID: classroomID,
	}
	client.hub.register <- client

	h.replayHistory(client)

	go client.writePump()
	go client.readPump()
}

// mayJoin reports whether the authenticated user may join the classroom chat.
// Admins always may; students must be members, teachers classroom admins.
func mayJoin(classroom *models.Classroom, userID, role string) bool {
	switch models.UserRole(role) {
	case models.RoleAdmin:
		return true
	case models.RoleStudent:
		return contains(classroom.Members, userID)
	case models.RoleTeacher:
		return contains(classroom.Admins, userID)
	}
	return false
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// replayHistory queues the most recent persisted messages onto the client's
// send buffer, oldest first, so a fresh connection sees recent context.
func (h *Handler) replayHistory(client *Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	history, err := h.classroomService.RecentMessages(ctx, client.classroomID, historyReplayCount)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("classroomID", client.classroomID).
			Msg("Failed to load chat history for replay")
		return
	}

	for _, m := range history {
		msg := Message{
			Type:        "text",
			ID:          m.ID,
			ClassroomID: m.ClassroomID,
			SenderID:    m.SenderID,
			SenderRole:  string(m.SenderRole),
			Content:     m.Content,
			SentAt:      m.SentAt,
		}
		if m.SenderName != nil {
			msg.SenderName = *m.SenderName
		}
		data, err := json.Marshal(msg)
		if err != nil {
			continue
		}
		select {
		case client.send <- data:
		default:
			return
		}
	}
}
