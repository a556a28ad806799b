package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStampServerIdentityOverwritesPayloadFields(t *testing.T) {
	client := &Client{
		userID:      "STU0001",
		role:        "student",
		classroomID: "CLS0001",
	}

	// A hostile payload claims someone else's identity and a stored ID.
	msg := Message{
		Type:        "history",
		ID:          "MSG999999",
		ClassroomID: "CLS0099",
		SenderID:    "ADM0001",
		SenderRole:  "admin",
		SenderName:  "Somebody Else",
		Content:     "hello",
	}

	client.stampServerIdentity(&msg)

	assert.Equal(t, "text", msg.Type)
	assert.Empty(t, msg.ID)
	assert.Equal(t, "STU0001", msg.SenderID)
	assert.Equal(t, "student", msg.SenderRole)
	assert.Empty(t, msg.SenderName)
	assert.Equal(t, "CLS0001", msg.ClassroomID)
	assert.False(t, msg.SentAt.IsZero())
	assert.Equal(t, "hello", msg.Content)
}
