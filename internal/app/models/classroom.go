package models

import "time"

// Classroom represents a virtual classroom with its membership lists.
// Members hold student identifiers, Admins teacher identifiers.
type Classroom struct {
	ID          string    `json:"classroomId" db:"classroom_id"`
	Name        string    `json:"className" db:"class_name"`
	Description *string   `json:"classDescription,omitempty" db:"class_description"`
	Photo       *string   `json:"classPhoto,omitempty" db:"class_photo"`
	Members     []string  `json:"members" db:"members"`
	Admins      []string  `json:"admins" db:"admins"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ChatMessage is a single message in a classroom chat.
type ChatMessage struct {
	ID          string    `json:"messageId" db:"message_id"`
	ClassroomID string    `json:"classroomId" db:"classroom_id"`
	SenderID    string    `json:"senderId" db:"sender_id"`
	SenderRole  UserRole  `json:"senderRole" db:"sender_role"`
	Content     string    `json:"content" db:"content"`
	SentAt      time.Time `json:"sentAt" db:"sent_at"`

	// SenderName is resolved from the sender's user record when listing.
	SenderName *string `json:"senderName,omitempty"`
}
