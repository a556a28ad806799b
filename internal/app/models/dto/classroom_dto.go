package dto

// CreateClassroomRequest is bound from a multipart form; the class photo
// arrives as a file part.
type CreateClassroomRequest struct {
	Name        string  `form:"className" binding:"required"`
	Description *string `form:"classDescription"`
}

// UpdateClassroomRequest partially updates a classroom.
type UpdateClassroomRequest struct {
	Name        *string `form:"className"`
	Description *string `form:"classDescription"`
}

// MembershipRequest adds or removes a member/admin of a classroom.
type MembershipRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// PostMessageRequest posts a chat message to a classroom over REST.
type PostMessageRequest struct {
	SenderID   string `json:"senderId" binding:"required"`
	SenderRole string `json:"senderRole" binding:"required,oneof=admin teacher student"`
	Content    string `json:"content" binding:"required"`
}
