package dto

// CreateAnnouncementRequest publishes an announcement.
type CreateAnnouncementRequest struct {
	Headline    string `json:"headline" binding:"required"`
	Description string `json:"description" binding:"required"`
	Active      *bool  `json:"active,omitempty"`
}

// UpdateAnnouncementRequest partially updates an announcement.
type UpdateAnnouncementRequest struct {
	Headline    *string `json:"headline,omitempty"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// CreateAdvertisementRequest is bound from a multipart form; the banner
// arrives as a file part. Dates use YYYY-MM-DD.
type CreateAdvertisementRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description *string `form:"description"`
	Active      *bool   `form:"active"`
	StartsOn    *string `form:"startsOn" binding:"omitempty,datetime=2006-01-02"`
	EndsOn      *string `form:"endsOn" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateAdvertisementRequest partially updates an advertisement.
type UpdateAdvertisementRequest struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
	Active      *bool   `form:"active"`
	StartsOn    *string `form:"startsOn" binding:"omitempty,datetime=2006-01-02"`
	EndsOn      *string `form:"endsOn" binding:"omitempty,datetime=2006-01-02"`
}

// CreateAboutUsRequest is bound from a multipart form; the section photo
// arrives as a file part.
type CreateAboutUsRequest struct {
	Title   string `form:"title" binding:"required"`
	Content string `form:"content" binding:"required"`
}

// UpdateAboutUsRequest partially updates an about-us section.
type UpdateAboutUsRequest struct {
	Title   *string `form:"title"`
	Content *string `form:"content"`
}

// CreateHelpQueryRequest files a help-center query.
type CreateHelpQueryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// UpdateHelpQueryRequest resolves or replies to a query.
type UpdateHelpQueryRequest struct {
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=open resolved"`
	Reply  *string `json:"reply,omitempty"`
}
