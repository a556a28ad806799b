package models

import "time"

// Announcement is a dated notice shown to platform users.
type Announcement struct {
	ID          string    `json:"announcementId" db:"announcement_id"`
	Headline    string    `json:"headline" db:"headline"`
	Description string    `json:"description" db:"description"`
	Active      bool      `json:"active" db:"active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Advertisement is a promotional banner with an optional display window.
type Advertisement struct {
	ID          string     `json:"advertisementId" db:"advertisement_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	Banner      *string    `json:"banner,omitempty" db:"banner"`
	Active      bool       `json:"active" db:"active"`
	StartsOn    *time.Time `json:"startsOn,omitempty" db:"starts_on"`
	EndsOn      *time.Time `json:"endsOn,omitempty" db:"ends_on"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// AboutUsSection is one block of the about-us page.
type AboutUsSection struct {
	ID        string    `json:"sectionId" db:"section_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Photo     *string   `json:"photo,omitempty" db:"photo"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Help-center query status values.
const (
	QueryStatusOpen     = "open"
	QueryStatusResolved = "resolved"
)

// HelpCenterQuery is a support request submitted through the help center.
type HelpCenterQuery struct {
	ID        string    `json:"queryId" db:"query_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message"`
	Status    string    `json:"status" db:"status"`
	Reply     *string   `json:"reply,omitempty" db:"reply"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
