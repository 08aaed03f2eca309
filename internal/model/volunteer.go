package model

import "time"

// Volunteer maps to the volunteers table: one colleague's offer to take over
// a requester's shift. Owned by its SwapRequest and removed with it.
type Volunteer struct {
	VolunteerID   string    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SwapRequestID string    `gorm:"type:uuid;not null;index"                                 json:"swap_request_id"`
	UserID        string    `gorm:"type:uuid;not null"                                       json:"user_id"`
	Name          string    `gorm:"type:varchar(100);not null"                               json:"name"`
	Role          string    `gorm:"type:varchar(100);not null"                               json:"role"`
	Note          string    `gorm:"type:varchar(500)"                                        json:"note,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                       json:"created_at"`
}

// TableName sets the table name.
func (Volunteer) TableName() string { return "volunteers" }
