package model

import "time"

// Swap request statuses. Progression is strictly forward:
// pending → matched → approved | rejected.
const (
	SwapStatusPending  = "pending"
	SwapStatusMatched  = "matched"
	SwapStatusApproved = "approved"
	SwapStatusRejected = "rejected"
)

// IsValidSwapStatus reports whether s is a known status value.
func IsValidSwapStatus(s string) bool {
	switch s {
	case SwapStatusPending, SwapStatusMatched, SwapStatusApproved, SwapStatusRejected:
		return true
	}
	return false
}

// IsTerminalSwapStatus reports whether s permits no further transitions.
func IsTerminalSwapStatus(s string) bool {
	return s == SwapStatusApproved || s == SwapStatusRejected
}

// IsActiveSwapStatus reports whether a request in status s still occupies its
// shift (at most one such request may exist per shift).
func IsActiveSwapStatus(s string) bool {
	return s == SwapStatusPending || s == SwapStatusMatched
}

// SwapRequest maps to the swap_requests table. Shift fields are denormalized
// at creation time so a pending request keeps displaying the terms it was
// created with.
type SwapRequest struct {
	SwapRequestID   string     `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          string     `gorm:"type:uuid;not null;index"                                 json:"user_id"`
	ShiftID         string     `gorm:"type:uuid;not null"                                       json:"shift_id"`
	Date            time.Time  `gorm:"type:date;not null"                                       json:"date"`
	StartTime       string     `gorm:"type:varchar(5);not null"                                 json:"start_time"`
	EndTime         string     `gorm:"type:varchar(5);not null"                                 json:"end_time"`
	Role            string     `gorm:"type:varchar(100);not null"                               json:"role"`
	Location        string     `gorm:"type:varchar(255);not null"                               json:"location"`
	Reason          string     `gorm:"type:varchar(500);not null"                               json:"reason"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index"        json:"status"`
	RejectionReason string     `gorm:"type:varchar(500)"                                        json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"                       json:"created_at"`
	MatchedAt       *time.Time `json:"matched_at,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`

	// associations
	Requester  *User       `gorm:"foreignKey:UserID;references:UserID"                 json:"requester,omitempty"`
	Shift      *Shift      `gorm:"foreignKey:ShiftID;references:ShiftID"               json:"shift,omitempty"`
	Volunteers []Volunteer `gorm:"foreignKey:SwapRequestID;references:SwapRequestID"   json:"volunteers,omitempty"`
}

// TableName sets the table name.
func (SwapRequest) TableName() string { return "swap_requests" }
