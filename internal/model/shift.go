package model

import "time"

// Shift maps to the shifts table. A shift is owned by the worker assigned to
// it and is never mutated once created; swap requests snapshot its fields.
type Shift struct {
	ShiftID   string    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index"                                 json:"user_id"`
	Date      time.Time `gorm:"type:date;not null"                                       json:"date"`
	StartTime string    `gorm:"type:varchar(5);not null"                                 json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);not null"                                 json:"end_time"`
	Role      string    `gorm:"type:varchar(100);not null"                               json:"role"`
	Location  string    `gorm:"type:varchar(255);not null"                               json:"location"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                       json:"created_at"`

	// associations
	Owner        *User         `gorm:"foreignKey:UserID;references:UserID"   json:"owner,omitempty"`
	SwapRequests []SwapRequest `gorm:"foreignKey:ShiftID;references:ShiftID" json:"swap_requests,omitempty"`
}

// TableName sets the table name.
func (Shift) TableName() string { return "shifts" }
