package model

import "time"

// Role values assignable to a user. The role is fixed at registration.
const (
	RoleStaff   = "staff"
	RoleManager = "manager"
)

// IsValidRole reports whether s is a known role.
func IsValidRole(s string) bool {
	return s == RoleStaff || s == RoleManager
}

// User maps to the users table.
type User struct {
	UserID       string    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null"                               json:"name"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"                   json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                               json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:'staff'"                json:"role"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                       json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                       json:"updated_at"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
