package model

import "time"

// Role is the authorization tag carried by a user and their issued tokens.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
)

// ValidRole reports whether r is one of the recognized roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleFaculty
}

// User represents a portal account. The password is stored only as a bcrypt
// hash; the role is fixed at registration.
type User struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         Role   `gorm:"size:20;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
