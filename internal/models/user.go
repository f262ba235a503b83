package models

import "time"

const (
	RoleStudent       = "student"
	RoleAdministrator = "administrator"
)

// User is the profile document linked to an Account. It may be missing for an
// authenticated account if the profile write failed during registration.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Role      string    `gorm:"size:20;not null;default:'student'" json:"role"`
	Approved  bool      `gorm:"not null;default:false" json:"approved"`
	Score     int       `gorm:"not null;default:0" json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
