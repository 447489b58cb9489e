package models

import (
	"time"
)

// User is an administrable account. The password is stored only as a bcrypt
// hash and never serialized.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(30);uniqueIndex;not null" json:"username"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        *string   `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // Hidden from JSON
	RoleCodeID   uint      `gorm:"not null" json:"role_code_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
