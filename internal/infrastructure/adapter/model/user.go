package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Email     string    `gorm:"uniqueIndex:idx_users_email;not null;size:320"`
	Password  string    `gorm:"not null;size:255"` // stored form, plaintext or bcrypt
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
