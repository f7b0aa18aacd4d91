package model

import (
	"time"
)

// Session represents the database model for login sessions
type Session struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;index"`
	Token     string    `gorm:"type:varchar(36);not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Session
func (Session) TableName() string {
	return "sessions"
}
