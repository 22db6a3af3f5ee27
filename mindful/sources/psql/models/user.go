package models

import "time"

// User is one anonymous chat session owner, keyed by the opaque session id
// issued in the cookie. IDs are app-generated UUIDs.
type User struct {
	ID         string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	SessionID  string    `json:"session_id" gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	LastActive time.Time `json:"last_active" gorm:"autoUpdateTime"`
}
