package models

import "time"

// Conversation is one processed exchange: the user message, the response we
// produced, and the triage outcome. Immutable after creation.
type Conversation struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Response  string    `json:"response" gorm:"type:text;not null"`
	Intent    string    `json:"intent" gorm:"type:varchar(100)"`
	Sentiment *float64  `json:"sentiment,omitempty"`
	IsCrisis  bool      `json:"is_crisis" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}
