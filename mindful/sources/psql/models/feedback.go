package models

import "time"

// Feedback is the optional rating attached to one conversation. At most one
// row per conversation; later submissions overwrite the earlier ones.
type Feedback struct {
	ID             int          `json:"id" gorm:"primaryKey;autoIncrement"`
	ConversationID int          `json:"conversation_id" gorm:"not null;uniqueIndex"`
	Conversation   Conversation `json:"-" gorm:"foreignKey:ConversationID;references:ID;constraint:OnDelete:CASCADE"`
	Helpful        *bool        `json:"helpful"`
	Comment        string       `json:"comment" gorm:"type:text"`
	CreatedAt      time.Time    `json:"created_at" gorm:"autoCreateTime"`
}
