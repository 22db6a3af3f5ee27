package dao

import (
	"context"

	"mindful/sources/psql/models"

	"gorm.io/gorm"
)

type ConversationDAO struct {
	DB *gorm.DB
}

func NewConversationDAO(db *gorm.DB) *ConversationDAO {
	return &ConversationDAO{DB: db}
}

// SaveConversation persists one processed turn.
func (dao *ConversationDAO) SaveConversation(ctx context.Context, userID, message, response, intent string, isCrisis bool) (*models.Conversation, error) {
	conv := models.Conversation{
		UserID:   userID,
		Message:  message,
		Response: response,
		Intent:   intent,
		IsCrisis: isCrisis,
	}
	if err := dao.DB.WithContext(ctx).Create(&conv).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

// RecentNonCrisis returns up to limit most recent non-crisis turns for the
// user, reversed into chronological order (oldest first). Crisis turns are
// never part of generation context.
func (dao *ConversationDAO) RecentNonCrisis(ctx context.Context, userID string, limit int) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := dao.DB.WithContext(ctx).
		Where("user_id = ? AND is_crisis = ?", userID, false).
		Order("created_at DESC").
		Limit(limit).
		Find(&convs).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(convs)-1; i < j; i, j = i+1, j-1 {
		convs[i], convs[j] = convs[j], convs[i]
	}
	return convs, nil
}

// HistoryForUser returns the user's turns newest-first for the history API.
func (dao *ConversationDAO) HistoryForUser(ctx context.Context, userID string, limit int) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := dao.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&convs).Error
	if err != nil {
		return nil, err
	}
	return convs, nil
}

// GetByID returns the conversation or nil when it does not exist.
func (dao *ConversationDAO) GetByID(ctx context.Context, id int) (*models.Conversation, error) {
	var conv models.Conversation
	err := dao.DB.WithContext(ctx).First(&conv, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}
