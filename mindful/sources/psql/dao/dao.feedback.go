package dao

import (
	"context"

	"mindful/sources/psql/models"

	"gorm.io/gorm"
)

type FeedbackDAO struct {
	DB *gorm.DB
}

func NewFeedbackDAO(db *gorm.DB) *FeedbackDAO {
	return &FeedbackDAO{DB: db}
}

// Upsert stores feedback for a conversation, overwriting any earlier row.
// One feedback row per conversation, last write wins.
func (dao *FeedbackDAO) Upsert(ctx context.Context, conversationID int, helpful *bool, comment string) (*models.Feedback, error) {
	var fb models.Feedback
	err := dao.DB.WithContext(ctx).Where("conversation_id = ?", conversationID).First(&fb).Error
	if err == gorm.ErrRecordNotFound {
		fb = models.Feedback{
			ConversationID: conversationID,
			Helpful:        helpful,
			Comment:        comment,
		}
		if err := dao.DB.WithContext(ctx).Create(&fb).Error; err != nil {
			return nil, err
		}
		return &fb, nil
	}
	if err != nil {
		return nil, err
	}
	fb.Helpful = helpful
	fb.Comment = comment
	if err := dao.DB.WithContext(ctx).Save(&fb).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}
