package dao

import (
	"context"

	"mindful/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserDAO struct {
	DB *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{DB: db}
}

// GetBySessionID returns the user owning the session id, or nil when none
// exists.
func (dao *UserDAO) GetBySessionID(ctx context.Context, sessionID string) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).Where("session_id = ?", sessionID).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetOrCreateBySession looks the session up, creating the user on first
// contact and touching last_active on every subsequent one. Creation and
// touch are explicit so the unique index on session_id catches races.
func (dao *UserDAO) GetOrCreateBySession(ctx context.Context, sessionID string) (*models.User, error) {
	user, err := dao.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		created := models.User{
			ID:        uuid.New().String(),
			SessionID: sessionID,
		}
		if err := dao.DB.WithContext(ctx).Create(&created).Error; err != nil {
			return nil, err
		}
		return &created, nil
	}
	if err := dao.DB.WithContext(ctx).Model(user).Update("last_active", gorm.Expr("CURRENT_TIMESTAMP")).Error; err != nil {
		return nil, err
	}
	return user, nil
}
