package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"time"

	"diamondstore/internal/models/db_models"
)

type UserRepositoryInterface interface {
	FindOrCreateByAlienID(alienID string, ctx context.Context) (*db_models.User, error)
}

func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{db: db}
}

type UserRepository struct {
	db *gorm.DB
}

// FindOrCreateByAlienID creates the row on a user's first authenticated
// request and bumps updated_at (last seen) on every later one.
func (u UserRepository) FindOrCreateByAlienID(alienID string, ctx context.Context) (*db_models.User, error) {

	var user db_models.User
	err := u.db.WithContext(ctx).Where("alien_id = ?", alienID).First(&user).Error
	if err == nil {
		if err := u.db.WithContext(ctx).Model(&user).
			Update("updated_at", time.Now().Unix()).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = db_models.User{AlienID: alienID}
	if err := u.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
