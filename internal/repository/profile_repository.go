package repository

import (
	"career_path_backend/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) FindByID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.DB.WithContext(ctx).Where("id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Exists(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Profile{}).Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *ProfileRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var profile model.Profile
	err := r.DB.WithContext(ctx).Select("id").Where("username = ?", username).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}
