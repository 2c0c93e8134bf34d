package repository

import (
	"career_path_backend/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type MockTestRepository struct {
	DB *gorm.DB
}

func NewMockTestRepository(db *gorm.DB) *MockTestRepository {
	return &MockTestRepository{DB: db}
}

// WithTx 返回绑定到事务的副本
func (r *MockTestRepository) WithTx(tx *gorm.DB) *MockTestRepository {
	return &MockTestRepository{DB: tx}
}

func (r *MockTestRepository) Create(ctx context.Context, result *model.MockTestResult) error {
	return r.DB.WithContext(ctx).Create(result).Error
}

// ListByUser 按创建时间倒序，同一时间戳以自增 ID 决定先后
func (r *MockTestRepository) ListByUser(ctx context.Context, userID string) ([]model.MockTestResult, error) {
	var results []model.MockTestResult
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&results).Error
	return results, err
}

// Latest 返回最近一次成绩，没有记录时返回 nil
func (r *MockTestRepository) Latest(ctx context.Context, userID, careerPath string) (*model.MockTestResult, error) {
	var result model.MockTestResult
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND career_path = ?", userID, careerPath).
		Order("created_at DESC").
		Order("id DESC").
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
