package repository

import (
	"career_path_backend/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type LearningProgressRepository struct {
	DB *gorm.DB
}

func NewLearningProgressRepository(db *gorm.DB) *LearningProgressRepository {
	return &LearningProgressRepository{DB: db}
}

func (r *LearningProgressRepository) WithTx(tx *gorm.DB) *LearningProgressRepository {
	return &LearningProgressRepository{DB: tx}
}

func (r *LearningProgressRepository) CreateBatch(ctx context.Context, rows []model.LearningProgress) error {
	if len(rows) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Create(&rows).Error
}

func (r *LearningProgressRepository) ListByUser(ctx context.Context, userID string) ([]model.LearningProgress, error) {
	var rows []model.LearningProgress
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *LearningProgressRepository) CountByCareer(ctx context.Context, userID, careerPath string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.LearningProgress{}).
		Where("user_id = ? AND career_path = ?", userID, careerPath).
		Count(&count).Error
	return count, err
}

func (r *LearningProgressRepository) ExistsModule(ctx context.Context, userID, careerPath, moduleName string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.LearningProgress{}).
		Where("user_id = ? AND career_path = ? AND module_name = ?", userID, careerPath, moduleName).
		Count(&count).Error
	return count > 0, err
}

// MarkCompleted 把模块标记为完成；行不存在时不做任何事
func (r *LearningProgressRepository) MarkCompleted(ctx context.Context, userID, careerPath, moduleName string) error {
	now := time.Now()
	return r.DB.WithContext(ctx).Model(&model.LearningProgress{}).
		Where("user_id = ? AND career_path = ? AND module_name = ? AND completion_status = ?", userID, careerPath, moduleName, false).
		Updates(map[string]interface{}{
			"completion_status": true,
			"completed_at":      &now,
		}).Error
}
