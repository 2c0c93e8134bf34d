package repository

import (
	"career_path_backend/internal/model"
	"context"

	"gorm.io/gorm"
)

type QuizResultRepository struct {
	DB *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) *QuizResultRepository {
	return &QuizResultRepository{DB: db}
}

func (r *QuizResultRepository) Create(ctx context.Context, result *model.QuizResult) error {
	return r.DB.WithContext(ctx).Create(result).Error
}

// PassedVideos 任一次得分 >= QuizPassScore 即视为该视频测验通过
func (r *QuizResultRepository) PassedVideos(ctx context.Context, userID string, videoIDs []string) (map[string]bool, error) {
	var passed []string
	err := r.DB.WithContext(ctx).Model(&model.QuizResult{}).
		Distinct("video_id").
		Where("user_id = ? AND video_id IN ? AND score >= ?", userID, videoIDs, model.QuizPassScore).
		Pluck("video_id", &passed).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]bool, len(passed))
	for _, id := range passed {
		out[id] = true
	}
	return out, nil
}

func (r *QuizResultRepository) ListByUser(ctx context.Context, userID string) ([]model.QuizResult, error) {
	var rows []model.QuizResult
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Order("id ASC").Find(&rows).Error
	return rows, err
}
