package repository

import (
	"career_path_backend/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type VideoProgressRepository struct {
	DB *gorm.DB
}

func NewVideoProgressRepository(db *gorm.DB) *VideoProgressRepository {
	return &VideoProgressRepository{DB: db}
}

// MarkCompleted 按 (user, video) 查找，存在则更新完成时间，否则插入
func (r *VideoProgressRepository) MarkCompleted(ctx context.Context, userID, videoID string) (*model.VideoProgress, error) {
	var progress model.VideoProgress
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		err := tx.Where("user_id = ? AND video_id = ?", userID, videoID).First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = model.VideoProgress{
				UserID:      userID,
				VideoID:     videoID,
				Completed:   true,
				CompletedAt: &now,
			}
			return tx.Create(&progress).Error
		}
		if err != nil {
			return err
		}

		progress.Completed = true
		progress.CompletedAt = &now
		return tx.Save(&progress).Error
	})
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// CompletedVideos 返回给定视频中已完成的集合
func (r *VideoProgressRepository) CompletedVideos(ctx context.Context, userID string, videoIDs []string) (map[string]bool, error) {
	var rows []model.VideoProgress
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND video_id IN ? AND completed = ?", userID, videoIDs, true).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	completed := make(map[string]bool, len(rows))
	for _, row := range rows {
		completed[row.VideoID] = true
	}
	return completed, nil
}

func (r *VideoProgressRepository) ListByUser(ctx context.Context, userID string) ([]model.VideoProgress, error) {
	var rows []model.VideoProgress
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("completed_at ASC").Find(&rows).Error
	return rows, err
}
