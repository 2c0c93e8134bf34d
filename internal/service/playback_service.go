package service

import (
	"career_path_backend/pkg/logger"
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// PlaybackStart 计时开始后返回给前端
type PlaybackStart struct {
	VideoID    string    `json:"videoId"`
	Duration   int       `json:"duration"`
	CompleteAt time.Time `json:"completeAt"`
}

// PlaybackService 模拟播放：视频开始后经过其时长自动标记完成，不代表真实观看
type PlaybackService struct {
	Learning  *LearningService
	scheduler *gocron.Scheduler
	now       func() time.Time
}

func NewPlaybackService(learning *LearningService) *PlaybackService {
	s := gocron.NewScheduler(time.UTC)
	return &PlaybackService{
		Learning:  learning,
		scheduler: s,
		now:       time.Now,
	}
}

func (s *PlaybackService) Start() {
	s.scheduler.StartAsync()
}

func (s *PlaybackService) Stop() {
	s.scheduler.Stop()
}

func playbackTag(userID, videoID string) string {
	return "playback:" + userID + ":" + videoID
}

// StartPlayback 重新开始同一视频时替换尚未触发的计时
func (s *PlaybackService) StartPlayback(ctx context.Context, userID, videoID string) (*PlaybackStart, error) {
	ref, err := s.Learning.CheckUnlocked(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}

	tag := playbackTag(userID, videoID)
	_ = s.scheduler.RemoveByTag(tag)

	delay := ref.Video.PlaybackDuration()
	_, err = s.scheduler.Every(delay).
		WaitForSchedule().
		LimitRunsTo(1).
		Tag(tag).
		DoWithJobDetails(s.complete, userID, videoID)
	if err != nil {
		return nil, err
	}

	return &PlaybackStart{
		VideoID:    videoID,
		Duration:   ref.Video.Duration,
		CompleteAt: s.now().Add(delay),
	}, nil
}

// complete 触发后按引用移除自身，不影响同一视频重新开始的新计时
func (s *PlaybackService) complete(userID, videoID string, job gocron.Job) {
	defer s.scheduler.RemoveByReference(&job)

	if _, err := s.Learning.MarkVideoComplete(context.Background(), userID, videoID); err != nil {
		logger.Log.Error("playback completion failed",
			zap.String("user_id", userID),
			zap.String("video_id", videoID),
			zap.Error(err),
		)
		return
	}
	logger.Log.Debug("playback completed", zap.String("user_id", userID), zap.String("video_id", videoID))
}

// Pending 返回尚未触发的计时数量
func (s *PlaybackService) Pending() int {
	return s.scheduler.Len()
}
