package service

import (
	"career_path_backend/internal/catalog"
	"career_path_backend/internal/model"
	"career_path_backend/internal/repository"
	"career_path_backend/internal/util"
	"career_path_backend/pkg/logger"
	"career_path_backend/pkg/monitoring"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type CareerService struct {
	ProfileRepo   *repository.ProfileRepository
	SelectionRepo *repository.CareerSelectionRepository
	Sessions      repository.SessionStore
	SessionTTL    time.Duration
}

func NewCareerService(
	profileRepo *repository.ProfileRepository,
	selectionRepo *repository.CareerSelectionRepository,
	sessions repository.SessionStore,
	sessionTTL time.Duration,
) *CareerService {
	return &CareerService{
		ProfileRepo:   profileRepo,
		SelectionRepo: selectionRepo,
		Sessions:      sessions,
		SessionTTL:    sessionTTL,
	}
}

// SelectCareers 为用户保存两个职业，每个用户只能保存一次
func (s *CareerService) SelectCareers(ctx context.Context, userID string, careers []string, mode model.SelectionMode) (*model.CareerSelection, error) {
	picks, err := parseCareerPair(careers)
	if err != nil {
		return nil, err
	}
	if !mode.Valid() {
		return nil, util.NewValidationError(fmt.Sprintf("unknown selection mode %q", mode))
	}

	hasProfile, err := s.ProfileRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !hasProfile {
		return nil, util.ErrProfileMissing
	}

	existing, err := s.SelectionRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, util.ErrSelectionMissing) {
		return nil, err
	}
	if existing != nil {
		return nil, util.ErrAlreadySelected
	}

	selection := &model.CareerSelection{
		UserID:        userID,
		CareerPath1:   picks[0].String(),
		CareerPath2:   picks[1].String(),
		SelectionMode: mode,
	}
	// 并发提交时由唯一索引兜底
	if err := s.SelectionRepo.Create(ctx, selection); err != nil {
		if !errors.Is(err, util.ErrAlreadySelected) && !errors.Is(err, util.ErrProfileMissing) {
			logger.Log.Error("save career selection failed",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	monitoring.CareerSelections.WithLabelValues(string(mode)).Inc()
	logger.Log.Info("career paths selected",
		zap.String("user_id", userID),
		zap.Strings("careers", selection.Careers()),
		zap.String("mode", string(mode)),
	)
	return selection, nil
}

func (s *CareerService) GetSelection(ctx context.Context, userID string) (*model.CareerSelection, error) {
	return s.SelectionRepo.FindByUserID(ctx, userID)
}

func parseCareerPair(careers []string) ([]catalog.CareerPath, error) {
	if len(careers) != MaxCareerPicks {
		return nil, util.NewValidationError("please select exactly two career paths")
	}
	picks := make([]catalog.CareerPath, 0, len(careers))
	for _, name := range careers {
		c, err := catalog.ParseCareerPath(name)
		if err != nil {
			return nil, util.NewValidationError(fmt.Sprintf("unknown career path %q", name))
		}
		picks = append(picks, c)
	}
	if picks[0] == picks[1] {
		return nil, util.NewValidationError("the two career paths must be different")
	}
	return picks, nil
}

func manualDraftKey(userID string) string {
	return "manual:" + userID
}

// ToggleManual 在手动选择草稿中切换一个职业
func (s *CareerService) ToggleManual(ctx context.Context, userID, career string) ([]string, error) {
	c, err := catalog.ParseCareerPath(career)
	if err != nil {
		return nil, util.NewValidationError(fmt.Sprintf("unknown career path %q", career))
	}

	var picker ManualPicker
	if _, err := s.Sessions.Load(ctx, manualDraftKey(userID), &picker); err != nil {
		return nil, err
	}
	picker.Toggle(c)
	if err := s.Sessions.Save(ctx, manualDraftKey(userID), picker, s.SessionTTL); err != nil {
		return nil, err
	}
	return careerNames(picker.Picks), nil
}

func (s *CareerService) ManualDraft(ctx context.Context, userID string) ([]string, error) {
	var picker ManualPicker
	if _, err := s.Sessions.Load(ctx, manualDraftKey(userID), &picker); err != nil {
		return nil, err
	}
	return careerNames(picker.Picks), nil
}

// ConfirmManual 提交手动选择草稿，成功后清除草稿
func (s *CareerService) ConfirmManual(ctx context.Context, userID string) (*model.CareerSelection, error) {
	var picker ManualPicker
	if _, err := s.Sessions.Load(ctx, manualDraftKey(userID), &picker); err != nil {
		return nil, err
	}

	selection, err := s.SelectCareers(ctx, userID, careerNames(picker.Picks), model.SelectionModeManual)
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.Delete(ctx, manualDraftKey(userID)); err != nil {
		logger.Log.Warn("clear manual draft failed", zap.String("user_id", userID), zap.Error(err))
	}
	return selection, nil
}
