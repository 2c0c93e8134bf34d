package service

import (
	"career_path_backend/internal/catalog"
	"career_path_backend/internal/model"
	"career_path_backend/internal/repository"
	"career_path_backend/internal/util"
	"context"
	"errors"
)

type CareerDashboard struct {
	Result           CareerResult             `json:"result"`
	ModulesTotal     int                      `json:"modulesTotal"`
	ModulesCompleted int                      `json:"modulesCompleted"`
	Completion       int                      `json:"completion"`
	Modules          []model.LearningProgress `json:"modules"`
	Insight          *catalog.Insight         `json:"insight,omitempty"`
}

type Dashboard struct {
	Profile   *ProfileView           `json:"profile"`
	Selection *model.CareerSelection `json:"selection"`
	Careers   []CareerDashboard      `json:"careers"`
}

type DashboardService struct {
	Auth         *AuthService
	Careers      *CareerService
	Diagnostic   *DiagnosticService
	ProgressRepo *repository.LearningProgressRepository
}

func NewDashboardService(
	auth *AuthService,
	careers *CareerService,
	diagnostic *DiagnosticService,
	progressRepo *repository.LearningProgressRepository,
) *DashboardService {
	return &DashboardService{
		Auth:         auth,
		Careers:      careers,
		Diagnostic:   diagnostic,
		ProgressRepo: progressRepo,
	}
}

// GetDashboard 未选择职业时只返回资料
func (s *DashboardService) GetDashboard(ctx context.Context, userID string) (*Dashboard, error) {
	profile, err := s.Auth.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	dashboard := &Dashboard{Profile: profile, Careers: []CareerDashboard{}}

	selection, err := s.Careers.GetSelection(ctx, userID)
	if errors.Is(err, util.ErrSelectionMissing) {
		return dashboard, nil
	}
	if err != nil {
		return nil, err
	}
	dashboard.Selection = selection

	results, err := s.Diagnostic.LatestResults(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.ProgressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byCareer := make(map[string][]model.LearningProgress)
	for _, row := range rows {
		byCareer[row.CareerPath] = append(byCareer[row.CareerPath], row)
	}

	for _, result := range results {
		modules := byCareer[result.Career]
		if modules == nil {
			modules = []model.LearningProgress{}
		}
		entry := CareerDashboard{
			Result:       result,
			ModulesTotal: len(modules),
			Modules:      modules,
		}
		for _, m := range modules {
			if m.CompletionStatus {
				entry.ModulesCompleted++
			}
		}
		if entry.ModulesTotal > 0 {
			entry.Completion = entry.ModulesCompleted * 100 / entry.ModulesTotal
		}
		if insight, err := catalog.GetInsight(catalog.CareerPath(result.Career)); err == nil {
			entry.Insight = insight
		}
		dashboard.Careers = append(dashboard.Careers, entry)
	}
	return dashboard, nil
}
