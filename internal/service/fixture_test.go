package service

import (
	"career_path_backend/internal/config"
	"career_path_backend/internal/repository"
	"career_path_backend/internal/testutil"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db         *gorm.DB
	cfg        *config.Config
	sessions   *repository.MemorySessionStore
	auth       *AuthService
	careers    *CareerService
	dialogue   *DialogueService
	diagnostic *DiagnosticService
	learning   *LearningService
	dashboard  *DashboardService
	progress   *repository.LearningProgressRepository
	videos     *repository.VideoProgressRepository
	quizzes    *repository.QuizResultRepository
	mockTests  *repository.MockTestRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	cfg := &config.Config{
		JWT:     config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
		Storage: config.StorageConfig{Type: "local", LocalPath: t.TempDir()},
	}
	sessions := repository.NewMemorySessionStore()
	ttl := time.Hour

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	selectionRepo := repository.NewCareerSelectionRepository(db)
	mockTests := repository.NewMockTestRepository(db)
	progress := repository.NewLearningProgressRepository(db)
	videos := repository.NewVideoProgressRepository(db)
	quizzes := repository.NewQuizResultRepository(db)

	f := &fixture{
		db:        db,
		cfg:       cfg,
		sessions:  sessions,
		progress:  progress,
		videos:    videos,
		quizzes:   quizzes,
		mockTests: mockTests,
	}
	f.auth = NewAuthService(userRepo, profileRepo, cfg)
	f.careers = NewCareerService(profileRepo, selectionRepo, sessions, ttl)
	f.dialogue = NewDialogueService(profileRepo, f.careers, sessions, ttl, nil)
	f.diagnostic = NewDiagnosticService(f.careers, mockTests, progress, sessions, ttl)
	f.learning = NewLearningService(mockTests, progress, videos, quizzes)
	f.dashboard = NewDashboardService(f.auth, f.careers, f.diagnostic, progress)
	return f
}

func (f *fixture) register(t *testing.T, email, username string) string {
	t.Helper()
	user, err := f.auth.Register(context.Background(), RegisterInput{
		Email:           email,
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Username:        username,
		FullName:        "Test Student",
		Age:             20,
		EducationLevel:  "undergraduate",
	})
	require.NoError(t, err)
	return user.ID
}

func (f *fixture) selectCareers(t *testing.T, userID string, careers ...string) {
	t.Helper()
	_, err := f.careers.SelectCareers(context.Background(), userID, careers, "manual")
	require.NoError(t, err)
}
