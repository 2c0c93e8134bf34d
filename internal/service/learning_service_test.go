package service

import (
	"career_path_backend/internal/catalog"
	"career_path_backend/internal/model"
	"career_path_backend/internal/util"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		n, videos, quizzes, want int
	}{
		{5, 0, 0, 0},
		{5, 1, 0, 15},
		{5, 1, 1, 20},
		{5, 3, 2, 55},
		{5, 5, 4, 95},
		{5, 5, 5, 100},
		{3, 1, 0, 25},
		{3, 2, 1, 58},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProgressPercent(tt.n, tt.videos, tt.quizzes), "%d/%d/%d", tt.n, tt.videos, tt.quizzes)
	}
}

func TestProgressPercentMonotonic(t *testing.T) {
	const n = 5
	prev := 0
	for v := 0; v <= n; v++ {
		for q := 0; q <= v; q++ {
			p := ProgressPercent(n, v, q)
			assert.GreaterOrEqual(t, p, prev, "v=%d q=%d", v, q)
			prev = p
		}
		prev = ProgressPercent(n, v, 0)
	}
	assert.Equal(t, 100, ProgressPercent(n, n, n))
}

func TestSequentialGating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := f.register(t, "a@example.com", "alice")

	view, err := f.learning.GetModule(ctx, userID, "Software Engineer", "beginner")
	require.NoError(t, err)
	require.Len(t, view.Videos, 5)
	assert.False(t, view.Videos[0].Locked)
	for _, v := range view.Videos[1:] {
		assert.True(t, v.Locked, v.ID)
	}

	_, err = f.learning.MarkVideoComplete(ctx, userID, "se_b_3")
	assert.ErrorIs(t, err, util.ErrVideoLocked)

	_, err = f.learning.MarkVideoComplete(ctx, userID, "se_b_1")
	require.NoError(t, err)

	view, err = f.learning.GetModule(ctx, userID, "Software Engineer", "beginner")
	require.NoError(t, err)
	assert.True(t, view.Videos[0].Completed)
	assert.True(t, view.Videos[0].CanTakeQuiz)
	assert.False(t, view.Videos[1].Locked)
	assert.True(t, view.Videos[2].Locked, "video 2 stays locked while video 1 is incomplete")

	_, err = f.learning.MarkVideoComplete(ctx, userID, "se_b_3")
	assert.ErrorIs(t, err, util.ErrVideoLocked)
}

func TestMarkVideoCompleteIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := f.register(t, "a@example.com", "alice")

	first, err := f.learning.MarkVideoComplete(ctx, userID, "cs_b_1")
	require.NoError(t, err)
	second, err := f.learning.MarkVideoComplete(ctx, userID, "cs_b_1")
	require.NoError(t, err)
	assert.Equal(t, first.ModuleProgress, second.ModuleProgress)

	rows, err := f.videos.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = f.learning.MarkVideoComplete(ctx, userID, "unknown")
	assert.ErrorIs(t, err, catalog.ErrVideoNotFound)
}

func TestSubmitQuizRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := f.register(t, "a@example.com", "alice")

	module, err := catalog.GetModule(catalog.DataScientist, catalog.Beginner)
	require.NoError(t, err)
	quiz, ok := module.QuizFor("ds_b_1")
	require.True(t, ok)
	wrong := quiz.Options[len(quiz.Options)-1]
	require.NotEqual(t, quiz.CorrectAnswer, wrong)

	_, err = f.learning.SubmitQuiz(ctx, userID, "ds_b_1", quiz.CorrectAnswer)
	assert.ErrorIs(t, err, util.ErrQuizLocked)

	_, err = f.learning.MarkVideoComplete(ctx, userID, "ds_b_1")
	require.NoError(t, err)

	_, err = f.learning.SubmitQuiz(ctx, userID, "ds_b_1", "not an option")
	assert.ErrorIs(t, err, util.ErrValidation)

	outcome, err := f.learning.SubmitQuiz(ctx, userID, "ds_b_1", wrong)
	require.NoError(t, err)
	assert.False(t, outcome.Passed)
	assert.Equal(t, 0, outcome.Score)
	assert.Equal(t, 15, outcome.ModuleProgress)

	outcome, err = f.learning.SubmitQuiz(ctx, userID, "ds_b_1", quiz.CorrectAnswer)
	require.NoError(t, err)
	assert.True(t, outcome.Passed)
	assert.Equal(t, 100, outcome.Score)
	assert.Equal(t, 20, outcome.ModuleProgress)

	_, err = f.learning.SubmitQuiz(ctx, userID, "ds_b_1", quiz.CorrectAnswer)
	assert.ErrorIs(t, err, util.ErrQuizAlreadyPassed)

	view, err := f.learning.GetModule(ctx, userID, "Data Scientist", "beginner")
	require.NoError(t, err)
	assert.True(t, view.Videos[0].QuizPassed)
	assert.False(t, view.Videos[0].CanTakeQuiz)
	assert.Equal(t, 20, view.Progress)
}

func TestModuleCompletionFlipsLearningProgress(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := f.register(t, "a@example.com", "alice")

	module, err := catalog.GetModule(catalog.SoftwareEngineer, catalog.Intermediate)
	require.NoError(t, err)
	require.NoError(t, f.progress.CreateBatch(ctx, []model.LearningProgress{{
		UserID: userID, CareerPath: "Software Engineer", ModuleName: module.Name, Level: "intermediate",
	}}))

	var outcome *QuizOutcome
	for _, v := range module.Videos {
		_, err := f.learning.MarkVideoComplete(ctx, userID, v.ID)
		require.NoError(t, err)
		quiz, ok := module.QuizFor(v.ID)
		require.True(t, ok)
		outcome, err = f.learning.SubmitQuiz(ctx, userID, v.ID, quiz.CorrectAnswer)
		require.NoError(t, err)
	}
	assert.Equal(t, 100, outcome.ModuleProgress)
	assert.True(t, outcome.ModuleCompleted)

	rows, err := f.progress.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].CompletionStatus)

	view, err := f.learning.GetModule(ctx, userID, "Software Engineer", "intermediate")
	require.NoError(t, err)
	assert.True(t, view.Completed)
	assert.Equal(t, 100, view.Progress)
}

func TestGetModuleLevelResolution(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := f.register(t, "a@example.com", "alice")

	view, err := f.learning.GetModule(ctx, userID, "Cybersecurity Analyst", "")
	require.NoError(t, err)
	assert.Equal(t, catalog.Beginner, view.Level)

	require.NoError(t, f.mockTests.Create(ctx, &model.MockTestResult{UserID: userID, CareerPath: "Cybersecurity Analyst", Score: 75}))
	view, err = f.learning.GetModule(ctx, userID, "Cybersecurity Analyst", "")
	require.NoError(t, err)
	assert.Equal(t, catalog.Intermediate, view.Level)
	assert.Equal(t, "Advanced Security", view.Name)

	_, err = f.learning.GetModule(ctx, userID, "Software Engineer", "advanced")
	assert.ErrorIs(t, err, catalog.ErrModuleNotFound)

	_, err = f.learning.GetModule(ctx, userID, "Nurse", "beginner")
	assert.ErrorIs(t, err, catalog.ErrModuleNotFound)

	_, err = f.learning.GetModule(ctx, userID, "Astronaut", "beginner")
	assert.ErrorIs(t, err, catalog.ErrCareerNotFound)

	_, err = f.learning.GetModule(ctx, userID, "Software Engineer", "expert")
	assert.ErrorIs(t, err, catalog.ErrLevelNotFound)
}

// 注册 -> 手动选择 -> 软件工程 55 分 -> 初级模块 -> 完成第一个视频得 15%
func TestEndToEndScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := f.register(t, "student@example.com", "student")

	for _, c := range []string{"Software Engineer", "Data Scientist"} {
		_, err := f.careers.ToggleManual(ctx, userID, c)
		require.NoError(t, err)
	}
	selection, err := f.careers.ConfirmManual(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, model.SelectionModeManual, selection.SelectionMode)

	outcome, err := f.diagnostic.RecordScore(ctx, userID, catalog.SoftwareEngineer, 55)
	require.NoError(t, err)
	assert.Equal(t, catalog.Beginner, outcome.Level)
	assert.Equal(t, []string{"Programming Fundamentals"}, outcome.SeededModules)

	rows, err := f.progress.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Programming Fundamentals", rows[0].ModuleName)
	assert.False(t, rows[0].CompletionStatus)

	completion, err := f.learning.MarkVideoComplete(ctx, userID, "se_b_1")
	require.NoError(t, err)
	assert.Equal(t, 15, completion.ModuleProgress)

	view, err := f.learning.GetModule(ctx, userID, "Software Engineer", "")
	require.NoError(t, err)
	assert.Equal(t, "Programming Fundamentals", view.Name)
	assert.Equal(t, 15, view.Progress)
}
