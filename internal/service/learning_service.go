package service

import (
	"career_path_backend/internal/catalog"
	"career_path_backend/internal/model"
	"career_path_backend/internal/repository"
	"career_path_backend/internal/util"
	"career_path_backend/pkg/logger"
	"career_path_backend/pkg/monitoring"
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

const (
	videoWeight = 15
	quizWeight  = 5
)

// ProgressPercent 每个视频满分 20：看完 15 分，测验通过 5 分
func ProgressPercent(videos, completedVideos, passedQuizzes int) int {
	if videos <= 0 {
		return 0
	}
	earned := completedVideos*videoWeight + passedQuizzes*quizWeight
	return int(math.Round(100 * float64(earned) / float64(videos*(videoWeight+quizWeight))))
}

type QuizView struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type VideoView struct {
	catalog.Video
	Completed   bool      `json:"completed"`
	QuizPassed  bool      `json:"quizPassed"`
	Locked      bool      `json:"locked"`
	CanTakeQuiz bool      `json:"canTakeQuiz"`
	Quiz        *QuizView `json:"quiz,omitempty"`
}

type ModuleView struct {
	Career      catalog.CareerPath `json:"career"`
	Level       catalog.Level      `json:"level"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Videos      []VideoView        `json:"videos"`
	Progress    int                `json:"progress"`
	Completed   bool               `json:"completed"`
}

type VideoCompletion struct {
	VideoID         string     `json:"videoId"`
	CompletedAt     *time.Time `json:"completedAt"`
	ModuleProgress  int        `json:"moduleProgress"`
	ModuleCompleted bool       `json:"moduleCompleted"`
}

type QuizOutcome struct {
	VideoID         string `json:"videoId"`
	Passed          bool   `json:"passed"`
	Score           int    `json:"score"`
	ModuleProgress  int    `json:"moduleProgress"`
	ModuleCompleted bool   `json:"moduleCompleted"`
}

// moduleState 用户在一个模块中的完成情况
type moduleState struct {
	module    *catalog.Module
	completed map[string]bool
	passed    map[string]bool
}

func (m *moduleState) counts() (videos, quizzes int) {
	for _, v := range m.module.Videos {
		if m.completed[v.ID] {
			videos++
		}
		if m.passed[v.ID] {
			quizzes++
		}
	}
	return videos, quizzes
}

func (m *moduleState) progress() int {
	v, q := m.counts()
	return ProgressPercent(len(m.module.Videos), v, q)
}

func (m *moduleState) done() bool {
	v, q := m.counts()
	return v == len(m.module.Videos) && q == len(m.module.Videos)
}

// unlocked 第一个视频总是解锁，其余视频需要前一个视频已完成
func (m *moduleState) unlocked(index int) bool {
	return index == 0 || m.completed[m.module.Videos[index-1].ID]
}

type LearningService struct {
	MockTestRepo *repository.MockTestRepository
	ProgressRepo *repository.LearningProgressRepository
	VideoRepo    *repository.VideoProgressRepository
	QuizRepo     *repository.QuizResultRepository
}

func NewLearningService(
	mockTestRepo *repository.MockTestRepository,
	progressRepo *repository.LearningProgressRepository,
	videoRepo *repository.VideoProgressRepository,
	quizRepo *repository.QuizResultRepository,
) *LearningService {
	return &LearningService{
		MockTestRepo: mockTestRepo,
		ProgressRepo: progressRepo,
		VideoRepo:    videoRepo,
		QuizRepo:     quizRepo,
	}
}

func (s *LearningService) loadState(ctx context.Context, userID string, module *catalog.Module) (*moduleState, error) {
	ids := make([]string, len(module.Videos))
	for i, v := range module.Videos {
		ids[i] = v.ID
	}

	completed, err := s.VideoRepo.CompletedVideos(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	passed, err := s.QuizRepo.PassedVideos(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	return &moduleState{module: module, completed: completed, passed: passed}, nil
}

// ResolveLevel levelName 为空时按最近一次测试成绩定级，没有成绩时为初级
func (s *LearningService) ResolveLevel(ctx context.Context, userID string, career catalog.CareerPath, levelName string) (catalog.Level, error) {
	if levelName != "" {
		return catalog.ParseLevel(levelName)
	}
	latest, err := s.MockTestRepo.Latest(ctx, userID, career.String())
	if err != nil {
		return "", err
	}
	if latest == nil {
		return catalog.Beginner, nil
	}
	return catalog.LevelForScore(latest.Score), nil
}

func (s *LearningService) GetModule(ctx context.Context, userID, careerName, levelName string) (*ModuleView, error) {
	career, err := catalog.ParseCareerPath(careerName)
	if err != nil {
		return nil, err
	}
	level, err := s.ResolveLevel(ctx, userID, career, levelName)
	if err != nil {
		return nil, err
	}
	module, err := catalog.GetModule(career, level)
	if err != nil {
		return nil, err
	}

	state, err := s.loadState(ctx, userID, module)
	if err != nil {
		return nil, err
	}

	view := &ModuleView{
		Career:      career,
		Level:       level,
		Name:        module.Name,
		Description: module.Description,
		Videos:      make([]VideoView, len(module.Videos)),
		Progress:    state.progress(),
		Completed:   state.done(),
	}
	for i, v := range module.Videos {
		vv := VideoView{
			Video:      v,
			Completed:  state.completed[v.ID],
			QuizPassed: state.passed[v.ID],
			Locked:     !state.unlocked(i),
		}
		vv.CanTakeQuiz = vv.Completed && !vv.QuizPassed
		if q, ok := module.QuizFor(v.ID); ok {
			vv.Quiz = &QuizView{ID: q.ID, Question: q.Question, Options: q.Options}
		}
		view.Videos[i] = vv
	}
	return view, nil
}

// moduleForVideo 返回视频所在模块与用户当前状态
func (s *LearningService) moduleForVideo(ctx context.Context, userID, videoID string) (catalog.VideoRef, *moduleState, error) {
	ref, err := catalog.LookupVideo(videoID)
	if err != nil {
		return ref, nil, err
	}
	module, err := catalog.GetModule(ref.Career, ref.Level)
	if err != nil {
		return ref, nil, err
	}
	state, err := s.loadState(ctx, userID, module)
	if err != nil {
		return ref, nil, err
	}
	return ref, state, nil
}

// CheckUnlocked 视频被锁定时返回 ErrVideoLocked
func (s *LearningService) CheckUnlocked(ctx context.Context, userID, videoID string) (catalog.VideoRef, error) {
	ref, state, err := s.moduleForVideo(ctx, userID, videoID)
	if err != nil {
		return ref, err
	}
	if !state.unlocked(ref.Index) {
		return ref, util.ErrVideoLocked
	}
	return ref, nil
}

// MarkVideoComplete 幂等：重复调用只刷新完成时间
func (s *LearningService) MarkVideoComplete(ctx context.Context, userID, videoID string) (*VideoCompletion, error) {
	ref, state, err := s.moduleForVideo(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	if !state.unlocked(ref.Index) {
		return nil, util.ErrVideoLocked
	}

	progress, err := s.VideoRepo.MarkCompleted(ctx, userID, videoID)
	if err != nil {
		logger.Log.Error("mark video complete failed",
			zap.String("user_id", userID),
			zap.String("video_id", videoID),
			zap.Error(err),
		)
		return nil, err
	}
	monitoring.VideosCompleted.Inc()

	state.completed[videoID] = true
	done, err := s.syncModuleCompletion(ctx, userID, ref, state)
	if err != nil {
		return nil, err
	}
	return &VideoCompletion{
		VideoID:         videoID,
		CompletedAt:     progress.CompletedAt,
		ModuleProgress:  state.progress(),
		ModuleCompleted: done,
	}, nil
}

// SubmitQuiz 视频完成且测验尚未通过时才能作答，结果只记 100 或 0
func (s *LearningService) SubmitQuiz(ctx context.Context, userID, videoID, answer string) (*QuizOutcome, error) {
	ref, state, err := s.moduleForVideo(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	quiz, ok := state.module.QuizFor(videoID)
	if !ok {
		return nil, util.ErrQuizNotFound
	}
	if !state.completed[videoID] {
		return nil, util.ErrQuizLocked
	}
	if state.passed[videoID] {
		return nil, util.ErrQuizAlreadyPassed
	}
	if !containsOption(quiz.Options, answer) {
		return nil, util.NewValidationError(fmt.Sprintf("%q is not one of the options", answer))
	}

	result := &model.QuizResult{
		UserID:     userID,
		VideoID:    videoID,
		CareerPath: ref.Career.String(),
		Score:      0,
	}
	if answer == quiz.CorrectAnswer {
		result.Score = 100
	}
	if err := s.QuizRepo.Create(ctx, result); err != nil {
		logger.Log.Error("save quiz result failed",
			zap.String("user_id", userID),
			zap.String("video_id", videoID),
			zap.Error(err),
		)
		return nil, err
	}

	label := "failed"
	if result.Passed() {
		label = "passed"
		state.passed[videoID] = true
	}
	monitoring.QuizSubmissions.WithLabelValues(label).Inc()

	done, err := s.syncModuleCompletion(ctx, userID, ref, state)
	if err != nil {
		return nil, err
	}
	return &QuizOutcome{
		VideoID:         videoID,
		Passed:          result.Passed(),
		Score:           result.Score,
		ModuleProgress:  state.progress(),
		ModuleCompleted: done,
	}, nil
}

// syncModuleCompletion 全部视频完成且测验全部通过时，把模块的学习进度标记为完成
func (s *LearningService) syncModuleCompletion(ctx context.Context, userID string, ref catalog.VideoRef, state *moduleState) (bool, error) {
	if !state.done() {
		return false, nil
	}
	if err := s.ProgressRepo.MarkCompleted(ctx, userID, ref.Career.String(), state.module.Name); err != nil {
		logger.Log.Error("mark module complete failed",
			zap.String("user_id", userID),
			zap.String("career", ref.Career.String()),
			zap.String("module", state.module.Name),
			zap.Error(err),
		)
		return false, err
	}
	return true, nil
}
