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
	"gorm.io/gorm"
)

// TestOutcome 一个职业的测试结果
type TestOutcome struct {
	Career        catalog.CareerPath `json:"career"`
	Score         int                `json:"score"`
	Level         catalog.Level      `json:"level"`
	SeededModules []string           `json:"seededModules"`
}

// TestSession 依次完成两个职业的诊断测试
type TestSession struct {
	Careers       []catalog.CareerPath `json:"careers"`
	CareerIndex   int                  `json:"careerIndex"`
	QuestionIndex int                  `json:"questionIndex"`
	Answers       []string             `json:"answers"`
	Finished      bool                 `json:"finished"`
	Outcomes      []TestOutcome        `json:"outcomes"`
}

func (t *TestSession) career() catalog.CareerPath {
	return t.Careers[t.CareerIndex]
}

func (t *TestSession) answered() bool {
	return len(t.Answers) > t.QuestionIndex
}

type TestView struct {
	Career         catalog.CareerPath `json:"career,omitempty"`
	CareerIndex    int                `json:"careerIndex"`
	QuestionIndex  int                `json:"questionIndex"`
	Total          int                `json:"total"`
	Question       *catalog.Question  `json:"question,omitempty"`
	Answered       bool               `json:"answered"`
	SelectedAnswer string             `json:"selectedAnswer,omitempty"`
	Finished       bool               `json:"finished"`
	Outcomes       []TestOutcome      `json:"outcomes"`
}

type AnswerResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
}

type CareerResult struct {
	Career  string        `json:"career"`
	Taken   bool          `json:"taken"`
	Score   int           `json:"score"`
	Level   catalog.Level `json:"level,omitempty"`
	TakenAt *time.Time    `json:"takenAt,omitempty"`
}

type DiagnosticService struct {
	CareerService *CareerService
	MockTestRepo  *repository.MockTestRepository
	ProgressRepo  *repository.LearningProgressRepository
	Sessions      repository.SessionStore
	SessionTTL    time.Duration
}

func NewDiagnosticService(
	careerService *CareerService,
	mockTestRepo *repository.MockTestRepository,
	progressRepo *repository.LearningProgressRepository,
	sessions repository.SessionStore,
	sessionTTL time.Duration,
) *DiagnosticService {
	return &DiagnosticService{
		CareerService: careerService,
		MockTestRepo:  mockTestRepo,
		ProgressRepo:  progressRepo,
		Sessions:      sessions,
		SessionTTL:    sessionTTL,
	}
}

func testKey(userID string) string {
	return "test:" + userID
}

// Score 正确率取整到 0-100；没有题目时为 0
func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// StartTest 按已选职业的顺序开始（或重新开始）诊断测试
func (s *DiagnosticService) StartTest(ctx context.Context, userID string) (*TestView, error) {
	selection, err := s.CareerService.GetSelection(ctx, userID)
	if err != nil {
		return nil, err
	}

	session := &TestSession{
		Careers: []catalog.CareerPath{
			catalog.CareerPath(selection.CareerPath1),
			catalog.CareerPath(selection.CareerPath2),
		},
	}
	if err := s.skipEmptyCareers(ctx, userID, session); err != nil {
		return nil, err
	}
	if err := s.save(ctx, userID, session); err != nil {
		return nil, err
	}
	return session.view(), nil
}

func (s *DiagnosticService) Current(ctx context.Context, userID string) (*TestView, error) {
	session, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return session.view(), nil
}

// SubmitAnswer 记录当前题目的答案，每题只能作答一次
func (s *DiagnosticService) SubmitAnswer(ctx context.Context, userID, answer string) (*AnswerResult, error) {
	session, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session.Finished {
		return nil, util.ErrTestFinished
	}
	if session.answered() {
		return nil, util.ErrQuestionAnswered
	}

	question := catalog.Questions(session.career())[session.QuestionIndex]
	if !containsOption(question.Options, answer) {
		return nil, util.NewValidationError(fmt.Sprintf("%q is not one of the options", answer))
	}

	session.Answers = append(session.Answers, answer)
	if err := s.save(ctx, userID, session); err != nil {
		return nil, err
	}
	return &AnswerResult{
		Correct:       answer == question.CorrectAnswer,
		CorrectAnswer: question.CorrectAnswer,
	}, nil
}

// AdvanceQuestion 进入下一题；当前职业最后一题之后自动评分并切换到下一个职业
func (s *DiagnosticService) AdvanceQuestion(ctx context.Context, userID string) (*TestView, error) {
	session, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session.Finished {
		return nil, util.ErrTestFinished
	}
	if !session.answered() {
		return nil, util.ErrQuestionUnanswered
	}

	total := len(catalog.Questions(session.career()))
	if session.QuestionIndex+1 < total {
		session.QuestionIndex++
	} else {
		outcome, err := s.FinalizeTest(ctx, userID, session.career().String(), session.Answers)
		if err != nil {
			return nil, err
		}
		session.Outcomes = append(session.Outcomes, *outcome)
		session.nextCareer()
		if err := s.skipEmptyCareers(ctx, userID, session); err != nil {
			return nil, err
		}
	}

	if err := s.save(ctx, userID, session); err != nil {
		return nil, err
	}
	return session.view(), nil
}

// FinalizeTest 按答案评分；缺少的答案按错误计
func (s *DiagnosticService) FinalizeTest(ctx context.Context, userID, careerName string, answers []string) (*TestOutcome, error) {
	career, err := catalog.ParseCareerPath(careerName)
	if err != nil {
		return nil, util.NewValidationError(fmt.Sprintf("unknown career path %q", careerName))
	}

	selection, err := s.CareerService.GetSelection(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !containsOption(selection.Careers(), career.String()) {
		return nil, util.NewValidationError(fmt.Sprintf("%s is not one of your selected career paths", career))
	}

	questions := catalog.Questions(career)
	if len(answers) > len(questions) {
		return nil, util.NewValidationError(fmt.Sprintf("expected at most %d answers, got %d", len(questions), len(answers)))
	}

	correct := 0
	for i, answer := range answers {
		if answer == questions[i].CorrectAnswer {
			correct++
		}
	}
	return s.RecordScore(ctx, userID, career, Score(correct, len(questions)))
}

// RecordScore 保存成绩并定级；成绩与该等级模块的初始化在同一事务内完成
func (s *DiagnosticService) RecordScore(ctx context.Context, userID string, career catalog.CareerPath, score int) (*TestOutcome, error) {
	if score < 0 || score > 100 {
		return nil, util.NewValidationError(fmt.Sprintf("score %d out of range", score))
	}

	level := catalog.LevelForScore(score)
	var seeded []string
	err := s.MockTestRepo.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.MockTestRepo.WithTx(tx).Create(ctx, &model.MockTestResult{
			UserID:     userID,
			CareerPath: career.String(),
			Score:      score,
		}); err != nil {
			return fmt.Errorf("save mock test result: %w", err)
		}

		var err error
		seeded, err = seedProgress(ctx, s.ProgressRepo.WithTx(tx), userID, career, level)
		if err != nil {
			return fmt.Errorf("seed learning progress: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Log.Error("record test score failed",
			zap.String("user_id", userID),
			zap.String("career", career.String()),
			zap.Int("score", score),
			zap.Error(err),
		)
		return nil, err
	}

	monitoring.TestsFinalized.WithLabelValues(career.String(), string(level)).Inc()
	return &TestOutcome{
		Career:        career,
		Score:         score,
		Level:         level,
		SeededModules: seeded,
	}, nil
}

// seedProgress 该等级的模块还没有进度行时创建，已有的行（包括完成状态）保持不变
func seedProgress(ctx context.Context, repo *repository.LearningProgressRepository, userID string, career catalog.CareerPath, level catalog.Level) ([]string, error) {
	name, ok := catalog.ModuleOutline(career, level)
	if !ok {
		return []string{}, nil
	}

	exists, err := repo.ExistsModule(ctx, userID, career.String(), name)
	if err != nil {
		return nil, err
	}
	if exists {
		return []string{}, nil
	}

	rows := []model.LearningProgress{{
		UserID:     userID,
		CareerPath: career.String(),
		ModuleName: name,
		Level:      string(level),
	}}
	if err := repo.CreateBatch(ctx, rows); err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// LatestResults 已选职业各自最近一次成绩
func (s *DiagnosticService) LatestResults(ctx context.Context, userID string) ([]CareerResult, error) {
	selection, err := s.CareerService.GetSelection(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := make([]CareerResult, 0, MaxCareerPicks)
	for _, career := range selection.Careers() {
		latest, err := s.MockTestRepo.Latest(ctx, userID, career)
		if err != nil {
			return nil, err
		}
		result := CareerResult{Career: career}
		if latest != nil {
			takenAt := latest.CreatedAt
			result.Taken = true
			result.Score = latest.Score
			result.Level = catalog.LevelForScore(latest.Score)
			result.TakenAt = &takenAt
		}
		results = append(results, result)
	}
	return results, nil
}

// skipEmptyCareers 没有题目的职业直接以 0 分完成
func (s *DiagnosticService) skipEmptyCareers(ctx context.Context, userID string, session *TestSession) error {
	for !session.Finished && len(catalog.Questions(session.career())) == 0 {
		outcome, err := s.FinalizeTest(ctx, userID, session.career().String(), nil)
		if err != nil {
			return err
		}
		session.Outcomes = append(session.Outcomes, *outcome)
		session.nextCareer()
	}
	return nil
}

func (t *TestSession) nextCareer() {
	t.CareerIndex++
	t.QuestionIndex = 0
	t.Answers = nil
	if t.CareerIndex >= len(t.Careers) {
		t.Finished = true
		t.CareerIndex = len(t.Careers) - 1
	}
}

func (t *TestSession) view() *TestView {
	v := &TestView{
		CareerIndex:   t.CareerIndex,
		QuestionIndex: t.QuestionIndex,
		Finished:      t.Finished,
		Outcomes:      t.Outcomes,
	}
	if v.Outcomes == nil {
		v.Outcomes = []TestOutcome{}
	}
	if t.Finished {
		return v
	}

	questions := catalog.Questions(t.career())
	v.Career = t.career()
	v.Total = len(questions)
	if t.QuestionIndex < len(questions) {
		q := questions[t.QuestionIndex]
		v.Question = &q
	}
	if t.answered() {
		v.Answered = true
		v.SelectedAnswer = t.Answers[t.QuestionIndex]
	}
	return v
}

func (s *DiagnosticService) load(ctx context.Context, userID string) (*TestSession, error) {
	var session TestSession
	ok, err := s.Sessions.Load(ctx, testKey(userID), &session)
	if err != nil {
		return nil, err
	}
	if !ok || len(session.Careers) == 0 {
		return nil, util.ErrTestNotStarted
	}
	return &session, nil
}

func (s *DiagnosticService) save(ctx context.Context, userID string, session *TestSession) error {
	return s.Sessions.Save(ctx, testKey(userID), session, s.SessionTTL)
}
