package service

import (
	"career_path_backend/internal/catalog"
	"career_path_backend/internal/model"
	"career_path_backend/internal/repository"
	"career_path_backend/internal/util"
	"career_path_backend/pkg/logger"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

type DialogueState string

const (
	StateGreeting         DialogueState = "greeting"
	StateSubjectChosen    DialogueState = "subject_chosen"
	StatePreferenceChosen DialogueState = "preference_chosen"
	StateCareersOffered   DialogueState = "careers_offered"
	StateConfirmed        DialogueState = "confirmed"
)

type DialogueEvent string

const (
	EventChooseSubject    DialogueEvent = "subject"
	EventChoosePreference DialogueEvent = "preference"
	EventChooseStrength   DialogueEvent = "strength"
	EventToggleCareer     DialogueEvent = "toggle"
	EventConfirm          DialogueEvent = "confirm"
)

// 对话状态转移表，表中没有的 (状态, 事件) 组合一律拒绝
var dialogueTransitions = map[DialogueState]map[DialogueEvent]DialogueState{
	StateGreeting:         {EventChooseSubject: StateSubjectChosen},
	StateSubjectChosen:    {EventChoosePreference: StatePreferenceChosen},
	StatePreferenceChosen: {EventChooseStrength: StateCareersOffered},
	StateCareersOffered: {
		EventToggleCareer: StateCareersOffered,
		EventConfirm:      StateConfirmed,
	},
}

// 各状态下“选择一个选项”对应的事件
var choiceEvents = map[DialogueState]DialogueEvent{
	StateGreeting:         EventChooseSubject,
	StateSubjectChosen:    EventChoosePreference,
	StatePreferenceChosen: EventChooseStrength,
}

func nextDialogueState(from DialogueState, event DialogueEvent) (DialogueState, error) {
	to, ok := dialogueTransitions[from][event]
	if !ok {
		return "", fmt.Errorf("%w: %s from %s", util.ErrInvalidTransition, event, from)
	}
	return to, nil
}

type DialogueMessage struct {
	From string `json:"from"` // bot | user
	Text string `json:"text"`
}

// DialogueSession 保存在会话存储中的对话进度
type DialogueSession struct {
	State      DialogueState     `json:"state"`
	Subject    string            `json:"subject,omitempty"`
	Preference string            `json:"preference,omitempty"`
	Strength   string            `json:"strength,omitempty"`
	Picker     ScriptedPicker    `json:"picker"`
	Messages   []DialogueMessage `json:"messages"`
}

// Options 当前状态下可选的选项
func (d *DialogueSession) Options() []string {
	if d.State == StateGreeting {
		return catalog.SubjectNames()
	}
	subject, err := catalog.GetSubject(d.Subject)
	if err != nil {
		return nil
	}
	switch d.State {
	case StateSubjectChosen:
		return append([]string(nil), subject.Preferences...)
	case StatePreferenceChosen:
		return append([]string(nil), subject.Strengths...)
	case StateCareersOffered:
		return careerNames(subject.Careers)
	}
	return nil
}

func (d *DialogueSession) bot(format string, args ...interface{}) {
	d.Messages = append(d.Messages, DialogueMessage{From: "bot", Text: fmt.Sprintf(format, args...)})
}

func (d *DialogueSession) user(text string) {
	d.Messages = append(d.Messages, DialogueMessage{From: "user", Text: text})
}

type DialogueView struct {
	State    DialogueState     `json:"state"`
	Options  []string          `json:"options"`
	Selected []string          `json:"selected"`
	Messages []DialogueMessage `json:"messages"`
}

func (d *DialogueSession) View() *DialogueView {
	return &DialogueView{
		State:    d.State,
		Options:  d.Options(),
		Selected: careerNames(d.Picker.Picks),
		Messages: d.Messages,
	}
}

type DialogueService struct {
	ProfileRepo   *repository.ProfileRepository
	CareerService *CareerService
	Sessions      repository.SessionStore
	SessionTTL    time.Duration
	Advisor       Advisor
}

func NewDialogueService(
	profileRepo *repository.ProfileRepository,
	careerService *CareerService,
	sessions repository.SessionStore,
	sessionTTL time.Duration,
	advisor Advisor,
) *DialogueService {
	if advisor == nil {
		advisor = KeywordAdvisor{}
	}
	return &DialogueService{
		ProfileRepo:   profileRepo,
		CareerService: careerService,
		Sessions:      sessions,
		SessionTTL:    sessionTTL,
		Advisor:       advisor,
	}
}

func dialogueKey(userID string) string {
	return "dialogue:" + userID
}

func (s *DialogueService) load(ctx context.Context, userID string) (*DialogueSession, error) {
	var session DialogueSession
	ok, err := s.Sessions.Load(ctx, dialogueKey(userID), &session)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrDialogueNotStarted
	}
	return &session, nil
}

func (s *DialogueService) save(ctx context.Context, userID string, session *DialogueSession) error {
	return s.Sessions.Save(ctx, dialogueKey(userID), session, s.SessionTTL)
}

// Start 开始（或重新开始）一段对话
func (s *DialogueService) Start(ctx context.Context, userID string) (*DialogueView, error) {
	name := "there"
	if profile, err := s.ProfileRepo.FindByID(ctx, userID); err == nil && profile.Username != "" {
		name = profile.Username
	}

	session := &DialogueSession{State: StateGreeting}
	session.bot("Hello %s! Welcome to Parallel Skill Worlds. I'm your AI career guide, and I'm excited to help you discover your ideal career paths!", name)
	session.bot("Let's start by exploring your interests. Which of these fields excites you the most?")

	if err := s.save(ctx, userID, session); err != nil {
		return nil, err
	}
	return session.View(), nil
}

func (s *DialogueService) Get(ctx context.Context, userID string) (*DialogueView, error) {
	session, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return session.View(), nil
}

// Choose 在当前步骤选择一个选项：兴趣领域、偏好或优势
func (s *DialogueService) Choose(ctx context.Context, userID, option string) (*DialogueView, error) {
	session, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	event, ok := choiceEvents[session.State]
	if !ok {
		return nil, fmt.Errorf("%w: choose from %s", util.ErrInvalidTransition, session.State)
	}
	next, err := nextDialogueState(session.State, event)
	if err != nil {
		return nil, err
	}
	if !containsOption(session.Options(), option) {
		return nil, util.NewValidationError(fmt.Sprintf("%q is not one of the offered options", option))
	}

	session.user(option)
	switch event {
	case EventChooseSubject:
		subject, err := catalog.GetSubject(option)
		if err != nil {
			return nil, err
		}
		session.Subject = option
		session.bot("Excellent choice! %s What aspects of %s interest you the most?", subject.Description, option)
	case EventChoosePreference:
		session.Preference = option
		session.bot("That's fascinating! To help me recommend the best career paths, could you tell me what you consider your strongest skill in this area?")
	case EventChooseStrength:
		session.Strength = option
		subject, err := catalog.GetSubject(session.Subject)
		if err != nil {
			return nil, err
		}
		session.bot("Perfect! Based on your interests and strengths, here are three careers that align with your profile: %s. Please select two careers you'd like to explore further.",
			strings.Join(careerNames(subject.Careers), ", "))
	}
	session.State = next

	if err := s.save(ctx, userID, session); err != nil {
		return nil, err
	}
	return session.View(), nil
}

// Toggle 选中或取消一个推荐职业，已选两个时拒绝第三个
func (s *DialogueService) Toggle(ctx context.Context, userID, career string) (*DialogueView, error) {
	session, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := nextDialogueState(session.State, EventToggleCareer); err != nil {
		return nil, err
	}
	if !containsOption(session.Options(), career) {
		return nil, util.NewValidationError(fmt.Sprintf("%q is not one of the offered careers", career))
	}

	if err := session.Picker.Toggle(catalog.CareerPath(career)); err != nil {
		return nil, err
	}

	if err := s.save(ctx, userID, session); err != nil {
		return nil, err
	}
	return session.View(), nil
}

// Confirm 提交对话中选出的两个职业
func (s *DialogueService) Confirm(ctx context.Context, userID string) (*DialogueView, *model.CareerSelection, error) {
	session, err := s.load(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	next, err := nextDialogueState(session.State, EventConfirm)
	if err != nil {
		return nil, nil, err
	}
	if len(session.Picker.Picks) != MaxCareerPicks {
		return nil, nil, util.NewValidationError("please select exactly two career paths")
	}

	picks := careerNames(session.Picker.Picks)
	selection, err := s.CareerService.SelectCareers(ctx, userID, picks, model.SelectionModeAI)
	if err != nil {
		return nil, nil, err
	}

	session.user("I choose " + strings.Join(picks, " and "))
	session.bot("Outstanding choices! You've selected %s. Let's start with some personalized assessments and learning materials for these career paths.",
		strings.Join(picks, " and "))
	session.State = next

	if err := s.save(ctx, userID, session); err != nil {
		logger.Log.Warn("save confirmed dialogue failed", zap.String("user_id", userID), zap.Error(err))
	}
	return session.View(), selection, nil
}

// Ask 回答自由提问，不改变对话状态
func (s *DialogueService) Ask(ctx context.Context, userID, question string) (string, *DialogueView, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", nil, util.NewValidationError("question must not be empty")
	}

	session, err := s.load(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	reply, err := s.Advisor.Reply(ctx, question, session.Subject)
	if err != nil {
		logger.Log.Warn("advisor reply failed, using keyword reply",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		reply = keywordReply(question)
	}

	session.user(question)
	session.bot("%s", reply)
	if err := s.save(ctx, userID, session); err != nil {
		return "", nil, err
	}
	return reply, session.View(), nil
}

func containsOption(options []string, option string) bool {
	for _, o := range options {
		if o == option {
			return true
		}
	}
	return false
}
