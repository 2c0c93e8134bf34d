package util

import "errors"

// 校验类错误，在访问存储之前返回
var ErrValidation = errors.New("validation failed")

// 存储层的其他失败，原始错误保留在消息里
var ErrRemoteFailure = errors.New("store request failed")

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailRegistered    = errors.New("an account with this email already exists")
	ErrUsernameTaken      = errors.New("username already taken")

	ErrProfileMissing     = errors.New("please complete your profile before selecting careers")
	ErrAlreadySelected    = errors.New("you have already selected your career paths")
	ErrSelectionMissing   = errors.New("career paths have not been selected yet")
	ErrTooManyCareers     = errors.New("two careers are already selected, deselect one first")
	ErrInvalidTransition  = errors.New("action not allowed at this step of the conversation")
	ErrDialogueNotStarted = errors.New("conversation has not been started")

	ErrTestNotStarted     = errors.New("test has not been started")
	ErrTestFinished       = errors.New("test already finished")
	ErrQuestionAnswered   = errors.New("question already answered")
	ErrQuestionUnanswered = errors.New("answer the current question first")

	ErrVideoLocked       = errors.New("video is locked until the previous video is completed")
	ErrQuizLocked        = errors.New("complete the video before taking its quiz")
	ErrQuizAlreadyPassed = errors.New("quiz already passed")
	ErrQuizNotFound      = errors.New("quiz not found")
)

// ValidationError 输入校验失败，带上可展示的原因
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}
