package controller

import (
	"career_path_backend/internal/catalog"
	"career_path_backend/internal/util"
	"career_path_backend/pkg/logger"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	conflictErrors = []error{
		util.ErrAlreadySelected,
		util.ErrEmailRegistered,
		util.ErrUsernameTaken,
		util.ErrTooManyCareers,
		util.ErrInvalidTransition,
		util.ErrQuestionAnswered,
		util.ErrQuestionUnanswered,
		util.ErrTestFinished,
		util.ErrVideoLocked,
		util.ErrQuizLocked,
		util.ErrQuizAlreadyPassed,
	}

	preconditionErrors = []error{
		util.ErrProfileMissing,
		util.ErrSelectionMissing,
		util.ErrDialogueNotStarted,
		util.ErrTestNotStarted,
	}

	notFoundErrors = []error{
		util.ErrUserNotFound,
		util.ErrQuizNotFound,
		catalog.ErrCareerNotFound,
		catalog.ErrModuleNotFound,
		catalog.ErrVideoNotFound,
		catalog.ErrInsightNotFound,
		catalog.ErrSubjectNotFound,
	}
)

func matches(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// handleError 把业务错误映射为 HTTP 状态码，未知错误记录日志并返回 500
func handleError(ctx *gin.Context, err error) {
	var validationErr *util.ValidationError
	switch {
	case errors.As(err, &validationErr):
		util.BadRequest(ctx, validationErr.Reason)
	case errors.Is(err, util.ErrValidation), errors.Is(err, catalog.ErrLevelNotFound):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	case matches(err, conflictErrors):
		util.Conflict(ctx, err.Error())
	case matches(err, preconditionErrors):
		util.PreconditionFailed(ctx, err.Error())
	case matches(err, notFoundErrors):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrRemoteFailure):
		logger.Log.Error("Store request failed", zap.String("path", ctx.FullPath()), zap.Error(err))
		util.ServiceUnavailable(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// careerParam 职业名称可能含 "/"（如 UX/UI Designer），路由使用通配参数
func careerParam(ctx *gin.Context) string {
	return strings.TrimPrefix(ctx.Param("career"), "/")
}

// currentUserID 未登录时直接返回 401
func currentUserID(ctx *gin.Context) (string, bool) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return "", false
	}
	return user.UserID, true
}
