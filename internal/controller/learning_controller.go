package controller

import (
	"career_path_backend/internal/service"
	"career_path_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningController struct {
	LearningService *service.LearningService
	PlaybackService *service.PlaybackService
}

func NewLearningController(learning *service.LearningService, playback *service.PlaybackService) *LearningController {
	return &LearningController{
		LearningService: learning,
		PlaybackService: playback,
	}
}

type SubmitQuizRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// GetModule godoc
// @Summary 获取学习模块
// @Description 默认按最新测试分数确定级别，可用 level 参数覆盖
// @Tags 学习
// @Produce json
// @Security ApiKeyAuth
// @Param career path string true "职业名称"
// @Param level query string false "beginner | intermediate | advanced"
// @Success 200 {object} util.Response{data=service.ModuleView}
// @Failure 404 {object} util.Response
// @Router /learning/modules/{career} [get]
func (c *LearningController) GetModule(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	view, err := c.LearningService.GetModule(ctx.Request.Context(), userID, careerParam(ctx), ctx.Query("level"))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// StartPlayback godoc
// @Summary 开始播放视频
// @Description 播放时长结束后自动标记完成
// @Tags 学习
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path string true "视频ID"
// @Success 200 {object} util.Response{data=service.PlaybackStart}
// @Failure 409 {object} util.Response "视频未解锁"
// @Router /learning/videos/{videoId}/start [post]
func (c *LearningController) StartPlayback(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	start, err := c.PlaybackService.StartPlayback(ctx.Request.Context(), userID, ctx.Param("videoId"))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, start)
}

// CompleteVideo godoc
// @Summary 标记视频已看完
// @Tags 学习
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path string true "视频ID"
// @Success 200 {object} util.Response{data=service.VideoCompletion}
// @Failure 409 {object} util.Response "视频未解锁"
// @Router /learning/videos/{videoId}/complete [post]
func (c *LearningController) CompleteVideo(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	completion, err := c.LearningService.MarkVideoComplete(ctx.Request.Context(), userID, ctx.Param("videoId"))
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, completion)
}

// SubmitQuiz godoc
// @Summary 提交视频小测
// @Description 看完视频后才能作答，通过后不能再次提交
// @Tags 学习
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path string true "视频ID"
// @Param body body SubmitQuizRequest true "答案"
// @Success 200 {object} util.Response{data=service.QuizOutcome}
// @Failure 409 {object} util.Response
// @Router /learning/videos/{videoId}/quiz [post]
func (c *LearningController) SubmitQuiz(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	outcome, err := c.LearningService.SubmitQuiz(ctx.Request.Context(), userID, ctx.Param("videoId"), req.Answer)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, outcome)
}
