package controller

import (
	"career_path_backend/internal/service"
	"career_path_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// TestController 诊断测试
type TestController struct {
	DiagnosticService *service.DiagnosticService
}

func NewTestController(diagnosticService *service.DiagnosticService) *TestController {
	return &TestController{DiagnosticService: diagnosticService}
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

type FinalizeTestRequest struct {
	Career  string   `json:"career" binding:"required"`
	Answers []string `json:"answers"`
}

// StartTest godoc
// @Summary 开始诊断测试
// @Description 按已选职业依次出题，没有题目的职业直接记 0 分
// @Tags 测试
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.TestView}
// @Failure 412 {object} util.Response "尚未选择职业"
// @Router /tests/start [post]
func (c *TestController) StartTest(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	view, err := c.DiagnosticService.StartTest(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// Current godoc
// @Summary 当前题目
// @Tags 测试
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.TestView}
// @Router /tests/current [get]
func (c *TestController) Current(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	view, err := c.DiagnosticService.Current(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// SubmitAnswer godoc
// @Summary 回答当前题目
// @Tags 测试
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitAnswerRequest true "答案"
// @Success 200 {object} util.Response{data=service.AnswerResult}
// @Failure 409 {object} util.Response "该题已作答"
// @Router /tests/answer [post]
func (c *TestController) SubmitAnswer(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	result, err := c.DiagnosticService.SubmitAnswer(ctx.Request.Context(), userID, req.Answer)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Next godoc
// @Summary 下一题
// @Description 最后一题之后结算当前职业并切换到下一个职业
// @Tags 测试
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.TestView}
// @Failure 409 {object} util.Response "当前题目尚未作答"
// @Router /tests/next [post]
func (c *TestController) Next(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	view, err := c.DiagnosticService.AdvanceQuestion(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// Finalize godoc
// @Summary 一次性提交某个职业的全部答案
// @Tags 测试
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body FinalizeTestRequest true "职业与答案"
// @Success 201 {object} util.Response{data=service.TestOutcome}
// @Failure 400 {object} util.Response
// @Router /tests/finalize [post]
func (c *TestController) Finalize(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req FinalizeTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	outcome, err := c.DiagnosticService.FinalizeTest(ctx.Request.Context(), userID, req.Career, req.Answers)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, outcome)
}

// Results godoc
// @Summary 每个已选职业的最新测试结果
// @Tags 测试
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.CareerResult}
// @Router /tests/results [get]
func (c *TestController) Results(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	results, err := c.DiagnosticService.LatestResults(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, results)
}
