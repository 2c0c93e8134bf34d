package controller

import (
	"career_path_backend/internal/service"
	"career_path_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DialogueController struct {
	DialogueService *service.DialogueService
}

func NewDialogueController(dialogueService *service.DialogueService) *DialogueController {
	return &DialogueController{DialogueService: dialogueService}
}

type ChooseOptionRequest struct {
	Option string `json:"option" binding:"required"`
}

type AskRequest struct {
	Question string `json:"question" binding:"required,max=500"`
}

// Start godoc
// @Summary 开始职业引导对话
// @Tags 对话
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.DialogueView}
// @Failure 412 {object} util.Response
// @Router /dialogue/start [post]
func (c *DialogueController) Start(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	view, err := c.DialogueService.Start(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// Get godoc
// @Summary 当前对话状态
// @Tags 对话
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.DialogueView}
// @Router /dialogue [get]
func (c *DialogueController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	view, err := c.DialogueService.Get(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// Choose godoc
// @Summary 选择对话选项
// @Tags 对话
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ChooseOptionRequest true "选项"
// @Success 200 {object} util.Response{data=service.DialogueView}
// @Failure 400 {object} util.Response "选项不在当前列表中"
// @Router /dialogue/choose [post]
func (c *DialogueController) Choose(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req ChooseOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	view, err := c.DialogueService.Choose(ctx.Request.Context(), userID, req.Option)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// Toggle godoc
// @Summary 切换推荐职业
// @Tags 对话
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ToggleCareerRequest true "职业"
// @Success 200 {object} util.Response{data=service.DialogueView}
// @Failure 409 {object} util.Response "最多选择两个职业"
// @Router /dialogue/toggle [post]
func (c *DialogueController) Toggle(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req ToggleCareerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	view, err := c.DialogueService.Toggle(ctx.Request.Context(), userID, req.Career)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// Confirm godoc
// @Summary 确认对话推荐的职业
// @Tags 对话
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=object}
// @Failure 409 {object} util.Response
// @Router /dialogue/confirm [post]
func (c *DialogueController) Confirm(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	view, selection, err := c.DialogueService.Confirm(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{
		"dialogue":  view,
		"selection": selection,
	})
}

// Ask godoc
// @Summary 自由提问
// @Description AI 不可用时使用关键词回答
// @Tags 对话
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AskRequest true "问题"
// @Success 200 {object} util.Response{data=object}
// @Router /dialogue/ask [post]
func (c *DialogueController) Ask(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	reply, view, err := c.DialogueService.Ask(ctx.Request.Context(), userID, req.Question)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"reply":    reply,
		"dialogue": view,
	})
}
