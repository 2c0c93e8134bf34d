package controller

import (
	"career_path_backend/internal/catalog"
	"career_path_backend/internal/model"
	"career_path_backend/internal/service"
	"career_path_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CareerController struct {
	CareerService *service.CareerService
}

func NewCareerController(careerService *service.CareerService) *CareerController {
	return &CareerController{CareerService: careerService}
}

// ListCareers godoc
// @Summary 职业分类目录
// @Tags 职业
// @Produce json
// @Success 200 {object} util.Response{data=[]catalog.Category}
// @Router /careers [get]
func (c *CareerController) ListCareers(ctx *gin.Context) {
	util.Success(ctx, catalog.Categories())
}

// GetInsight godoc
// @Summary 职业市场趋势
// @Tags 职业
// @Produce json
// @Param career path string true "职业名称"
// @Success 200 {object} util.Response{data=catalog.Insight}
// @Failure 404 {object} util.Response
// @Router /careers/insights/{career} [get]
func (c *CareerController) GetInsight(ctx *gin.Context) {
	career, err := catalog.ParseCareerPath(careerParam(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	insight, err := catalog.GetInsight(career)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, insight)
}

type SelectCareersRequest struct {
	Careers []string            `json:"careers" binding:"required"`
	Mode    model.SelectionMode `json:"mode" binding:"required"`
}

// SelectCareers godoc
// @Summary 保存两个职业选择
// @Description 每个用户只能保存一次
// @Tags 职业
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SelectCareersRequest true "职业与选择方式"
// @Success 201 {object} util.Response{data=model.CareerSelection}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "已选择过职业"
// @Failure 412 {object} util.Response "未填写个人资料"
// @Router /careers/selection [post]
func (c *CareerController) SelectCareers(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req SelectCareersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	selection, err := c.CareerService.SelectCareers(ctx.Request.Context(), userID, req.Careers, req.Mode)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, selection)
}

// GetSelection godoc
// @Summary 获取已保存的职业选择
// @Tags 职业
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.CareerSelection}
// @Failure 412 {object} util.Response
// @Router /careers/selection [get]
func (c *CareerController) GetSelection(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	selection, err := c.CareerService.GetSelection(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, selection)
}

type ToggleCareerRequest struct {
	Career string `json:"career" binding:"required"`
}

// ToggleManual godoc
// @Summary 手动选择：切换一个职业
// @Description 已选两个时再选会替换最早的选择
// @Tags 职业
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ToggleCareerRequest true "职业"
// @Success 200 {object} util.Response{data=object}
// @Router /careers/manual/toggle [post]
func (c *CareerController) ToggleManual(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req ToggleCareerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	picks, err := c.CareerService.ToggleManual(ctx.Request.Context(), userID, req.Career)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"selected": picks})
}

// ManualDraft godoc
// @Summary 手动选择：当前草稿
// @Tags 职业
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /careers/manual [get]
func (c *CareerController) ManualDraft(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	picks, err := c.CareerService.ManualDraft(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"selected": picks})
}

// ConfirmManual godoc
// @Summary 手动选择：提交
// @Tags 职业
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=model.CareerSelection}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /careers/manual/confirm [post]
func (c *CareerController) ConfirmManual(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	selection, err := c.CareerService.ConfirmManual(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, selection)
}
