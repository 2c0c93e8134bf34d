package controller

import (
	"career_path_backend/internal/service"
	"career_path_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// ExportProgress godoc
// @Summary 导出学习进度 Excel
// @Description 生成 xlsx 并上传到配置的存储，返回下载地址
// @Tags 报表
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=service.ReportFile}
// @Failure 500 {object} util.Response
// @Router /reports/progress [post]
func (c *ReportController) ExportProgress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	file, err := c.ReportService.ExportProgress(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, file)
}
