package app

import (
	"career_path_backend/docs"
	"career_path_backend/internal/config"
	"career_path_backend/internal/middleware"
	"career_path_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.GET("/dashboard", c.dashboard.GetDashboard)
		authGroup.POST("/reports/progress", c.report.ExportProgress)

		a.registerCareerRoutes(authGroup, c)
		a.registerDialogueRoutes(authGroup, c)
		a.registerTestRoutes(authGroup, c)
		a.registerLearningRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/careers", c.career.ListCareers)
		public.GET("/careers/insights/*career", c.career.GetInsight)
	}
}

func (a *App) registerCareerRoutes(group *gin.RouterGroup, c *controllers) {
	careers := group.Group("/careers")
	{
		careers.GET("/selection", c.career.GetSelection)
		careers.POST("/selection", c.career.SelectCareers)

		// 手动选择
		careers.GET("/manual", c.career.ManualDraft)
		careers.POST("/manual/toggle", c.career.ToggleManual)
		careers.POST("/manual/confirm", c.career.ConfirmManual)
	}
}

func (a *App) registerDialogueRoutes(group *gin.RouterGroup, c *controllers) {
	dialogue := group.Group("/dialogue")
	{
		dialogue.GET("", c.dialogue.Get)
		dialogue.POST("/start", c.dialogue.Start)
		dialogue.POST("/choose", c.dialogue.Choose)
		dialogue.POST("/toggle", c.dialogue.Toggle)
		dialogue.POST("/confirm", c.dialogue.Confirm)
		dialogue.POST("/ask", c.dialogue.Ask)
	}
}

func (a *App) registerTestRoutes(group *gin.RouterGroup, c *controllers) {
	tests := group.Group("/tests")
	{
		tests.POST("/start", c.test.StartTest)
		tests.GET("/current", c.test.Current)
		tests.POST("/answer", c.test.SubmitAnswer)
		tests.POST("/next", c.test.Next)
		tests.POST("/finalize", c.test.Finalize)
		tests.GET("/results", c.test.Results)
	}
}

func (a *App) registerLearningRoutes(group *gin.RouterGroup, c *controllers) {
	learning := group.Group("/learning")
	{
		learning.GET("/modules/*career", c.learning.GetModule)
		learning.POST("/videos/:videoId/start", c.learning.StartPlayback)
		learning.POST("/videos/:videoId/complete", c.learning.CompleteVideo)
		learning.POST("/videos/:videoId/quiz", c.learning.SubmitQuiz)
	}
}
