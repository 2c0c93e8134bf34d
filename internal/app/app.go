package app

import (
	"career_path_backend/internal/config"
	"career_path_backend/internal/controller"
	"career_path_backend/internal/repository"
	"career_path_backend/internal/service"
	"career_path_backend/internal/util"
	"career_path_backend/pkg/database"
	"career_path_backend/pkg/logger"
	"career_path_backend/pkg/monitoring"
	"career_path_backend/pkg/security"
	"career_path_backend/pkg/tracing"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sessionSweepInterval = 10 * time.Minute

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracer          *sdktrace.TracerProvider
	sweeper         *gocron.Scheduler
	mu              sync.RWMutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user      *repository.UserRepository
	profile   *repository.ProfileRepository
	selection *repository.CareerSelectionRepository
	mockTest  *repository.MockTestRepository
	progress  *repository.LearningProgressRepository
	video     *repository.VideoProgressRepository
	quiz      *repository.QuizResultRepository
	sessions  repository.SessionStore
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	career     *service.CareerService
	dialogue   *service.DialogueService
	diagnostic *service.DiagnosticService
	learning   *service.LearningService
	playback   *service.PlaybackService
	dashboard  *service.DashboardService
	report     *service.ReportService
}

type controllers struct {
	auth      *controller.AuthController
	career    *controller.CareerController
	dialogue  *controller.DialogueController
	test      *controller.TestController
	learning  *controller.LearningController
	dashboard *controller.DashboardController
	report    *controller.ReportController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置文件变更后调用，依次执行已注册的回调
func (a *App) ApplyConfig(cfg *config.Config) {
	a.mu.RLock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.RUnlock()

	for _, callback := range callbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	var sessions repository.SessionStore
	if rdb != nil {
		sessions = repository.NewRedisSessionStore(rdb)
	} else {
		sessions = repository.NewMemorySessionStore()
	}

	return &repositories{
		user:      repository.NewUserRepository(db),
		profile:   repository.NewProfileRepository(db),
		selection: repository.NewCareerSelectionRepository(db),
		mockTest:  repository.NewMockTestRepository(db),
		progress:  repository.NewLearningProgressRepository(db),
		video:     repository.NewVideoProgressRepository(db),
		quiz:      repository.NewQuizResultRepository(db),
		sessions:  sessions,
	}
}

func (a *App) newAdvisor(cfg *config.Config) service.Advisor {
	if !cfg.AI.Enabled() {
		logger.Log.Info("AI advisor disabled, using keyword replies")
		return service.KeywordAdvisor{}
	}
	advisor, err := service.NewAIService(cfg.AI)
	if err != nil {
		logger.Log.Warn("Failed to initialize AI advisor, using keyword replies", zap.Error(err))
		return service.KeywordAdvisor{}
	}
	return advisor
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}
	ttl := cfg.Learning.SessionTTL()

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.profile, cfg)
	s.career = service.NewCareerService(repos.profile, repos.selection, repos.sessions, ttl)
	s.dialogue = service.NewDialogueService(repos.profile, s.career, repos.sessions, ttl, a.newAdvisor(cfg))
	s.diagnostic = service.NewDiagnosticService(s.career, repos.mockTest, repos.progress, repos.sessions, ttl)
	s.learning = service.NewLearningService(repos.mockTest, repos.progress, repos.video, repos.quiz)
	s.playback = service.NewPlaybackService(s.learning)
	s.dashboard = service.NewDashboardService(s.auth, s.career, s.diagnostic, repos.progress)
	s.report = service.NewReportService(repos.mockTest, repos.progress, repos.video, repos.quiz, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	sessionStore := "memory"
	if a.Redis != nil {
		sessionStore = "redis"
	}

	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		career:    controller.NewCareerController(s.career),
		dialogue:  controller.NewDialogueController(s.dialogue),
		test:      controller.NewTestController(s.diagnostic),
		learning:  controller.NewLearningController(s.learning, s.playback),
		dashboard: controller.NewDashboardController(s.dashboard),
		report:    controller.NewReportController(s.report),
		health:    controller.NewHealthController(db, sessionStore),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	cors := security.NewCORS(cfg.CORS.AllowedOrigins)
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		cors.SetAllowedOrigins(newCfg.CORS.AllowedOrigins)
	})

	router.Use(cors.Handler())
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp 连接数据库和 Redis 后组装应用
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.ForceMigrate || cfg.Server.Mode != gin.ReleaseMode)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			// 会话退回内存存储，单实例仍可用
			logger.Log.Warn("Failed to initialize redis, falling back to in-memory sessions", zap.Error(err))
			rdb = nil
		}
	}

	return New(cfg, db, rdb), nil
}

// New 使用已打开的连接组装应用，rdb 为 nil 时会话保存在内存中
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetMode(newCfg.Server.Mode)
		logger.Log.Info("Log level updated", zap.String("mode", newCfg.Server.Mode))
	})

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode != gin.ReleaseMode {
		router.Use(gin.Logger())
	}
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		if err := os.MkdirAll(cfg.Storage.LocalPath, os.ModePerm); err != nil {
			logger.Log.Warn("Failed to create local storage dir", zap.Error(err))
		}
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	services.playback.Start()
	if mem, ok := repos.sessions.(*repository.MemorySessionStore); ok {
		app.startSessionSweeper(mem)
	}

	return app
}

// startSessionSweeper 内存会话只在读取时检查过期，未再访问的会话由定时任务清理
func (a *App) startSessionSweeper(store *repository.MemorySessionStore) {
	scheduler := gocron.NewScheduler(time.UTC)
	_, err := scheduler.Every(sessionSweepInterval).WaitForSchedule().Do(func() {
		if removed := store.Sweep(); removed > 0 {
			logger.Log.Debug("Expired sessions removed", zap.Int("count", removed))
		}
	})
	if err != nil {
		logger.Log.Error("Failed to schedule session sweeper", zap.Error(err))
		return
	}
	scheduler.StartAsync()
	a.sweeper = scheduler
}

// Shutdown 停止定时任务并刷新追踪数据
func (a *App) Shutdown(ctx context.Context) {
	if a.services != nil && a.services.playback != nil {
		a.services.playback.Stop()
	}
	if a.sweeper != nil {
		a.sweeper.Stop()
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
}

func (a *App) Run() error {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		a.Shutdown(context.Background())
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(ctx)
	a.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Log.Info("Server exiting")
	return nil
}
