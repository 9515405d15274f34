package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"obe_portal_backend/internal/config"
	"obe_portal_backend/internal/controller"
	"obe_portal_backend/internal/repository"
	"obe_portal_backend/internal/service"
	"obe_portal_backend/internal/util"
	"obe_portal_backend/pkg/configwatcher"
	"obe_portal_backend/pkg/database"
	"obe_portal_backend/pkg/logger"
	"obe_portal_backend/pkg/monitoring"
	"obe_portal_backend/pkg/security"
	"obe_portal_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	mark       *repository.MarkRepository
	course     *repository.CourseRepository
	assessment *repository.AssessmentRepository
	enrollment *repository.EnrollmentRepository
	student    *repository.StudentRepository
}

type services struct {
	attainment *service.AttainmentService
	course     *service.CourseService
	assessment *service.AssessmentService
	enrollment *service.EnrollmentService
	mark       *service.MarkService
	markImport *service.MarkImportService
	storage    *service.StorageService
}

type controllers struct {
	attainment *controller.AttainmentController
	course     *controller.CourseController
	assessment *controller.AssessmentController
	enrollment *controller.EnrollmentController
	mark       *controller.MarkController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		mark:       repository.NewMarkRepository(db),
		course:     repository.NewCourseRepository(db),
		assessment: repository.NewAssessmentRepository(db),
		enrollment: repository.NewEnrollmentRepository(db),
		student:    repository.NewStudentRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.attainment = service.NewAttainmentService(repos.mark, cfg.Attainment.Workers)
	s.course = service.NewCourseService(repos.course, rdb)
	s.assessment = service.NewAssessmentService(repos.assessment, repos.course)
	s.enrollment = service.NewEnrollmentService(repos.enrollment, repos.course, repos.student)
	s.mark = service.NewMarkService(repos.mark, repos.assessment, repos.student)
	s.markImport = service.NewMarkImportService(repos.mark, repos.student, repos.assessment, repos.course, s.storage)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		attainment: controller.NewAttainmentController(s.attainment),
		course:     controller.NewCourseController(s.course),
		assessment: controller.NewAssessmentController(s.assessment),
		enrollment: controller.NewEnrollmentController(s.enrollment),
		mark:       controller.NewMarkController(s.mark, s.markImport),
		health:     controller.NewHealthController(a.DB, a.Redis),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	migrate := cfg.Server.Mode == "debug" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("obe-portal", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// Middleware and the engine worker pool capture their settings at
	// startup; a reload is logged so operators know a restart is pending.
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("Configuration file changed, restart to apply",
			zap.Int("attainmentWorkers", newCfg.Attainment.Workers))
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
