package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elearn_backend/internal/config"
	"elearn_backend/internal/controller"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/service"
	"elearn_backend/pkg/database"
	"elearn_backend/pkg/logger"
	"elearn_backend/pkg/monitoring"
	"elearn_backend/pkg/security"
	"elearn_backend/pkg/tracing"

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
	company     *repository.CompanyRepository
	department  *repository.DepartmentRepository
	section     *repository.SectionRepository
	user        *repository.UserRepository
	question    *repository.QuestionRepository
	learningLog *repository.LearningLogRepository
	course      *repository.CourseRepository
}

type services struct {
	auth      *service.AuthService
	user      *service.UserService
	org       *service.OrgService
	question  *service.QuestionService
	quiz      *service.QuizService
	diagnosis *service.DiagnosisService
	course    *service.CourseService
}

type controllers struct {
	auth      *controller.AuthController
	user      *controller.UserController
	org       *controller.OrgController
	question  *controller.QuestionController
	quiz      *controller.QuizController
	diagnosis *controller.DiagnosisController
	course    *controller.CourseController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		company:     repository.NewCompanyRepository(db),
		department:  repository.NewDepartmentRepository(db),
		section:     repository.NewSectionRepository(db),
		user:        repository.NewUserRepository(db),
		question:    repository.NewQuestionRepository(db),
		learningLog: repository.NewLearningLogRepository(db),
		course:      repository.NewCourseRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	return &services{
		auth:      service.NewAuthService(repos.user, rdb, cfg),
		user:      service.NewUserService(repos.user, repos.company),
		org:       service.NewOrgService(repos.company, repos.department, repos.section),
		question:  service.NewQuestionService(repos.question),
		quiz:      service.NewQuizService(repos.question, repos.learningLog, repos.user),
		diagnosis: service.NewDiagnosisService(repos.user, repos.learningLog),
		course:    service.NewCourseService(repos.course),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth, s.user),
		user:      controller.NewUserController(s.user),
		org:       controller.NewOrgController(s.org),
		question:  controller.NewQuestionController(s.question),
		quiz:      controller.NewQuizController(s.question, s.quiz),
		diagnosis: controller.NewDiagnosisController(s.diagnosis, s.user),
		course:    controller.NewCourseController(s.course),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis が無くてもログイン抑制が無効になるだけで起動は継続する
		logger.Log.Warn("Failed to initialize redis, login throttling disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("elearn-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

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
