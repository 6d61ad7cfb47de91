package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/task-system/internal/api/handler"
	"github.com/taskhive/task-system/internal/api/middleware"
	"github.com/taskhive/task-system/internal/core/domain"
	"github.com/taskhive/task-system/internal/core/service"
	"github.com/taskhive/task-system/internal/infrastructure/config"
	mongorepo "github.com/taskhive/task-system/internal/infrastructure/db/mongo"
	redisinfra "github.com/taskhive/task-system/internal/infrastructure/db/redis"
	"github.com/taskhive/task-system/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered, plus the
// activity dispatcher so main can start its workers.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tasktracker"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	taskRepo := mongorepo.NewTaskRepository(db)
	commentRepo := mongorepo.NewCommentRepository(db)
	activityRepo := mongorepo.NewActivityRepository(db)

	// --- Services ---
	throttle := redisinfra.NewLoginThrottle(rdb, cfg.Throttle.MaxLoginFailures)
	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, log)
	activityService := service.NewActivityService(activityRepo, log)

	dispatcher := queue.NewDispatcher(cfg.Activity.Workers, activityService, log)
	taskService := service.NewTaskService(taskRepo, userRepo, dispatcher, log)
	commentService := service.NewCommentService(commentRepo, taskRepo, userRepo, dispatcher, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService, activityService)
	commentHandler := handler.NewCommentHandler(commentService)

	authMW := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/admin/login", authHandler.AdminLogin)

	// --- User routes ---
	users := e.Group("/users", authMW)
	users.POST("/admins", userHandler.CreateAdmin, adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)

	// --- Task routes ---
	tasks := e.Group("/tasks", authMW)
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/by-tag/:tag", taskHandler.FilterByTag)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PATCH("/:id/status", taskHandler.UpdateStatus)
	tasks.PATCH("/:id/tags", taskHandler.UpdateTags)
	tasks.GET("/:id/activity", taskHandler.Activity)
	tasks.POST("/:id/comments", commentHandler.Create)

	// --- Comment routes ---
	comments := e.Group("/comments", authMW)
	comments.GET("", commentHandler.List)
	comments.PATCH("/:id", commentHandler.Edit)
	comments.DELETE("/:id", commentHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher
}
