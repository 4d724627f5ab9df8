package server

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskflow/internal/config"
	"taskflow/internal/handler"
	"taskflow/internal/logging"
	"taskflow/internal/middleware"
	"taskflow/internal/model"
	"taskflow/internal/notification"
	"taskflow/internal/repository"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return nil, fmt.Errorf("❌ failed to enable uuid-ossp: %w", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Project{}, &model.Task{}); err != nil {
		return nil, fmt.Errorf("❌ failed to migrate schema: %w", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// Notification channel: Redis when configured, otherwise the log
	var publisher notification.Publisher
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		publisher = notification.NewRedisPublisher(client)
		log.Printf("✅ Notifications published to Redis at %s\n", cfg.RedisAddr)
	} else {
		publisher = notification.NewLogPublisher(logger.With("component", "notifications"))
		log.Println("⚠️  REDIS_ADDR not set, notifications are logged only")
	}

	// Setup Gin
	r := gin.Default()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services, each with its own child logger
	taskService := service.NewTaskService(taskRepo, projectRepo, userRepo, logger.With("component", "tasks"))
	projectService := service.NewProjectService(projectRepo, taskRepo, userRepo, logger.With("component", "projects"))
	assignmentService := service.NewAssignmentService(taskRepo, userRepo, publisher, logger.With("component", "assignment"), cfg.NotifyFallbackEmail)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userRepo, cfg.JWTSecret, cfg.JWTExpiryHours)
	projectHandler := handler.NewProjectHandler(projectService, taskService)
	taskHandler := handler.NewTaskHandler(taskService, assignmentService)

	// Public routes
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Project routes
		authorized.POST("/projects", projectHandler.Create)
		authorized.GET("/projects", projectHandler.GetAll)
		authorized.GET("/projects/:id", projectHandler.GetByID)
		authorized.PUT("/projects/:id", projectHandler.Update)
		authorized.DELETE("/projects/:id", projectHandler.Delete)
		authorized.POST("/projects/:id/users/:userId", projectHandler.AddUser)
		authorized.POST("/projects/:id/tasks", projectHandler.CreateTask)
		authorized.GET("/projects/:id/tasks", projectHandler.GetTasks)

		// Task routes
		authorized.POST("/tasks", taskHandler.Create)
		authorized.GET("/tasks/:id", taskHandler.GetByID)
		authorized.GET("/tasks/project/:projectId", taskHandler.GetByProject)
		authorized.GET("/tasks/user/:userId", taskHandler.GetByUser)
		authorized.PUT("/tasks/:id", taskHandler.Update)
		authorized.DELETE("/tasks/:id", taskHandler.Delete)
		authorized.PUT("/tasks/:id/assign/:userId", taskHandler.Assign)
		authorized.DELETE("/tasks/:id/assign", taskHandler.Unassign)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
