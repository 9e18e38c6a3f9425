package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"task-manager.com/task-manager/internal/auth"
	config "task-manager.com/task-manager/internal/configs"
	httpapi "task-manager.com/task-manager/internal/http"
	middleware "task-manager.com/task-manager/internal/http/middlewares"
	repository "task-manager.com/task-manager/internal/repositories"
	"task-manager.com/task-manager/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabase(cfg.DatabaseDSN)

		taskRepo := repository.NewTaskRepository(database)
		userRepo := repository.NewUserRepository(database)

		authService := auth.NewService(auth.Config{
			SecretKey:  cfg.JWTSecretKey,
			TokenTTL:   time.Duration(cfg.JWTExpirationMinutes) * time.Minute,
			BcryptCost: cfg.BcryptCost,
			Issuer:     "task-manager",
		})

		taskService := services.NewTaskService(taskRepo)
		userService := services.NewUserService(userRepo, authService)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		if cfg.RedisEnabled {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			e.Use(middleware.RedisRateLimiter(redisClient, cfg.RateLimit, time.Minute))
		} else {
			e.Use(middleware.RateLimiter(cfg.RateLimit, time.Minute))
		}

		httpapi.Register(
			e,
			httpapi.NewTaskHandler(taskService),
			httpapi.NewUserHandler(userService),
			httpapi.NewHealthHandler(database),
			authService,
		)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
