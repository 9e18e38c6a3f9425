package http

import (
	"github.com/labstack/echo/v4"

	"task-manager.com/task-manager/internal/auth"
	"task-manager.com/task-manager/internal/http/middlewares"
)

// Register wires all routes. Task routes and /auth/me require a Bearer
// token; registration, login and health stay public.
func Register(
	e *echo.Echo,
	tasks *TaskHandler,
	users *UserHandler,
	health *HealthHandler,
	authService auth.Service,
) {
	api := e.Group("/api")
	requireAuth := middleware.Auth(authService)

	api.GET("/health", health.Health)

	api.POST("/auth/register", users.Register)
	api.POST("/auth/login", users.Login)
	api.GET("/auth/me", users.Me, requireAuth)

	taskGroup := api.Group("/tasks", requireAuth)
	taskGroup.POST("", tasks.CreateTask)
	taskGroup.GET("", tasks.ListTasks)
	taskGroup.GET("/:id", tasks.GetTask)
	taskGroup.PUT("/:id", tasks.UpdateTask)
	taskGroup.DELETE("/:id", tasks.DeleteTask)
	taskGroup.POST("/:id/assign", tasks.AssignTask)
}
