package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(c echo.Context) error {
	status := "healthy"
	database := "healthy"
	code := http.StatusOK

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		status = "degraded"
		database = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, echo.Map{
		"status":    status,
		"database":  database,
		"timestamp": time.Now().UTC(),
	})
}
