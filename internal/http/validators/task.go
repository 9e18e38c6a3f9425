package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
)

// Validators check request shape only; content rules live in the domain and
// the services.

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if strings.TrimSpace(r.Title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	return nil
}
