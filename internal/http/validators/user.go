package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
)

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	if strings.TrimSpace(r.Email) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	if strings.TrimSpace(r.Username) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is required")
	}
	if r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	if strings.TrimSpace(r.Email) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	if r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	return nil
}
