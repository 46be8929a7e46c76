package common

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
)

var (
	// ErrNoIdentity is returned when the verified identity is missing from context
	ErrNoIdentity = errors.New("пользователь не найден в контексте")

	// ErrInvalidUUID is returned when UUID parsing fails
	ErrInvalidUUID = errors.New("неверный формат UUID")
)

// CurrentUID extracts the verified identity uid from Gin context
func CurrentUID(c *gin.Context) (string, error) {
	raw, exists := c.Get(middleware.ContextUIDKey)
	if !exists {
		return "", ErrNoIdentity
	}

	uid, ok := raw.(string)
	if !ok || uid == "" {
		return "", ErrNoIdentity
	}

	return uid, nil
}

// ParseUUIDParam parses UUID from URL parameter
func ParseUUIDParam(c *gin.Context, paramName string) (uuid.UUID, error) {
	param := c.Param(paramName)
	if param == "" {
		return uuid.Nil, fmt.Errorf("параметр %s отсутствует", paramName)
	}

	parsed, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return parsed, nil
}

// ParseIndexParam parses a positional index from URL parameter
func ParseIndexParam(c *gin.Context, paramName string) (int, error) {
	param := c.Param(paramName)
	index, err := strconv.Atoi(param)
	if err != nil {
		return 0, fmt.Errorf("параметр %s должен быть числом", paramName)
	}
	return index, nil
}

// RespondError sends a standardized error response
func RespondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Message: message})
}

// RespondAppError maps a service error to an HTTP response.
// Known application errors keep their message; anything else becomes
// a 500 with the raw error attached for debugging.
func RespondAppError(c *gin.Context, err error) {
	status := apperror.HTTPStatusOf(err)

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(status, dto.ErrorResponse{Message: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Message: "внутренняя ошибка сервера",
		Error:   err.Error(),
	})
}

// RespondUnauthorized sends a 401 Unauthorized response
func RespondUnauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "требуется авторизация"
	}
	RespondError(c, http.StatusUnauthorized, message)
}

// RespondBadRequest sends a 400 Bad Request response
func RespondBadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "некорректный запрос"
	}
	RespondError(c, http.StatusBadRequest, message)
}

// RespondNotFound sends a 404 Not Found response
func RespondNotFound(c *gin.Context, message string) {
	if message == "" {
		message = "ресурс не найден"
	}
	RespondError(c, http.StatusNotFound, message)
}
