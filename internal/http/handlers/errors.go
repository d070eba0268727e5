package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"project_tracker/internal/domain"
	"project_tracker/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: msg})
}

// writeError maps service errors to a status and body. Unknown errors are
// logged and hidden behind a generic 500.
func writeError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		badRequest(c, ve.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Message: "invalid email or password"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Message: "authentication required"})
	case errors.Is(err, domain.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: "not_found", Message: "resource not found"})
	default:
		_ = c.Error(err)
		logger.WithContext(c.Request.Context()).Error("request failed", "error", err, "path", c.FullPath())
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal_error", Message: "internal server error"})
	}
}

// bindError renders gin binding failures. Validator errors are reported per
// field, anything else is a malformed body.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		badRequest(c, strings.Join(msgs, "; "))
		return
	}
	badRequest(c, "malformed request body")
}

func fieldMessage(fe validator.FieldError) string {
	field := jsonFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + ": is required"
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", field, fe.Param())
	case "email":
		return field + ": must be a valid email"
	default:
		return fmt.Sprintf("%s: failed %s validation", field, fe.Tag())
	}
}

func jsonFieldName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
