package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daxterlabs/daxter-backend/internal/services"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// respondServiceError maps the core error taxonomy onto status codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		RespondError(c, http.StatusUnprocessableEntity, "invalid_input", err)
	case services.IsNotFound(err):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case services.IsStorage(err):
		RespondError(c, http.StatusInternalServerError, "storage_error", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
