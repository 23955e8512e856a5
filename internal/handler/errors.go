package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-engagement/internal/domain"
	"blog-engagement/internal/middleware"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// respondError maps a service error to its status code. Internal errors are
// logged and their message hidden from the client.
func respondError(c *gin.Context, err error) {
	kind := domain.ErrorKind(err)

	var status int
	switch kind {
	case "not_found":
		status = http.StatusNotFound
	case "invalid_input":
		status = http.StatusBadRequest
	case "conflict":
		status = http.StatusConflict
	case "transient":
		status = http.StatusServiceUnavailable
	default:
		status = http.StatusInternalServerError
	}

	message := err.Error()
	if status >= http.StatusInternalServerError {
		middleware.Logger(c).Error("Request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		message = "internal server error"
		if status == http.StatusServiceUnavailable {
			message = "service temporarily unavailable"
		} else {
			kind = "internal"
		}
	}

	_ = c.Error(err)
	c.JSON(status, ErrorResponse{Error: kind, Message: message})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_input", Message: message})
}
