package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/exam"
	"github.com/lshigami/examprep/internal/service"
	"github.com/rs/zerolog/log"
)

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, exam.ErrEmptyPool), errors.Is(err, exam.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, exam.ErrUnknownQuestion), errors.Is(err, exam.ErrInvalidLimit):
		return http.StatusBadRequest
	case errors.Is(err, exam.ErrNotSubmitted):
		return http.StatusConflict
	case errors.Is(err, service.ErrLoginRequired):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrServiceStopped):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as a dto.ErrorResponse. Known errors carry their
// own message; anything else is reported with fallback.
func RespondError(ctx *gin.Context, err error, fallback string) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(fallback)
		ctx.JSON(status, dto.ErrorResponse{Message: fallback, Details: []string{err.Error()}})
		return
	}
	ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
}

// Health reports liveness. It is mounted at the root, outside the
// documented /api/v1 group.
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
