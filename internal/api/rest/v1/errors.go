package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/apperr"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// HTTPStatus maps an application error onto an HTTP status code
func HTTPStatus(err error) int {
	switch apperr.Kind(err) {
	case apperr.ErrNotFound:
		return http.StatusNotFound
	case apperr.ErrForbidden:
		return http.StatusForbidden
	case apperr.ErrUnauthenticated:
		return http.StatusUnauthorized
	case apperr.ErrConflict:
		return http.StatusConflict
	case apperr.ErrInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes the error response and stops the handler chain
func abortWithError(ctx *gin.Context, err error, log logger.Logger) {
	code := HTTPStatus(err)
	message := err.Error()

	switch {
	case code == http.StatusInternalServerError:
		log.Error("Request failed: ", err)
		message = "internal error"
	case errors.Is(err, auth.ErrInvalidCredentials):
		message = "invalid credentials"
	}

	ctx.AbortWithStatusJSON(code, ErrorResponse{Message: message})
}

func badRequest(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: message})
}
