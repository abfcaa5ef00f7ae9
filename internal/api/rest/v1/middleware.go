package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/apperr"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"
	"github.com/MGTheTrain/news-api/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// RoutePath identifies a matched route the way secure routes are configured,
// e.g. "POST /api/v1/news/articles".
func RoutePath(ctx *gin.Context) string {
	return ctx.Request.Method + " " + ctx.FullPath()
}

// AccessGateMiddleware authorizes every request by its route and Authorization header
func AccessGateMiddleware(gate auth.Authorizer, rpcMetrics *metrics.RequestMetrics, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		route := RoutePath(ctx)

		authorized, err := gate.Authorize(ctx.Request.Context(), route, ctx.GetHeader("Authorization"))
		if err != nil {
			if rpcMetrics != nil {
				rpcMetrics.Denied(metrics.TransportREST, route)
			}
			if !errors.Is(err, apperr.ErrUnauthenticated) {
				log.Error("Access gate failed: ", err)
				err = apperr.ErrUnauthenticated
			}
			abortWithError(ctx, err, log)
			return
		}

		ctx.Request = ctx.Request.WithContext(authorized)
		ctx.Next()
	}
}

// LoggingMiddleware logs every request with its status and latency
func LoggingMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		msg := fmt.Sprintf("%s %s %d %s", ctx.Request.Method, ctx.Request.URL.Path, status, time.Since(start))
		if status >= http.StatusInternalServerError {
			log.Warn(msg)
		} else {
			log.Info(msg)
		}
	}
}

// MetricsMiddleware records request counts and latencies per matched route
func MetricsMiddleware(rpcMetrics *metrics.RequestMetrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := RoutePath(ctx)
		if ctx.FullPath() == "" {
			route = ctx.Request.Method + " unmatched"
		}
		rpcMetrics.Observe(metrics.TransportREST, route, strconv.Itoa(ctx.Writer.Status()), time.Since(start))
	}
}

// identity returns the caller attached by the access gate or aborts with 401
func identity(ctx *gin.Context) (auth.Identity, bool) {
	id, ok := auth.IdentityFromContext(ctx.Request.Context())
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
	}
	return id, ok
}
