package v1

import (
	"github.com/MGTheTrain/news-api/internal/domain/articles"
	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"
	"github.com/MGTheTrain/news-api/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// RouteDeps carries everything the version 1 routes need. Metrics is optional.
type RouteDeps struct {
	ArticleService articles.ArticleService
	CommentService articles.CommentService
	LikeService    articles.LikeService
	AuthService    auth.AuthService
	Gate           auth.Authorizer
	Metrics        *metrics.RequestMetrics
	Logger         logger.Logger
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, deps RouteDeps) {
	v1 := r.Group(BasePath) // lookup in version file

	v1.Use(LoggingMiddleware(deps.Logger))
	if deps.Metrics != nil {
		v1.Use(MetricsMiddleware(deps.Metrics))
	}
	v1.Use(AccessGateMiddleware(deps.Gate, deps.Metrics, deps.Logger))

	// Auth Routes
	authHandler := NewAuthHandler(deps.AuthService, deps.Logger)
	v1.POST("/auth/signup", authHandler.SignUp)
	v1.POST("/auth/signin", authHandler.SignIn)
	v1.POST("/auth/signout", authHandler.SignOut)

	// Article Routes
	articleHandler := NewArticleHandler(deps.ArticleService, deps.CommentService, deps.LikeService, deps.Logger)
	v1.GET("/articles", articleHandler.List)
	v1.POST("/articles", articleHandler.Create)
	v1.GET("/articles/:id", articleHandler.GetByID)
	v1.PUT("/articles/:id", articleHandler.Update)
	v1.DELETE("/articles/:id", articleHandler.Delete)
	v1.GET("/articles/:id/comments", articleHandler.ListComments)
	v1.POST("/articles/:id/comments", articleHandler.AddComment)
	v1.POST("/articles/:id/likes", articleHandler.Like)
	v1.DELETE("/articles/:id/likes", articleHandler.Unlike)
}
