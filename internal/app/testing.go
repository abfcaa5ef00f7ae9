//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/news-api/internal/domain/articles"
	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/news-api/internal/infrastructure/persistence"
	"github.com/MGTheTrain/news-api/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Test secrets for the credential vault and token issuer
const (
	TestPepper    = "integration-pepper-0123456789"
	TestSecretKey = "integration-secret-0123456789"
)

// SecureTestRoutes are the routes gated in integration tests
var SecureTestRoutes = []string{
	"/news.v1.NewsService/CreateArticle",
	"/news.v1.AuthService/SignOut",
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AuthService    auth.AuthService
	AccessGate     auth.Authorizer
	ArticleService articles.ArticleService
	CommentService articles.CommentService
	LikeService    articles.LikeService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	vault, err := cryptography.NewCredentialVault(TestPepper, bcrypt.MinCost, logger)
	require.NoError(t, err)

	issuer, err := cryptography.NewTokenIssuer(TestSecretKey)
	require.NoError(t, err)

	authService, err := NewAuthService(dbContext.UserRepo, dbContext.Sessions, vault, issuer, logger)
	require.NoError(t, err)

	gate, err := NewAccessGate(SecureTestRoutes, dbContext.Sessions, logger)
	require.NoError(t, err)

	articleService, err := NewArticleService(dbContext.ArticleRepo, logger)
	require.NoError(t, err)

	commentService, err := NewCommentService(dbContext.CommentRepo, dbContext.ArticleRepo, logger)
	require.NoError(t, err)

	likeService, err := NewLikeService(dbContext.LikeRepo, logger)
	require.NoError(t, err)

	return &TestServices{
		AuthService:    authService,
		AccessGate:     gate,
		ArticleService: articleService,
		CommentService: commentService,
		LikeService:    likeService,
		DBContext:      dbContext,
	}
}
