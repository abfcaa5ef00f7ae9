//go:build integration
// +build integration

package persistence

import (
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MGTheTrain/news-api/internal/domain/articles"
	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/config"
	"github.com/MGTheTrain/news-api/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// PostgresDSNEnv names the variable holding the admin DSN for postgres backed tests
const PostgresDSNEnv = "NEWS_API_TEST_POSTGRES_DSN"

// TestSessionTTL is the session lifetime used by SetupTestDB
const TestSessionTTL = time.Hour

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	Reconciler  *TagReconciler
	ArticleRepo articles.ArticleRepository
	CommentRepo articles.CommentRepository
	LikeRepo    articles.LikeRepository
	UserRepo    auth.UserRepository
	Sessions    auth.SessionStore
}

// SetupTestDB initializes a migrated test database with automatic cleanup.
// Postgres tests are skipped unless PostgresDSNEnv is set.
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		adminDSN := os.Getenv(PostgresDSNEnv)
		if adminDSN == "" {
			t.Skipf("%s not set", PostgresDSNEnv)
		}
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  adminDSN,
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)
	reconciler := NewTagReconciler(logger)

	articleRepo, err := NewGormArticleRepository(db, reconciler, logger)
	require.NoError(t, err, "Failed to create article repository")

	commentRepo, err := NewGormCommentRepository(db, logger)
	require.NoError(t, err, "Failed to create comment repository")

	likeRepo, err := NewGormLikeRepository(db, logger)
	require.NoError(t, err, "Failed to create like repository")

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	sessions, err := NewGormSessionStore(db, TestSessionTTL, logger)
	require.NoError(t, err, "Failed to create session store")

	return &TestContext{
		DB:          db,
		Reconciler:  reconciler,
		ArticleRepo: articleRepo,
		CommentRepo: commentRepo,
		LikeRepo:    likeRepo,
		UserRepo:    userRepo,
		Sessions:    sessions,
	}
}

// CreateTestUser stores a user with placeholder credentials
func CreateTestUser(t *testing.T, ctx *TestContext, username string) *auth.User {
	t.Helper()

	user := &auth.User{
		Username:     username,
		PasswordHash: "hash",
		Salt:         "salt",
	}
	require.NoError(t, ctx.UserRepo.Create(t.Context(), user))
	return user
}

// CreateTestArticle stores an article with the given tags
func CreateTestArticle(t *testing.T, ctx *TestContext, authorID int64, title string, tags ...string) int64 {
	t.Helper()

	id, err := ctx.ArticleRepo.Create(t.Context(), authorID, &articles.ArticleInput{
		Title:   title,
		Content: "content of " + title,
		Tags:    tags,
	})
	require.NoError(t, err)
	return id
}

// TagNames returns every stored tag name, sorted
func TagNames(t *testing.T, db *gorm.DB) []string {
	t.Helper()

	var names []string
	require.NoError(t, db.Table("tags").Order("name").Pluck("name", &names).Error)
	return names
}

// FakeClock hands out strictly increasing timestamps
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewFakeClock starts at start and advances by step on every call to Now
func NewFakeClock(start time.Time, step time.Duration) *FakeClock {
	return &FakeClock{current: start, step: step}
}

// Now returns the current fake time and advances the clock
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

// Set moves the clock to t
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}
