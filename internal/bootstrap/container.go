package bootstrap

import (
	"fmt"

	"github.com/MGTheTrain/news-api/internal/app"
	"github.com/MGTheTrain/news-api/internal/domain/articles"
	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/news-api/internal/infrastructure/persistence"
	"github.com/MGTheTrain/news-api/internal/pkg/config"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"

	"gorm.io/gorm"
)

// Container holds every initialized application component
type Container struct {
	DB *gorm.DB

	Users    auth.UserRepository
	Sessions auth.SessionStore
	Vault    auth.CredentialVault

	AuthService    auth.AuthService
	ArticleService articles.ArticleService
	CommentService articles.CommentService
	LikeService    articles.LikeService
	Gate           auth.Authorizer
}

// NewContainer opens the database, optionally migrates the schema and wires repositories and services
func NewContainer(settings *config.Settings, migrate bool, log logger.Logger) (*Container, error) {
	db, err := persistence.NewDBConnection(settings.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if migrate {
		if err := persistence.Migrate(db); err != nil {
			_ = persistence.CloseDB(db)
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
		log.Info("Database migrations completed successfully")
	}

	c, err := wire(db, settings, log)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}
	return c, nil
}

func wire(db *gorm.DB, settings *config.Settings, log logger.Logger) (*Container, error) {
	// Initialize repositories
	articleRepo, err := persistence.NewGormArticleRepository(db, persistence.NewTagReconciler(log), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create article repository: %w", err)
	}

	commentRepo, err := persistence.NewGormCommentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment repository: %w", err)
	}

	likeRepo, err := persistence.NewGormLikeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create like repository: %w", err)
	}

	users, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	sessions, err := persistence.NewGormSessionStore(db, settings.Auth.SessionTTL, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	// Initialize credential primitives
	vault, err := cryptography.NewCredentialVault(settings.Auth.PassPepper, settings.Auth.BcryptCost, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential vault: %w", err)
	}

	issuer, err := cryptography.NewTokenIssuer(settings.Auth.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	// Initialize services
	authService, err := app.NewAuthService(users, sessions, vault, issuer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	articleService, err := app.NewArticleService(articleRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create article service: %w", err)
	}

	commentService, err := app.NewCommentService(commentRepo, articleRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %w", err)
	}

	likeService, err := app.NewLikeService(likeRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create like service: %w", err)
	}

	gate, err := app.NewAccessGate(settings.Auth.SecureRouteList(), sessions, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create access gate: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &Container{
		DB:             db,
		Users:          users,
		Sessions:       sessions,
		Vault:          vault,
		AuthService:    authService,
		ArticleService: articleService,
		CommentService: commentService,
		LikeService:    likeService,
		Gate:           gate,
	}, nil
}

// Close releases the database connection pool
func (c *Container) Close() error {
	return persistence.CloseDB(c.DB)
}
