package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/news-api/internal/pkg/apperr"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (auth.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *auth.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.UserModel{}).Where("username = ?", user.Username).Count(&taken).Error; err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if taken > 0 {
			return fmt.Errorf("username %q is taken: %w", user.Username, apperr.ErrConflict)
		}

		if err := tx.Create(model).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("username %q is taken: %w", user.Username, apperr.ErrConflict)
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	user.ID = model.ID
	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %q: %w", username, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID int64) (*auth.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %d: %w", userID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) Delete(ctx context.Context, userID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.SessionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete sessions of user %d: %w", userID, err)
		}
		if err := tx.Where("id = ?", userID).Delete(&models.UserModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete user %d: %w", userID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted user with id ", userID)
	return nil
}
