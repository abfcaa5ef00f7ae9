package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/news-api/internal/domain/articles"
	"github.com/MGTheTrain/news-api/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormLikeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormLikeRepository creates a new GORM-based LikeRepository implementation
func NewGormLikeRepository(db *gorm.DB, logger logger.Logger) (articles.LikeRepository, error) {
	return &gormLikeRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Like records the like once; repeating it is a no-op
func (r *gormLikeRepository) Like(ctx context.Context, userID, articleID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := articleExists(tx, articleID); err != nil {
			return err
		}

		like := &models.LikeModel{
			UserID:    userID,
			ArticleID: articleID,
			CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "article_id"}},
			DoNothing: true,
		}).Create(like).Error
		if err != nil {
			return fmt.Errorf("failed to like article %d: %w", articleID, err)
		}
		return nil
	})
}

func (r *gormLikeRepository) Unlike(ctx context.Context, userID, articleID int64) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&models.LikeModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to unlike article %d: %w", articleID, err)
	}
	return nil
}

func (r *gormLikeRepository) Count(ctx context.Context, articleID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.LikeModel{}).Where("article_id = ?", articleID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count likes of article %d: %w", articleID, err)
	}
	return count, nil
}
