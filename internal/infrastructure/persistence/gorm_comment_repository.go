package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/news-api/internal/domain/articles"
	"github.com/MGTheTrain/news-api/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/news-api/internal/pkg/apperr"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"

	"gorm.io/gorm"
)

// threadQuery walks the reply chains of an article from its root comments
const threadQuery = `
WITH RECURSIVE thread (id) AS (
	SELECT id FROM comments WHERE article_id = ? AND parent_id IS NULL
	UNION ALL
	SELECT c.id FROM comments c JOIN thread t ON c.parent_id = t.id
)
SELECT comments.* FROM comments
WHERE comments.id IN (SELECT id FROM thread)
ORDER BY comments.created_at, comments.id`

type gormCommentRepository struct {
	db     *gorm.DB
	logger logger.Logger
	now    func() time.Time
}

// NewGormCommentRepository creates a new GORM-based CommentRepository implementation
func NewGormCommentRepository(db *gorm.DB, logger logger.Logger) (articles.CommentRepository, error) {
	return &gormCommentRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (r *gormCommentRepository) Create(ctx context.Context, userID int64, input *articles.CommentInput) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	model := &models.CommentModel{
		ArticleID: input.ArticleID,
		UserID:    userID,
		ParentID:  input.ParentID,
		Content:   input.Content,
		CreatedAt: r.now().UTC().Truncate(time.Microsecond),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := articleExists(tx, input.ArticleID); err != nil {
			return err
		}

		if input.ParentID != nil {
			var parent models.CommentModel
			if err := tx.Where("id = ?", *input.ParentID).First(&parent).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("parent comment %d: %w", *input.ParentID, apperr.ErrNotFound)
				}
				return fmt.Errorf("failed to fetch parent comment: %w", err)
			}
			if parent.ArticleID != input.ArticleID {
				return fmt.Errorf("parent comment %d belongs to another article: %w", parent.ID, apperr.ErrInvalidArgument)
			}
		}

		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	r.logger.Info("Created comment with id ", model.ID)
	return model.ID, nil
}

func (r *gormCommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]*articles.Comment, error) {
	var rows []models.CommentModel
	if err := r.db.WithContext(ctx).Raw(threadQuery, articleID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}

	out := make([]*articles.Comment, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// articleExists returns an error wrapping apperr.ErrNotFound when the article is absent
func articleExists(tx *gorm.DB, articleID int64) error {
	var count int64
	if err := tx.Model(&models.ArticleModel{}).Where("id = ?", articleID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check article %d: %w", articleID, err)
	}
	if count == 0 {
		return fmt.Errorf("article with ID %d: %w", articleID, apperr.ErrNotFound)
	}
	return nil
}
