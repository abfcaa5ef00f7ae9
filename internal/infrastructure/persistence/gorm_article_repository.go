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

type gormArticleRepository struct {
	db     *gorm.DB
	tags   *TagReconciler
	logger logger.Logger
	now    func() time.Time
}

// NewGormArticleRepository creates a new GORM-based ArticleRepository implementation
func NewGormArticleRepository(db *gorm.DB, tags *TagReconciler, logger logger.Logger) (articles.ArticleRepository, error) {
	if db == nil || tags == nil {
		return nil, errors.New("database and tag reconciler are required")
	}
	return &gormArticleRepository{
		db:     db,
		tags:   tags,
		logger: logger,
		now:    time.Now,
	}, nil
}

// timestamp returns the current time as stored: UTC with microsecond precision
func (r *gormArticleRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}

func (r *gormArticleRepository) Create(ctx context.Context, authorID int64, input *articles.ArticleInput) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	model := &models.ArticleModel{
		AuthorID:  authorID,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: r.timestamp(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create article: %w", err)
		}
		if _, err := r.tags.Reconcile(ctx, tx, model.ID, input.Tags); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	r.logger.Info("Created article with id ", model.ID)
	return model.ID, nil
}

// articleRow is an article joined with its author's username
type articleRow struct {
	models.ArticleModel
	AuthorUsername string
}

func (r *gormArticleRepository) selectArticles(tx *gorm.DB) *gorm.DB {
	return tx.Table("articles").
		Select("articles.id, articles.author_id, articles.title, articles.content, articles.created_at, users.username AS author_username").
		Joins("LEFT JOIN users ON users.id = articles.author_id")
}

func (r *gormArticleRepository) GetByID(ctx context.Context, articleID int64) (*articles.Article, error) {
	db := r.db.WithContext(ctx)

	var rows []articleRow
	if err := r.selectArticles(db).Where("articles.id = ?", articleID).Limit(1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch article: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("article with ID %d: %w", articleID, apperr.ErrNotFound)
	}

	out, err := r.withTags(db, rows)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

func (r *gormArticleRepository) Page(ctx context.Context, query *articles.PageQuery) ([]*articles.Article, error) {
	query.Normalize()

	before := r.timestamp()
	if query.Before != nil {
		before = query.Before.UTC()
	}

	db := r.db.WithContext(ctx)

	var rows []articleRow
	err := r.selectArticles(db).
		Where("articles.created_at < ?", before).
		Order("articles.created_at DESC").
		Order("articles.id DESC").
		Limit(query.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch articles: %w", err)
	}

	return r.withTags(db, rows)
}

// withTags converts rows to domain articles and loads all their tags with one query
func (r *gormArticleRepository) withTags(db *gorm.DB, rows []articleRow) ([]*articles.Article, error) {
	out := make([]*articles.Article, len(rows))
	byID := make(map[int64]*articles.Article, len(rows))
	ids := make([]int64, len(rows))
	for i := range rows {
		article := rows[i].ToDomain()
		article.AuthorUsername = rows[i].AuthorUsername
		out[i] = article
		byID[article.ID] = article
		ids[i] = article.ID
	}
	if len(ids) == 0 {
		return out, nil
	}

	var links []struct {
		ArticleID int64
		Name      string
	}
	err := db.Table("article_tags").
		Select("article_tags.article_id AS article_id, tags.name AS name").
		Joins("JOIN tags ON tags.id = article_tags.tag_id").
		Where("article_tags.article_id IN ?", ids).
		Order("tags.name").
		Scan(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article tags: %w", err)
	}

	for _, link := range links {
		if article, ok := byID[link.ArticleID]; ok {
			article.Tags = append(article.Tags, link.Name)
		}
	}
	return out, nil
}

func (r *gormArticleRepository) Update(ctx context.Context, authorID, articleID int64, input *articles.ArticleInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ArticleModel{}).
			Where("id = ? AND author_id = ?", articleID, authorID).
			Updates(map[string]interface{}{"title": input.Title, "content": input.Content})
		if res.Error != nil {
			return fmt.Errorf("failed to update article: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ownershipError(tx, articleID)
		}

		if _, err := r.tags.Reconcile(ctx, tx, articleID, input.Tags); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Updated article with id ", articleID)
	return nil
}

func (r *gormArticleRepository) Delete(ctx context.Context, authorID, articleID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Dependents go first; a failed ownership check below rolls them back
		if _, err := r.tags.Reconcile(ctx, tx, articleID, nil); err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", articleID).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete comments of article %d: %w", articleID, err)
		}
		if err := tx.Where("article_id = ?", articleID).Delete(&models.LikeModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete likes of article %d: %w", articleID, err)
		}

		res := tx.Where("id = ? AND author_id = ?", articleID, authorID).Delete(&models.ArticleModel{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete article: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ownershipError(tx, articleID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted article with id ", articleID)
	return nil
}

// ownershipError classifies a guarded write that matched no row
func ownershipError(tx *gorm.DB, articleID int64) error {
	var count int64
	if err := tx.Model(&models.ArticleModel{}).Where("id = ?", articleID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check article %d: %w", articleID, err)
	}
	if count == 0 {
		return fmt.Errorf("article with ID %d: %w", articleID, apperr.ErrNotFound)
	}
	return fmt.Errorf("article with ID %d is owned by another user: %w", articleID, apperr.ErrForbidden)
}
