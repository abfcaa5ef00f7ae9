package articles

import (
	"context"
)

// ArticleRepository persists articles together with their tag associations.
// Create, Update and Delete keep the tag set consistent inside the same transaction
// as the article row.
type ArticleRepository interface {
	Create(ctx context.Context, authorID int64, input *ArticleInput) (int64, error)
	GetByID(ctx context.Context, articleID int64) (*Article, error)
	Page(ctx context.Context, query *PageQuery) ([]*Article, error)
	Update(ctx context.Context, authorID, articleID int64, input *ArticleInput) error
	Delete(ctx context.Context, authorID, articleID int64) error
}

// CommentRepository persists comments and reads an article's comment tree
type CommentRepository interface {
	Create(ctx context.Context, userID int64, input *CommentInput) (int64, error)
	// ListByArticle returns every comment of the article ordered by creation time
	ListByArticle(ctx context.Context, articleID int64) ([]*Comment, error)
}

// LikeRepository persists likes, one per user and article
type LikeRepository interface {
	Like(ctx context.Context, userID, articleID int64) error
	Unlike(ctx context.Context, userID, articleID int64) error
	Count(ctx context.Context, articleID int64) (int64, error)
}

// ArticleService defines the article use cases exposed by the transports.
type ArticleService interface {
	// Create stores a new article authored by authorID and returns its ID.
	Create(ctx context.Context, authorID int64, input *ArticleInput) (int64, error)

	// GetByID returns the article or an error wrapping apperr.ErrNotFound.
	GetByID(ctx context.Context, articleID int64) (*Article, error)

	// List returns a page of articles, newest first.
	List(ctx context.Context, query *PageQuery) ([]*Article, error)

	// Update replaces title, content and tags. Only the author may update.
	Update(ctx context.Context, authorID, articleID int64, input *ArticleInput) error

	// Delete removes the article and its tag associations. Only the author may delete.
	Delete(ctx context.Context, authorID, articleID int64) error
}

// CommentService defines the comment use cases
type CommentService interface {
	Add(ctx context.Context, userID int64, input *CommentInput) (int64, error)
	Tree(ctx context.Context, articleID int64) ([]*Comment, error)
}

// LikeService defines the like use cases. Both operations return the new like count.
type LikeService interface {
	Like(ctx context.Context, userID, articleID int64) (int64, error)
	Unlike(ctx context.Context, userID, articleID int64) (int64, error)
}
