package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/news-api/internal/domain/articles"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"
)

// articleService implements the articles.ArticleService interface
type articleService struct {
	repo   articles.ArticleRepository
	logger logger.Logger
}

// NewArticleService creates a new instance of ArticleService
func NewArticleService(repo articles.ArticleRepository, logger logger.Logger) (articles.ArticleService, error) {
	if repo == nil {
		return nil, errors.New("article repository is required")
	}
	return &articleService{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *articleService) Create(ctx context.Context, authorID int64, input *articles.ArticleInput) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, authorID, input)
	if err != nil {
		return 0, fmt.Errorf("failed to create article: %w", err)
	}
	return id, nil
}

func (s *articleService) GetByID(ctx context.Context, articleID int64) (*articles.Article, error) {
	return s.repo.GetByID(ctx, articleID)
}

func (s *articleService) List(ctx context.Context, query *articles.PageQuery) ([]*articles.Article, error) {
	if query == nil {
		query = &articles.PageQuery{}
	}
	query.Normalize()
	return s.repo.Page(ctx, query)
}

func (s *articleService) Update(ctx context.Context, authorID, articleID int64, input *articles.ArticleInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, authorID, articleID, input); err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}
	return nil
}

func (s *articleService) Delete(ctx context.Context, authorID, articleID int64) error {
	if err := s.repo.Delete(ctx, authorID, articleID); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}

// commentService implements the articles.CommentService interface
type commentService struct {
	comments articles.CommentRepository
	articles articles.ArticleRepository
	logger   logger.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(comments articles.CommentRepository, articleRepo articles.ArticleRepository, logger logger.Logger) (articles.CommentService, error) {
	if comments == nil || articleRepo == nil {
		return nil, errors.New("comment and article repositories are required")
	}
	return &commentService{
		comments: comments,
		articles: articleRepo,
		logger:   logger,
	}, nil
}

func (s *commentService) Add(ctx context.Context, userID int64, input *articles.CommentInput) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}
	return s.comments.Create(ctx, userID, input)
}

// Tree returns the article's root comments with their replies nested below them
func (s *commentService) Tree(ctx context.Context, articleID int64) ([]*articles.Comment, error) {
	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		return nil, err
	}

	flat, err := s.comments.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	return articles.BuildCommentTree(flat), nil
}

// likeService implements the articles.LikeService interface
type likeService struct {
	likes  articles.LikeRepository
	logger logger.Logger
}

// NewLikeService creates a new instance of LikeService
func NewLikeService(likes articles.LikeRepository, logger logger.Logger) (articles.LikeService, error) {
	if likes == nil {
		return nil, errors.New("like repository is required")
	}
	return &likeService{
		likes:  likes,
		logger: logger,
	}, nil
}

func (s *likeService) Like(ctx context.Context, userID, articleID int64) (int64, error) {
	if err := s.likes.Like(ctx, userID, articleID); err != nil {
		return 0, err
	}
	return s.likes.Count(ctx, articleID)
}

func (s *likeService) Unlike(ctx context.Context, userID, articleID int64) (int64, error) {
	if err := s.likes.Unlike(ctx, userID, articleID); err != nil {
		return 0, err
	}
	return s.likes.Count(ctx, articleID)
}
