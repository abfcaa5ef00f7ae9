package v1

import (
	"context"
	"errors"

	"github.com/MGTheTrain/news-api/internal/domain/articles"
	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewsServer handles gRPC requests for articles, comments and likes
type NewsServer struct {
	articleService articles.ArticleService
	commentService articles.CommentService
	likeService    articles.LikeService
	logger         logger.Logger
}

// NewNewsServer creates a new instance of NewsServer
func NewNewsServer(
	articleService articles.ArticleService,
	commentService articles.CommentService,
	likeService articles.LikeService,
	logger logger.Logger,
) (*NewsServer, error) {
	if articleService == nil || commentService == nil || likeService == nil {
		return nil, errors.New("article, comment and like services are required")
	}
	return &NewsServer{
		articleService: articleService,
		commentService: commentService,
		likeService:    likeService,
		logger:         logger,
	}, nil
}

// caller returns the identity the access gate attached to ctx. Handlers that act on
// behalf of a user fail with Unauthenticated when their route is not configured as secure.
func caller(ctx context.Context) (auth.Identity, error) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return auth.Identity{}, status.Error(codes.Unauthenticated, "authentication required")
	}
	return identity, nil
}

// CreateArticle stores a new article authored by the caller
func (s *NewsServer) CreateArticle(ctx context.Context, req *CreateArticleRequest) (*ArticleIDResponse, error) {
	identity, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	id, err := s.articleService.Create(ctx, identity.UserID, &articles.ArticleInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		return nil, toStatus(err, s.logger)
	}
	return &ArticleIDResponse{ArticleID: id}, nil
}

// GetArticle returns a single article
func (s *NewsServer) GetArticle(ctx context.Context, req *ArticleIDRequest) (*Article, error) {
	article, err := s.articleService.GetByID(ctx, req.ArticleID)
	if err != nil {
		return nil, toStatus(err, s.logger)
	}
	return NewArticle(article), nil
}

// GetArticles returns a page of articles older than req.LastTimestamp
func (s *NewsServer) GetArticles(ctx context.Context, req *GetArticlesRequest) (*ArticlesResponse, error) {
	before, err := articles.ParseCursor(req.LastTimestamp)
	if err != nil {
		return nil, toStatus(err, s.logger)
	}

	page, err := s.articleService.List(ctx, &articles.PageQuery{Before: before, Limit: int(req.PageSize)})
	if err != nil {
		return nil, toStatus(err, s.logger)
	}

	resp := &ArticlesResponse{Articles: make([]*Article, 0, len(page))}
	for _, article := range page {
		resp.Articles = append(resp.Articles, NewArticle(article))
	}
	return resp, nil
}

// UpdateArticle replaces an article owned by the caller
func (s *NewsServer) UpdateArticle(ctx context.Context, req *UpdateArticleRequest) (*Empty, error) {
	identity, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	err = s.articleService.Update(ctx, identity.UserID, req.ArticleID, &articles.ArticleInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		return nil, toStatus(err, s.logger)
	}
	return &Empty{}, nil
}

// DeleteArticle removes an article owned by the caller
func (s *NewsServer) DeleteArticle(ctx context.Context, req *ArticleIDRequest) (*Empty, error) {
	identity, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.articleService.Delete(ctx, identity.UserID, req.ArticleID); err != nil {
		return nil, toStatus(err, s.logger)
	}
	return &Empty{}, nil
}

// AddComment adds a comment by the caller
func (s *NewsServer) AddComment(ctx context.Context, req *AddCommentRequest) (*CommentIDResponse, error) {
	identity, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	id, err := s.commentService.Add(ctx, identity.UserID, &articles.CommentInput{
		ArticleID: req.ArticleID,
		ParentID:  req.ParentID,
		Content:   req.Content,
	})
	if err != nil {
		return nil, toStatus(err, s.logger)
	}
	return &CommentIDResponse{CommentID: id}, nil
}

// GetComments returns the comment tree of an article
func (s *NewsServer) GetComments(ctx context.Context, req *ArticleIDRequest) (*CommentsResponse, error) {
	tree, err := s.commentService.Tree(ctx, req.ArticleID)
	if err != nil {
		return nil, toStatus(err, s.logger)
	}
	return &CommentsResponse{Comments: NewComments(tree)}, nil
}

// LikeArticle likes an article on behalf of the caller
func (s *NewsServer) LikeArticle(ctx context.Context, req *ArticleIDRequest) (*LikesResponse, error) {
	identity, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	count, err := s.likeService.Like(ctx, identity.UserID, req.ArticleID)
	if err != nil {
		return nil, toStatus(err, s.logger)
	}
	return &LikesResponse{Likes: count}, nil
}

// UnlikeArticle withdraws the caller's like
func (s *NewsServer) UnlikeArticle(ctx context.Context, req *ArticleIDRequest) (*LikesResponse, error) {
	identity, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	count, err := s.likeService.Unlike(ctx, identity.UserID, req.ArticleID)
	if err != nil {
		return nil, toStatus(err, s.logger)
	}
	return &LikesResponse{Likes: count}, nil
}
