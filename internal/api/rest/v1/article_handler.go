package v1

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MGTheTrain/news-api/internal/domain/articles"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ArticleHandler handles HTTP requests for articles, comments and likes
type ArticleHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	ListComments(ctx *gin.Context)
	AddComment(ctx *gin.Context)
	Like(ctx *gin.Context)
	Unlike(ctx *gin.Context)
}

type articleHandler struct {
	articleService articles.ArticleService
	commentService articles.CommentService
	likeService    articles.LikeService
	logger         logger.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(
	articleService articles.ArticleService,
	commentService articles.CommentService,
	likeService articles.LikeService,
	logger logger.Logger,
) ArticleHandler {
	return &articleHandler{
		articleService: articleService,
		commentService: commentService,
		likeService:    likeService,
		logger:         logger,
	}
}

// articleID parses the :id path parameter, answering 400 when it is not a positive integer
func articleID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(ctx, "invalid article id")
		return 0, false
	}
	return id, true
}

// List returns a page of articles newest first, older than the last_timestamp query parameter
func (h *articleHandler) List(ctx *gin.Context) {
	var query ListArticlesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	before, err := articles.ParseCursor(query.LastTimestamp)
	if err != nil {
		abortWithError(ctx, err, h.logger)
		return
	}

	page, err := h.articleService.List(ctx.Request.Context(), &articles.PageQuery{Before: before, Limit: query.PageSize})
	if err != nil {
		abortWithError(ctx, err, h.logger)
		return
	}

	out := make([]*ArticleResponse, 0, len(page))
	for _, a := range page {
		out = append(out, newArticleResponse(a))
	}
	ctx.JSON(http.StatusOK, gin.H{"articles": out})
}

// GetByID returns a single article
func (h *articleHandler) GetByID(ctx *gin.Context) {
	id, ok := articleID(ctx)
	if !ok {
		return
	}

	article, err := h.articleService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		abortWithError(ctx, err, h.logger)
		return
	}
	ctx.JSON(http.StatusOK, newArticleResponse(article))
}

// Create stores an article authored by the caller
func (h *articleHandler) Create(ctx *gin.Context) {
	caller, ok := identity(ctx)
	if !ok {
		return
	}

	var req ArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	id, err := h.articleService.Create(ctx.Request.Context(), caller.UserID, &articles.ArticleInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		abortWithError(ctx, err, h.logger)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"article_id": id})
}

// Update replaces an article owned by the caller
func (h *articleHandler) Update(ctx *gin.Context) {
	caller, ok := identity(ctx)
	if !ok {
		return
	}
	id, ok := articleID(ctx)
	if !ok {
		return
	}

	var req ArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	err := h.articleService.Update(ctx.Request.Context(), caller.UserID, id, &articles.ArticleInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		abortWithError(ctx, err, h.logger)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Delete removes an article owned by the caller
func (h *articleHandler) Delete(ctx *gin.Context) {
	caller, ok := identity(ctx)
	if !ok {
		return
	}
	id, ok := articleID(ctx)
	if !ok {
		return
	}

	if err := h.articleService.Delete(ctx.Request.Context(), caller.UserID, id); err != nil {
		abortWithError(ctx, err, h.logger)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListComments returns the comment tree of an article
func (h *articleHandler) ListComments(ctx *gin.Context) {
	id, ok := articleID(ctx)
	if !ok {
		return
	}

	tree, err := h.commentService.Tree(ctx.Request.Context(), id)
	if err != nil {
		abortWithError(ctx, err, h.logger)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"comments": newCommentResponses(tree)})
}

// AddComment adds a comment or a reply to one
func (h *articleHandler) AddComment(ctx *gin.Context) {
	caller, ok := identity(ctx)
	if !ok {
		return
	}
	id, ok := articleID(ctx)
	if !ok {
		return
	}

	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	commentID, err := h.commentService.Add(ctx.Request.Context(), caller.UserID, &articles.CommentInput{
		ArticleID: id,
		ParentID:  req.ParentID,
		Content:   req.Content,
	})
	if err != nil {
		abortWithError(ctx, err, h.logger)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"comment_id": commentID})
}

// Like likes an article and returns the new like count
func (h *articleHandler) Like(ctx *gin.Context) {
	h.toggleLike(ctx, h.likeService.Like)
}

// Unlike withdraws the caller's like
func (h *articleHandler) Unlike(ctx *gin.Context) {
	h.toggleLike(ctx, h.likeService.Unlike)
}

func (h *articleHandler) toggleLike(ctx *gin.Context, op func(c context.Context, userID, articleID int64) (int64, error)) {
	caller, ok := identity(ctx)
	if !ok {
		return
	}
	id, ok := articleID(ctx)
	if !ok {
		return
	}

	count, err := op(ctx.Request.Context(), caller.UserID, id)
	if err != nil {
		abortWithError(ctx, err, h.logger)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"likes": count})
}
