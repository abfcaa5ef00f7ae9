package v1

import (
	"github.com/MGTheTrain/news-api/internal/domain/articles"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Message string `json:"message"`
}

// ArticleRequest is the body of article create and update requests
type ArticleRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// ListArticlesQuery are the query parameters of the article listing
type ListArticlesQuery struct {
	LastTimestamp string `form:"last_timestamp"`
	PageSize      int    `form:"page_size" binding:"gte=0"`
}

// CommentRequest is the body of comment creation requests
type CommentRequest struct {
	ParentID *int64 `json:"parent_id"`
	Content  string `json:"content" binding:"required"`
}

// CredentialsRequest is the body of sign up and sign in requests
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ArticleResponse is the wire form of an article
type ArticleResponse struct {
	ID             int64    `json:"id"`
	AuthorID       int64    `json:"author_id"`
	AuthorUsername string   `json:"author_username,omitempty"`
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	CreatedAt      string   `json:"created_at"`
	Tags           []string `json:"tags"`
}

// CommentResponse is the wire form of a comment tree node
type CommentResponse struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"user_id"`
	ParentID  *int64             `json:"parent_id,omitempty"`
	Content   string             `json:"content"`
	CreatedAt string             `json:"created_at"`
	Replies   []*CommentResponse `json:"replies,omitempty"`
}

func newArticleResponse(a *articles.Article) *ArticleResponse {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return &ArticleResponse{
		ID:             a.ID,
		AuthorID:       a.AuthorID,
		AuthorUsername: a.AuthorUsername,
		Title:          a.Title,
		Content:        a.Content,
		CreatedAt:      articles.FormatTimestamp(a.CreatedAt),
		Tags:           tags,
	}
}

func newCommentResponses(tree []*articles.Comment) []*CommentResponse {
	out := make([]*CommentResponse, 0, len(tree))
	for _, c := range tree {
		node := &CommentResponse{
			ID:        c.ID,
			UserID:    c.UserID,
			ParentID:  c.ParentID,
			Content:   c.Content,
			CreatedAt: articles.FormatTimestamp(c.CreatedAt),
		}
		if len(c.Replies) > 0 {
			node.Replies = newCommentResponses(c.Replies)
		}
		out = append(out, node)
	}
	return out
}
