package v1

import (
	"github.com/MGTheTrain/news-api/internal/domain/articles"
)

// Empty is the request or response of calls that carry no data
type Empty struct{}

// CreateArticleRequest creates an article authored by the caller
type CreateArticleRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// ArticleIDRequest addresses a single article
type ArticleIDRequest struct {
	ArticleID int64 `json:"article_id"`
}

// ArticleIDResponse returns the id of a created article
type ArticleIDResponse struct {
	ArticleID int64 `json:"article_id"`
}

// GetArticlesRequest pages through articles, newest first. LastTimestamp is the
// created_at of the last article of the previous page; empty starts from now.
type GetArticlesRequest struct {
	LastTimestamp string `json:"last_timestamp,omitempty"`
	PageSize      int32  `json:"page_size,omitempty"`
}

// UpdateArticleRequest replaces title, content and tags of an article
type UpdateArticleRequest struct {
	ArticleID int64    `json:"article_id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
}

// Article is the wire form of an article
type Article struct {
	ID             int64    `json:"id"`
	AuthorID       int64    `json:"author_id"`
	AuthorUsername string   `json:"author_username,omitempty"`
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	CreatedAt      string   `json:"created_at"`
	Tags           []string `json:"tags"`
}

// ArticlesResponse is one page of articles
type ArticlesResponse struct {
	Articles []*Article `json:"articles"`
}

// AddCommentRequest adds a comment, optionally replying to ParentID
type AddCommentRequest struct {
	ArticleID int64  `json:"article_id"`
	ParentID  *int64 `json:"parent_id,omitempty"`
	Content   string `json:"content"`
}

// CommentIDResponse returns the id of a created comment
type CommentIDResponse struct {
	CommentID int64 `json:"comment_id"`
}

// Comment is the wire form of a comment tree node
type Comment struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	ParentID  *int64     `json:"parent_id,omitempty"`
	Content   string     `json:"content"`
	CreatedAt string     `json:"created_at"`
	Replies   []*Comment `json:"replies,omitempty"`
}

// CommentsResponse holds the root comments of an article
type CommentsResponse struct {
	Comments []*Comment `json:"comments"`
}

// LikesResponse carries the like count after a like or unlike
type LikesResponse struct {
	Likes int64 `json:"likes"`
}

// CredentialsRequest carries sign up and sign in credentials
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse carries a new session token
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// NewArticle converts a domain article to its wire form
func NewArticle(a *articles.Article) *Article {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return &Article{
		ID:             a.ID,
		AuthorID:       a.AuthorID,
		AuthorUsername: a.AuthorUsername,
		Title:          a.Title,
		Content:        a.Content,
		CreatedAt:      articles.FormatTimestamp(a.CreatedAt),
		Tags:           tags,
	}
}

// NewComments converts a domain comment tree to its wire form
func NewComments(tree []*articles.Comment) []*Comment {
	out := make([]*Comment, 0, len(tree))
	for _, c := range tree {
		node := &Comment{
			ID:        c.ID,
			UserID:    c.UserID,
			ParentID:  c.ParentID,
			Content:   c.Content,
			CreatedAt: articles.FormatTimestamp(c.CreatedAt),
		}
		if len(c.Replies) > 0 {
			node.Replies = NewComments(c.Replies)
		}
		out = append(out, node)
	}
	return out
}
