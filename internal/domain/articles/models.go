package articles

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MGTheTrain/news-api/internal/pkg/apperr"
	"github.com/MGTheTrain/news-api/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Paging limits for article listings
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Article is an authored post together with the names of its tags
type Article struct {
	ID             int64
	AuthorID       int64
	AuthorUsername string
	Title          string
	Content        string
	CreatedAt      time.Time
	Tags           []string
}

// ArticleInput carries the mutable fields of an article for create and update
type ArticleInput struct {
	Title   string   `validate:"required,max=255"`
	Content string   `validate:"required"`
	Tags    []string `validate:"tagnames"`
}

// Validate normalises the tag set in place, then checks the input.
// Tag limits apply to the normalised set, so blanks and duplicates never count.
func (in *ArticleInput) Validate() error {
	in.Tags = NormalizeTags(in.Tags)
	return validateStruct(in)
}

// PageQuery selects a page of articles strictly older than Before, newest first.
// A nil Before means "from now".
type PageQuery struct {
	Before *time.Time
	Limit  int
}

// Normalize clamps the page size into [1, MaxPageSize]
func (q *PageQuery) Normalize() {
	switch {
	case q.Limit <= 0:
		q.Limit = DefaultPageSize
	case q.Limit > MaxPageSize:
		q.Limit = MaxPageSize
	}
}

// Comment is a node of an article's comment tree
type Comment struct {
	ID        int64
	ArticleID int64
	UserID    int64
	ParentID  *int64
	Content   string
	CreatedAt time.Time
	Replies   []*Comment
}

// CommentInput carries a new comment
type CommentInput struct {
	ArticleID int64  `validate:"required,gt=0"`
	ParentID  *int64 `validate:"omitempty,gt=0"`
	Content   string `validate:"required,max=10000"`
}

// Validate checks the comment input
func (in *CommentInput) Validate() error {
	return validateStruct(in)
}

// NormalizeTags trims, drops blanks and dedupes tag names, returning them sorted
func NormalizeTags(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// BuildCommentTree nests a flat, creation-ordered comment list under its parents.
// Comments whose parent is missing from the list are treated as roots.
func BuildCommentTree(flat []*Comment) []*Comment {
	byID := make(map[int64]*Comment, len(flat))
	for _, c := range flat {
		byID[c.ID] = c
	}

	roots := make([]*Comment, 0)
	for _, c := range flat {
		if c.ParentID != nil {
			if parent, ok := byID[*c.ParentID]; ok {
				parent.Replies = append(parent.Replies, c)
				continue
			}
		}
		roots = append(roots, c)
	}
	return roots
}

var validate = validators.New()

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v: %w", messages, apperr.ErrInvalidArgument)
	}
	return fmt.Errorf("validation error: %v: %w", err, apperr.ErrInvalidArgument)
}
