//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/news-api/internal/domain/articles"
	"github.com/MGTheTrain/news-api/internal/pkg/apperr"
	"github.com/MGTheTrain/news-api/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArticleService_Create_NormalizesTags(t *testing.T) {
	repo := new(MockArticleRepository)
	svc, err := NewArticleService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	repo.On("Create", mock.Anything, int64(1), mock.MatchedBy(func(in *articles.ArticleInput) bool {
		return assert.ObjectsAreEqual([]string{"a", "b"}, in.Tags)
	})).Return(int64(42), nil)

	id, err := svc.Create(context.Background(), 1, &articles.ArticleInput{
		Title:   "t",
		Content: "c",
		Tags:    []string{" b", "a", "b", ""},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	repo.AssertExpectations(t)
}

func TestArticleService_Create_InvalidInput(t *testing.T) {
	repo := new(MockArticleRepository)
	svc, _ := NewArticleService(repo, testutil.SetupTestLogger(t))

	_, err := svc.Create(context.Background(), 1, &articles.ArticleInput{Content: "c"})

	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestArticleService_List_ClampsLimit(t *testing.T) {
	repo := new(MockArticleRepository)
	svc, _ := NewArticleService(repo, testutil.SetupTestLogger(t))

	repo.On("Page", mock.Anything, mock.MatchedBy(func(q *articles.PageQuery) bool {
		return q.Limit == articles.MaxPageSize
	})).Return([]*articles.Article{}, nil)

	_, err := svc.List(context.Background(), &articles.PageQuery{Limit: 5000})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestArticleService_UpdateDelete_PropagateKinds(t *testing.T) {
	repo := new(MockArticleRepository)
	svc, _ := NewArticleService(repo, testutil.SetupTestLogger(t))

	repo.On("Update", mock.Anything, int64(2), int64(9), mock.Anything).Return(apperr.ErrForbidden)
	repo.On("Delete", mock.Anything, int64(2), int64(10)).Return(apperr.ErrNotFound)

	err := svc.Update(context.Background(), 2, 9, &articles.ArticleInput{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	err = svc.Delete(context.Background(), 2, 10)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestCommentService_Tree(t *testing.T) {
	comments := new(MockCommentRepository)
	articleRepo := new(MockArticleRepository)
	svc, err := NewCommentService(comments, articleRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	root := int64(1)
	articleRepo.On("GetByID", mock.Anything, int64(3)).Return(&articles.Article{ID: 3}, nil)
	comments.On("ListByArticle", mock.Anything, int64(3)).Return([]*articles.Comment{
		{ID: 1, ArticleID: 3, Content: "root"},
		{ID: 2, ArticleID: 3, ParentID: &root, Content: "reply"},
	}, nil)

	tree, err := svc.Tree(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, "reply", tree[0].Replies[0].Content)
}

func TestCommentService_Tree_MissingArticle(t *testing.T) {
	comments := new(MockCommentRepository)
	articleRepo := new(MockArticleRepository)
	svc, _ := NewCommentService(comments, articleRepo, testutil.SetupTestLogger(t))

	articleRepo.On("GetByID", mock.Anything, int64(3)).Return(nil, apperr.ErrNotFound)

	_, err := svc.Tree(context.Background(), 3)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	comments.AssertNotCalled(t, "ListByArticle", mock.Anything, mock.Anything)
}

func TestLikeService_ReturnsCount(t *testing.T) {
	likes := new(MockLikeRepository)
	svc, err := NewLikeService(likes, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	likes.On("Like", mock.Anything, int64(1), int64(2)).Return(nil)
	likes.On("Unlike", mock.Anything, int64(1), int64(2)).Return(nil)
	likes.On("Count", mock.Anything, int64(2)).Return(int64(3), nil).Once()
	likes.On("Count", mock.Anything, int64(2)).Return(int64(2), nil).Once()

	count, err := svc.Like(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = svc.Unlike(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	likes.AssertExpectations(t)
}

func TestLikeService_LikeMissingArticle(t *testing.T) {
	likes := new(MockLikeRepository)
	svc, _ := NewLikeService(likes, testutil.SetupTestLogger(t))

	likes.On("Like", mock.Anything, int64(1), int64(2)).Return(apperr.ErrNotFound)

	_, err := svc.Like(context.Background(), 1, 2)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	likes.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
}
