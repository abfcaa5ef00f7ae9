//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/news-api/internal/domain/articles"
	"github.com/MGTheTrain/news-api/internal/domain/auth"

	"github.com/stretchr/testify/mock"
)

// MockArticleService is a mock implementation of articles.ArticleService
type MockArticleService struct {
	mock.Mock
}

func (m *MockArticleService) Create(ctx context.Context, authorID int64, input *articles.ArticleInput) (int64, error) {
	args := m.Called(ctx, authorID, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleService) GetByID(ctx context.Context, articleID int64) (*articles.Article, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*articles.Article), args.Error(1)
}

func (m *MockArticleService) List(ctx context.Context, query *articles.PageQuery) ([]*articles.Article, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*articles.Article), args.Error(1)
}

func (m *MockArticleService) Update(ctx context.Context, authorID, articleID int64, input *articles.ArticleInput) error {
	args := m.Called(ctx, authorID, articleID, input)
	return args.Error(0)
}

func (m *MockArticleService) Delete(ctx context.Context, authorID, articleID int64) error {
	args := m.Called(ctx, authorID, articleID)
	return args.Error(0)
}

// MockCommentService is a mock implementation of articles.CommentService
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Add(ctx context.Context, userID int64, input *articles.CommentInput) (int64, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentService) Tree(ctx context.Context, articleID int64) ([]*articles.Comment, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*articles.Comment), args.Error(1)
}

// MockLikeService is a mock implementation of articles.LikeService
type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) Like(ctx context.Context, userID, articleID int64) (int64, error) {
	args := m.Called(ctx, userID, articleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeService) Unlike(ctx context.Context, userID, articleID int64) (int64, error) {
	args := m.Called(ctx, userID, articleID)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuthService is a mock implementation of auth.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignUp(ctx context.Context, credentials *auth.Credentials) (string, error) {
	args := m.Called(ctx, credentials)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) SignIn(ctx context.Context, credentials *auth.Credentials) (string, error) {
	args := m.Called(ctx, credentials)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) SignOut(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockSessionStore is a mock implementation of auth.SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, session *auth.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Lookup(ctx context.Context, token string) (*auth.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuthorizer is a mock implementation of auth.Authorizer
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) Authorize(ctx context.Context, path, credential string) (context.Context, error) {
	args := m.Called(ctx, path, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}
