//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/MGTheTrain/news-api/internal/domain/articles"
	"github.com/MGTheTrain/news-api/internal/domain/auth"

	"github.com/stretchr/testify/mock"
)

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

// MockUserRepository is a mock implementation of auth.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *auth.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID int64) (*auth.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockCredentialVault is a mock implementation of auth.CredentialVault
type MockCredentialVault struct {
	mock.Mock
}

func (m *MockCredentialVault) Hash(password string) (string, string, error) {
	args := m.Called(password)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockCredentialVault) Verify(password, hash, salt string) error {
	args := m.Called(password, hash, salt)
	return args.Error(0)
}

// MockTokenIssuer is a mock implementation of auth.TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

// MockArticleRepository is a mock implementation of articles.ArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, authorID int64, input *articles.ArticleInput) (int64, error) {
	args := m.Called(ctx, authorID, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleRepository) GetByID(ctx context.Context, articleID int64) (*articles.Article, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*articles.Article), args.Error(1)
}

func (m *MockArticleRepository) Page(ctx context.Context, query *articles.PageQuery) ([]*articles.Article, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*articles.Article), args.Error(1)
}

func (m *MockArticleRepository) Update(ctx context.Context, authorID, articleID int64, input *articles.ArticleInput) error {
	args := m.Called(ctx, authorID, articleID, input)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(ctx context.Context, authorID, articleID int64) error {
	args := m.Called(ctx, authorID, articleID)
	return args.Error(0)
}

// MockCommentRepository is a mock implementation of articles.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, userID int64, input *articles.CommentInput) (int64, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]*articles.Comment, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*articles.Comment), args.Error(1)
}

// MockLikeRepository is a mock implementation of articles.LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Like(ctx context.Context, userID, articleID int64) error {
	args := m.Called(ctx, userID, articleID)
	return args.Error(0)
}

func (m *MockLikeRepository) Unlike(ctx context.Context, userID, articleID int64) error {
	args := m.Called(ctx, userID, articleID)
	return args.Error(0)
}

func (m *MockLikeRepository) Count(ctx context.Context, articleID int64) (int64, error) {
	args := m.Called(ctx, articleID)
	return args.Get(0).(int64), args.Error(1)
}
