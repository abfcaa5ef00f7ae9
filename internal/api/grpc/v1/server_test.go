//go:build unit
// +build unit

package v1

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/news-api/internal/app"
	"github.com/MGTheTrain/news-api/internal/domain/articles"
	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/apperr"
	"github.com/MGTheTrain/news-api/internal/pkg/metrics"
	"github.com/MGTheTrain/news-api/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

var testToken = strings.Repeat("0f", auth.TokenLength/2)

var testSecureRoutes = []string{
	NewsService_CreateArticle_FullMethodName,
	NewsService_UpdateArticle_FullMethodName,
	NewsService_DeleteArticle_FullMethodName,
	NewsService_AddComment_FullMethodName,
	NewsService_LikeArticle_FullMethodName,
	NewsService_UnlikeArticle_FullMethodName,
	AuthService_SignOut_FullMethodName,
}

type testHarness struct {
	news     *NewsServiceClient
	auth     *AuthServiceClient
	articles *MockArticleService
	comments *MockCommentService
	likes    *MockLikeService
	authSvc  *MockAuthService
	sessions *MockSessionStore
	metrics  *metrics.RequestMetrics
}

func setupHarness(t *testing.T) *testHarness {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	h := &testHarness{
		articles: new(MockArticleService),
		comments: new(MockCommentService),
		likes:    new(MockLikeService),
		authSvc:  new(MockAuthService),
		sessions: new(MockSessionStore),
		metrics:  metrics.NewRequestMetrics(),
	}

	gate, err := app.NewAccessGate(testSecureRoutes, h.sessions, log)
	require.NoError(t, err)
	newsServer, err := NewNewsServer(h.articles, h.comments, h.likes, log)
	require.NoError(t, err)
	authServer, err := NewAuthServer(h.authSvc, log)
	require.NoError(t, err)

	server := NewServer(ServerDeps{News: newsServer, Auth: authServer, Gate: gate, Metrics: h.metrics, Logger: log})

	lis := bufconn.Listen(1 << 20)
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	h.news = NewNewsServiceClient(conn)
	h.auth = NewAuthServiceClient(conn)
	return h
}

func withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), AuthorizeKey, token)
}

func (h *testHarness) expectSession(userID int64) {
	h.sessions.On("Lookup", mock.Anything, testToken).Return(&auth.Session{Token: testToken, UserID: userID}, nil)
}

func TestNewsServer_CreateArticle_RequiresSession(t *testing.T) {
	h := setupHarness(t)

	_, err := h.news.CreateArticle(context.Background(), &CreateArticleRequest{Title: "t", Content: "c"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	h.sessions.On("Lookup", mock.Anything, testToken).Return(nil, apperr.ErrNotFound)
	_, err = h.news.CreateArticle(withToken(testToken), &CreateArticleRequest{Title: "t", Content: "c"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	h.articles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewsServer_CreateArticle_SpoofedPathIgnored(t *testing.T) {
	h := setupHarness(t)
	ctx := metadata.AppendToOutgoingContext(context.Background(), RequestPathKey, NewsService_GetArticle_FullMethodName)

	_, err := h.news.CreateArticle(ctx, &CreateArticleRequest{Title: "t", Content: "c"})

	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	h.articles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewsServer_CreateArticle_Success(t *testing.T) {
	h := setupHarness(t)
	h.expectSession(7)
	h.articles.On("Create", mock.Anything, int64(7), &articles.ArticleInput{
		Title: "Hello", Content: "World", Tags: []string{"go"},
	}).Return(int64(99), nil)

	resp, err := h.news.CreateArticle(withToken(testToken), &CreateArticleRequest{Title: "Hello", Content: "World", Tags: []string{"go"}})

	require.NoError(t, err)
	assert.Equal(t, int64(99), resp.ArticleID)
	h.articles.AssertExpectations(t)
}

func TestNewsServer_BearerTokenAccepted(t *testing.T) {
	h := setupHarness(t)
	h.expectSession(7)
	h.likes.On("Like", mock.Anything, int64(7), int64(5)).Return(int64(1), nil)

	resp, err := h.news.LikeArticle(withToken("Bearer "+testToken), &ArticleIDRequest{ArticleID: 5})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Likes)
}

func TestNewsServer_GetArticle(t *testing.T) {
	h := setupHarness(t)
	created := time.Date(2024, 3, 4, 5, 6, 7, 123456000, time.UTC)
	h.articles.On("GetByID", mock.Anything, int64(1)).Return(&articles.Article{
		ID: 1, AuthorID: 2, AuthorUsername: "alice", Title: "t", Content: "c", CreatedAt: created, Tags: []string{"x"},
	}, nil)
	h.articles.On("GetByID", mock.Anything, int64(2)).Return(nil, apperr.ErrNotFound)

	article, err := h.news.GetArticle(context.Background(), &ArticleIDRequest{ArticleID: 1})
	require.NoError(t, err)
	assert.Equal(t, "alice", article.AuthorUsername)
	assert.Equal(t, "2024-03-04 05:06:07.123456", article.CreatedAt)
	assert.Equal(t, []string{"x"}, article.Tags)

	_, err = h.news.GetArticle(context.Background(), &ArticleIDRequest{ArticleID: 2})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestNewsServer_GetArticles(t *testing.T) {
	h := setupHarness(t)
	cursor := time.Date(2024, 3, 4, 5, 6, 7, 500000000, time.UTC)
	h.articles.On("List", mock.Anything, &articles.PageQuery{Before: &cursor, Limit: 2}).Return([]*articles.Article{
		{ID: 3, CreatedAt: cursor.Add(-time.Second)},
		{ID: 2, CreatedAt: cursor.Add(-2 * time.Second)},
	}, nil)

	resp, err := h.news.GetArticles(context.Background(), &GetArticlesRequest{LastTimestamp: "2024-03-04 05:06:07.5", PageSize: 2})
	require.NoError(t, err)
	require.Len(t, resp.Articles, 2)
	assert.Equal(t, int64(3), resp.Articles[0].ID)
	assert.NotNil(t, resp.Articles[1].Tags)

	_, err = h.news.GetArticles(context.Background(), &GetArticlesRequest{LastTimestamp: "yesterday"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestNewsServer_UpdateAndDelete_Ownership(t *testing.T) {
	h := setupHarness(t)
	h.expectSession(7)
	h.articles.On("Update", mock.Anything, int64(7), int64(1), mock.Anything).Return(apperr.ErrForbidden)
	h.articles.On("Delete", mock.Anything, int64(7), int64(2)).Return(apperr.ErrNotFound)

	_, err := h.news.UpdateArticle(withToken(testToken), &UpdateArticleRequest{ArticleID: 1, Title: "t", Content: "c"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = h.news.DeleteArticle(withToken(testToken), &ArticleIDRequest{ArticleID: 2})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestNewsServer_Comments(t *testing.T) {
	h := setupHarness(t)
	h.expectSession(7)
	parent := int64(10)
	h.comments.On("Add", mock.Anything, int64(7), &articles.CommentInput{ArticleID: 1, ParentID: &parent, Content: "hi"}).Return(int64(11), nil)
	h.comments.On("Tree", mock.Anything, int64(1)).Return([]*articles.Comment{
		{ID: 10, Content: "root", Replies: []*articles.Comment{{ID: 11, ParentID: &parent, Content: "hi"}}},
	}, nil)

	added, err := h.news.AddComment(withToken(testToken), &AddCommentRequest{ArticleID: 1, ParentID: &parent, Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), added.CommentID)

	tree, err := h.news.GetComments(context.Background(), &ArticleIDRequest{ArticleID: 1})
	require.NoError(t, err)
	require.Len(t, tree.Comments, 1)
	require.Len(t, tree.Comments[0].Replies, 1)
	assert.Equal(t, &parent, tree.Comments[0].Replies[0].ParentID)
}

func TestNewsServer_InternalErrorsHidden(t *testing.T) {
	h := setupHarness(t)
	h.articles.On("GetByID", mock.Anything, int64(1)).Return(nil, errors.New("relation \"articles\" does not exist"))

	_, err := h.news.GetArticle(context.Background(), &ArticleIDRequest{ArticleID: 1})

	st, _ := status.FromError(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal error", st.Message())
}

func TestAuthServer_SignUpSignIn(t *testing.T) {
	h := setupHarness(t)
	creds := &auth.Credentials{Username: "alice", Password: "password123"}
	h.authSvc.On("SignUp", mock.Anything, creds).Return(testToken, nil)
	h.authSvc.On("SignIn", mock.Anything, creds).Return("", auth.ErrInvalidCredentials)

	resp, err := h.auth.SignUp(context.Background(), &CredentialsRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, testToken, resp.SessionID)

	_, err = h.auth.SignIn(context.Background(), &CredentialsRequest{Username: "alice", Password: "password123"})
	st, _ := status.FromError(err)
	assert.Equal(t, codes.Unauthenticated, st.Code())
	assert.Equal(t, "invalid credentials", st.Message())
}

func TestAuthServer_SignOut(t *testing.T) {
	h := setupHarness(t)
	h.expectSession(7)
	h.authSvc.On("SignOut", mock.Anything, testToken).Return(nil)

	_, err := h.auth.SignOut(context.Background(), &Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = h.auth.SignOut(withToken(testToken), &Empty{})
	require.NoError(t, err)
	h.authSvc.AssertExpectations(t)
}
