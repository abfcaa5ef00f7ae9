//go:build unit
// +build unit

package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MGTheTrain/news-api/internal/app"
	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/apperr"
	"github.com/MGTheTrain/news-api/internal/pkg/metrics"
	"github.com/MGTheTrain/news-api/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID int64 = 7

var testToken = strings.Repeat("0f", auth.TokenLength/2)

var testSecureRoutes = []string{
	"POST " + BasePath + "/auth/signout",
	"POST " + BasePath + "/articles",
	"PUT " + BasePath + "/articles/:id",
	"DELETE " + BasePath + "/articles/:id",
	"POST " + BasePath + "/articles/:id/comments",
	"POST " + BasePath + "/articles/:id/likes",
	"DELETE " + BasePath + "/articles/:id/likes",
}

type testRouter struct {
	engine   *gin.Engine
	articles *MockArticleService
	comments *MockCommentService
	likes    *MockLikeService
	authSvc  *MockAuthService
	sessions *MockSessionStore
	metrics  *metrics.RequestMetrics
}

func setupTestRouter(t *testing.T) *testRouter {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := testutil.SetupTestLogger(t)
	r := &testRouter{
		engine:   gin.New(),
		articles: new(MockArticleService),
		comments: new(MockCommentService),
		likes:    new(MockLikeService),
		authSvc:  new(MockAuthService),
		sessions: new(MockSessionStore),
		metrics:  metrics.NewRequestMetrics(),
	}

	gate, err := app.NewAccessGate(testSecureRoutes, r.sessions, log)
	require.NoError(t, err)

	SetupRoutes(r.engine, RouteDeps{
		ArticleService: r.articles,
		CommentService: r.comments,
		LikeService:    r.likes,
		AuthService:    r.authSvc,
		Gate:           gate,
		Metrics:        r.metrics,
		Logger:         log,
	})
	return r
}

// signedIn makes testToken resolve to testUserID
func (r *testRouter) signedIn() {
	r.sessions.On("Lookup", mock.Anything, testToken).Return(&auth.Session{Token: testToken, UserID: testUserID}, nil)
}

func (r *testRouter) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequestWithContext(context.Background(), method, BasePath+path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// TestSetupRoutes verifies every route is registered
func TestSetupRoutes(t *testing.T) {
	r := setupTestRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/auth/signup"},
		{http.MethodPost, "/auth/signin"},
		{http.MethodPost, "/auth/signout"},
		{http.MethodGet, "/articles"},
		{http.MethodPost, "/articles"},
		{http.MethodGet, "/articles/:id"},
		{http.MethodPut, "/articles/:id"},
		{http.MethodDelete, "/articles/:id"},
		{http.MethodGet, "/articles/:id/comments"},
		{http.MethodPost, "/articles/:id/comments"},
		{http.MethodPost, "/articles/:id/likes"},
		{http.MethodDelete, "/articles/:id/likes"},
	}

	registered := map[string]bool{}
	for _, info := range r.engine.Routes() {
		registered[info.Method+" "+info.Path] = true
	}

	for _, route := range routes {
		assert.True(t, registered[route.method+" "+BasePath+route.path], "%s %s is not registered", route.method, route.path)
	}

	for _, secure := range testSecureRoutes {
		assert.True(t, registered[secure], "secure route %s is not registered", secure)
	}
}

// TestAccessGateMiddleware verifies secure routes require a live session and public ones do not
func TestAccessGateMiddleware(t *testing.T) {
	t.Run("missing credential is rejected before the handler runs", func(t *testing.T) {
		r := setupTestRouter(t)

		w := r.do(t, http.MethodPost, "/articles", ArticleRequest{Title: "t", Content: "c"}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		r.articles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		r.sessions.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
	})

	t.Run("unknown session is rejected", func(t *testing.T) {
		r := setupTestRouter(t)
		r.sessions.On("Lookup", mock.Anything, testToken).Return(nil, apperr.ErrNotFound)

		w := r.do(t, http.MethodDelete, "/articles/3", nil, testToken)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		r.articles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("session store failure is rejected as unauthenticated", func(t *testing.T) {
		r := setupTestRouter(t)
		r.sessions.On("Lookup", mock.Anything, testToken).Return(nil, io.ErrUnexpectedEOF)

		w := r.do(t, http.MethodDelete, "/articles/3", nil, testToken)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotContains(t, w.Body.String(), io.ErrUnexpectedEOF.Error())
		r.articles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("public route ignores the missing credential", func(t *testing.T) {
		r := setupTestRouter(t)
		r.articles.On("List", mock.Anything, mock.Anything).Return(nil, nil)

		w := r.do(t, http.MethodGet, "/articles", nil, "")

		assert.Equal(t, http.StatusOK, w.Code)
		r.sessions.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
	})
}

// TestHTTPStatus verifies the error to status mapping
func TestHTTPStatus(t *testing.T) {
	cases := map[error]int{
		apperr.ErrNotFound:         http.StatusNotFound,
		apperr.ErrForbidden:        http.StatusForbidden,
		apperr.ErrUnauthenticated:  http.StatusUnauthorized,
		apperr.ErrConflict:         http.StatusConflict,
		apperr.ErrInvalidArgument:  http.StatusBadRequest,
		auth.ErrInvalidCredentials: http.StatusUnauthorized,
		io.ErrUnexpectedEOF:        http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, HTTPStatus(err), err.Error())
	}
}
