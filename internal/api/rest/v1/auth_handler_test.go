//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/apperr"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_SignUp(t *testing.T) {
	t.Run("returns the first session", func(t *testing.T) {
		r := setupTestRouter(t)
		r.authSvc.On("SignUp", mock.Anything, &auth.Credentials{Username: "alice", Password: "s3cret-pass"}).Return(testToken, nil)

		w := r.do(t, http.MethodPost, "/auth/signup", CredentialsRequest{Username: "alice", Password: "s3cret-pass"}, "")

		require.Equal(t, http.StatusCreated, w.Code)
		var resp map[string]string
		decode(t, w, &resp)
		assert.Equal(t, testToken, resp["session_id"])
	})

	t.Run("taken username", func(t *testing.T) {
		r := setupTestRouter(t)
		r.authSvc.On("SignUp", mock.Anything, mock.Anything).Return("", fmt.Errorf("username alice: %w", apperr.ErrConflict))

		w := r.do(t, http.MethodPost, "/auth/signup", CredentialsRequest{Username: "alice", Password: "s3cret-pass"}, "")

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_SignIn(t *testing.T) {
	t.Run("wrong password", func(t *testing.T) {
		r := setupTestRouter(t)
		r.authSvc.On("SignIn", mock.Anything, mock.Anything).Return("", auth.ErrInvalidCredentials)

		w := r.do(t, http.MethodPost, "/auth/signin", CredentialsRequest{Username: "alice", Password: "nope-nope"}, "")

		require.Equal(t, http.StatusUnauthorized, w.Code)
		var resp ErrorResponse
		decode(t, w, &resp)
		assert.Equal(t, "invalid credentials", resp.Message)
	})

	t.Run("missing fields look like wrong credentials", func(t *testing.T) {
		r := setupTestRouter(t)

		w := r.do(t, http.MethodPost, "/auth/signin", map[string]string{"username": "alice"}, "")

		require.Equal(t, http.StatusUnauthorized, w.Code)
		var resp ErrorResponse
		decode(t, w, &resp)
		assert.Equal(t, "invalid credentials", resp.Message)
		r.authSvc.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_SignOut(t *testing.T) {
	t.Run("ends the presented session", func(t *testing.T) {
		r := setupTestRouter(t)
		r.signedIn()
		r.authSvc.On("SignOut", mock.Anything, testToken).Return(nil)

		w := r.do(t, http.MethodPost, "/auth/signout", nil, testToken)

		assert.Equal(t, http.StatusNoContent, w.Code)
		r.authSvc.AssertExpectations(t)
	})

	t.Run("without session is denied and counted", func(t *testing.T) {
		r := setupTestRouter(t)

		w := r.do(t, http.MethodPost, "/auth/signout", nil, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		count, err := testutil.GatherAndCount(r.metrics.Registry(), "news_api_access_denied_total")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
