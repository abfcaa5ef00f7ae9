//go:build unit
// +build unit

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPepper = "pepper-0123456789abcdef"
	testSecret = "secret-0123456789abcdef"
)

func TestAuthSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *AuthSettings
		expectedError bool
	}{
		{
			name: "valid settings",
			settings: &AuthSettings{
				PassPepper:   testPepper,
				SecretKey:    testSecret,
				SecureRoutes: "/news.v1.NewsService/CreateArticle,POST /api/v1/news/articles",
				SessionTTL:   time.Hour,
			},
			expectedError: false,
		},
		{
			name: "missing pepper",
			settings: &AuthSettings{
				SecretKey: testSecret,
			},
			expectedError: true,
		},
		{
			name: "short secret key",
			settings: &AuthSettings{
				PassPepper: testPepper,
				SecretKey:  "short",
			},
			expectedError: true,
		},
		{
			name: "bcrypt cost below minimum",
			settings: &AuthSettings{
				PassPepper: testPepper,
				SecretKey:  testSecret,
				BcryptCost: 2,
			},
			expectedError: true,
		},
		{
			name: "relative secure route",
			settings: &AuthSettings{
				PassPepper:   testPepper,
				SecretKey:    testSecret,
				SecureRoutes: "news.v1.NewsService/CreateArticle",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAuthSettings_SecureRouteList(t *testing.T) {
	settings := &AuthSettings{
		SecureRoutes: " /a/B , ,/c/D,",
	}

	assert.Equal(t, []string{"/a/B", "/c/D"}, settings.SecureRouteList())
	assert.Empty(t, (&AuthSettings{}).SecureRouteList())
}
