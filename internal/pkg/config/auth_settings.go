package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings holds the secrets and route policy of the session layer.
// PassPepper and SecretKey are never persisted.
type AuthSettings struct {
	PassPepper   string        `mapstructure:"pass_pepper" validate:"required,min=16"`
	SecretKey    string        `mapstructure:"secret_key" validate:"required,min=16"`
	SecureRoutes string        `mapstructure:"secure_routes"`
	SessionTTL   time.Duration `mapstructure:"session_ttl" validate:"gte=0"`
	BcryptCost   int           `mapstructure:"bcrypt_cost" validate:"omitempty,min=4,max=31"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	for _, route := range s.SecureRouteList() {
		if !strings.HasPrefix(route, "/") && !strings.Contains(route, " /") {
			return fmt.Errorf("secure route %q must be an absolute path", route)
		}
	}

	return nil
}

// SecureRouteList splits the comma separated secure route list, dropping blanks
func (s *AuthSettings) SecureRouteList() []string {
	var routes []string
	for _, route := range strings.Split(s.SecureRoutes, ",") {
		route = strings.TrimSpace(route)
		if route != "" {
			routes = append(routes, route)
		}
	}
	return routes
}
