package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/apperr"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"
)

const bearerPrefix = "Bearer "

// accessGate implements the auth.Authorizer interface against an exact-match route set
type accessGate struct {
	secure   map[string]struct{}
	sessions auth.SessionStore
	logger   logger.Logger
}

// NewAccessGate creates an Authorizer that requires a live session for every route in secureRoutes.
// Routes are matched exactly; the set is fixed for the lifetime of the gate.
func NewAccessGate(secureRoutes []string, sessions auth.SessionStore, logger logger.Logger) (auth.Authorizer, error) {
	if sessions == nil {
		return nil, errors.New("session store is required")
	}

	secure := make(map[string]struct{}, len(secureRoutes))
	for _, route := range secureRoutes {
		route = strings.TrimSpace(route)
		if route != "" {
			secure[route] = struct{}{}
		}
	}

	return &accessGate{
		secure:   secure,
		sessions: sessions,
		logger:   logger,
	}, nil
}

// Authorize lets requests to public routes through untouched and resolves the
// session of requests to secure routes into an auth.Identity on the returned context.
func (g *accessGate) Authorize(ctx context.Context, path, credential string) (context.Context, error) {
	if path == "" {
		return nil, fmt.Errorf("request path missing: %w", apperr.ErrUnauthenticated)
	}
	if _, ok := g.secure[path]; !ok {
		return ctx, nil
	}

	token := strings.TrimPrefix(strings.TrimSpace(credential), bearerPrefix)
	if token == "" {
		return nil, fmt.Errorf("credential missing for %s: %w", path, apperr.ErrUnauthenticated)
	}
	if !auth.WellFormedToken(token) {
		return nil, fmt.Errorf("malformed credential for %s: %w", path, apperr.ErrUnauthenticated)
	}

	session, err := g.sessions.Lookup(ctx, token)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("unknown session for %s: %w", path, apperr.ErrUnauthenticated)
		}
		g.logger.Error("Session lookup failed: ", err)
		return nil, fmt.Errorf("session lookup failed for %s: %w", path, apperr.ErrUnauthenticated)
	}

	return auth.WithIdentity(ctx, auth.Identity{
		UserID:       session.UserID,
		SessionToken: token,
	}), nil
}
