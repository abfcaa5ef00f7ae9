package v1

import (
	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"
	"github.com/MGTheTrain/news-api/internal/pkg/metrics"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// ServerDeps holds what NewServer wires into a grpc.Server
type ServerDeps struct {
	News    *NewsServer
	Auth    *AuthServer
	Gate    auth.Authorizer
	Metrics *metrics.RequestMetrics // optional
	Logger  logger.Logger
}

// NewServer creates a grpc.Server with the news and auth services registered behind
// recovery, logging, metrics and the access gate, in that order.
func NewServer(deps ServerDeps, opts ...grpc.ServerOption) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{
		RecoveryInterceptor(deps.Logger),
		LoggingInterceptor(deps.Logger),
	}
	if deps.Metrics != nil {
		interceptors = append(interceptors, MetricsInterceptor(deps.Metrics))
	}
	interceptors = append(interceptors, ChainRequestMiddleware(
		RoutePathMiddleware,
		AccessGateMiddleware(deps.Gate, deps.Metrics, deps.Logger),
	))

	opts = append(opts, grpc.ChainUnaryInterceptor(interceptors...))
	server := grpc.NewServer(opts...)

	RegisterNewsServiceServer(server, deps.News)
	RegisterAuthServiceServer(server, deps.Auth)
	reflection.Register(server)

	return server
}
