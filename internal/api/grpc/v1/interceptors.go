package v1

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/MGTheTrain/news-api/internal/domain/auth"
	"github.com/MGTheTrain/news-api/internal/pkg/apperr"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"
	"github.com/MGTheTrain/news-api/internal/pkg/metrics"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Metadata keys read by the access gate
const (
	RequestPathKey   = "x-request-path"
	AuthorizeKey     = "authorize"
	AuthorizationKey = "authorization"
)

// RequestMiddleware inspects or decorates the context of an incoming unary call
// before the handler runs. Returning an error aborts the call.
type RequestMiddleware func(ctx context.Context, fullMethod string) (context.Context, error)

// ChainRequestMiddleware runs the middlewares in order ahead of the handler
func ChainRequestMiddleware(middlewares ...RequestMiddleware) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		var err error
		for _, mw := range middlewares {
			ctx, err = mw(ctx, info.FullMethod)
			if err != nil {
				return nil, err
			}
		}
		return handler(ctx, req)
	}
}

// RoutePathMiddleware records the invoked method under RequestPathKey, replacing
// any value sent by the client.
func RoutePathMiddleware(ctx context.Context, fullMethod string) (context.Context, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	md = md.Copy()
	md.Set(RequestPathKey, fullMethod)
	return metadata.NewIncomingContext(ctx, md), nil
}

// AccessGateMiddleware authorizes the call recorded under RequestPathKey with the
// credential sent in the "authorize" (or "authorization") metadata.
func AccessGateMiddleware(gate auth.Authorizer, rpcMetrics *metrics.RequestMetrics, log logger.Logger) RequestMiddleware {
	return func(ctx context.Context, fullMethod string) (context.Context, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		path := firstValue(md, RequestPathKey)
		credential := firstValue(md, AuthorizeKey)
		if credential == "" {
			credential = firstValue(md, AuthorizationKey)
		}

		out, err := gate.Authorize(ctx, path, credential)
		if err != nil {
			if rpcMetrics != nil {
				rpcMetrics.Denied(metrics.TransportGRPC, fullMethod)
			}
			if !errors.Is(err, apperr.ErrUnauthenticated) {
				log.Error("Access gate failed: ", err)
				err = apperr.ErrUnauthenticated
			}
			return nil, toStatus(err, log)
		}
		return out, nil
	}
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// LoggingInterceptor logs every call with its status code and latency
func LoggingInterceptor(log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		msg := fmt.Sprintf("%s %s %s", info.FullMethod, code, time.Since(start))
		if code == codes.Internal || code == codes.Unknown {
			log.Warn(msg)
		} else {
			log.Info(msg)
		}
		return resp, err
	}
}

// MetricsInterceptor records request counts and latencies
func MetricsInterceptor(rpcMetrics *metrics.RequestMetrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		rpcMetrics.Observe(metrics.TransportGRPC, info.FullMethod, status.Code(err).String(), time.Since(start))
		return resp, err
	}
}

// RecoveryInterceptor turns a panicking handler into an Internal status
func RecoveryInterceptor(log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error(fmt.Sprintf("panic in %s: %v\n%s", info.FullMethod, r, debug.Stack()))
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}
