// Package main is the entry point for the news-api server.
// It serves the gRPC API, its REST mirror and, when enabled, the prometheus scrape endpoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcv1 "github.com/MGTheTrain/news-api/internal/api/grpc/v1"
	restv1 "github.com/MGTheTrain/news-api/internal/api/rest/v1"
	"github.com/MGTheTrain/news-api/internal/bootstrap"
	"github.com/MGTheTrain/news-api/internal/pkg/config"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"
	"github.com/MGTheTrain/news-api/internal/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/app.yaml"
	}

	settings, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&settings.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	container, err := bootstrap.NewContainer(settings, true, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Error("Failed to close database: ", err)
		}
	}()

	var requestMetrics *metrics.RequestMetrics
	if settings.Metrics.Enabled {
		requestMetrics = metrics.NewRequestMetrics()
	}

	grpcServer, err := newGRPCServer(container, requestMetrics, log)
	if err != nil {
		return fmt.Errorf("failed to initialize gRPC server: %w", err)
	}

	restServer := newRESTServer(settings, container, requestMetrics, log)

	var metricsServer *http.Server
	if requestMetrics != nil {
		metricsServer = newMetricsServer(settings, requestMetrics)
	}

	// Start servers with graceful shutdown
	return serve(settings, grpcServer, restServer, metricsServer, log)
}

func newGRPCServer(c *bootstrap.Container, requestMetrics *metrics.RequestMetrics, log logger.Logger) (*grpc.Server, error) {
	newsServer, err := grpcv1.NewNewsServer(c.ArticleService, c.CommentService, c.LikeService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create news server: %w", err)
	}

	authServer, err := grpcv1.NewAuthServer(c.AuthService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth server: %w", err)
	}

	return grpcv1.NewServer(grpcv1.ServerDeps{
		News:    newsServer,
		Auth:    authServer,
		Gate:    c.Gate,
		Metrics: requestMetrics,
		Logger:  log,
	}), nil
}

func newRESTServer(settings *config.Settings, c *bootstrap.Container, requestMetrics *metrics.RequestMetrics, log logger.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	origins := settings.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	restv1.SetupRoutes(r, restv1.RouteDeps{
		ArticleService: c.ArticleService,
		CommentService: c.CommentService,
		LikeService:    c.LikeService,
		AuthService:    c.AuthService,
		Gate:           c.Gate,
		Metrics:        requestMetrics,
		Logger:         log,
	})

	return &http.Server{
		Addr:              settings.Server.RestAddress(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func newMetricsServer(settings *config.Settings, requestMetrics *metrics.RequestMetrics) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(settings.Metrics.Path, requestMetrics.Handler())

	return &http.Server{
		Addr:              net.JoinHostPort(settings.Server.Host, settings.Metrics.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// serve runs every server until one fails or a termination signal arrives, then stops them all
func serve(settings *config.Settings, grpcServer *grpc.Server, restServer, metricsServer *http.Server, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lis, err := net.Listen("tcp", settings.Server.GrpcAddress())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", settings.Server.GrpcAddress(), err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("gRPC server starting on ", settings.Server.GrpcAddress())
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("gRPC server failed: %w", err)
		}
		return nil
	})

	httpServers := []*http.Server{restServer}
	if metricsServer != nil {
		httpServers = append(httpServers, metricsServer)
	}
	for _, srv := range httpServers {
		g.Go(func() error {
			log.Info("HTTP server starting on ", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("HTTP server on %s failed: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down servers...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		for _, srv := range httpServers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("HTTP server shutdown error: ", err)
			}
		}
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("Servers stopped gracefully")
	return nil
}
