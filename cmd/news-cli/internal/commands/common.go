package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	grpcv1 "github.com/MGTheTrain/news-api/internal/api/grpc/v1"
	"github.com/MGTheTrain/news-api/internal/pkg/config"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// TokenEnv supplies the session token when --token is not given
const TokenEnv = "NEWS_API_TOKEN"

const defaultAddr = "localhost:50051"

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// addClientFlags registers the flags shared by every command talking to the gRPC API
func addClientFlags(cmd *cobra.Command, withToken bool) {
	cmd.Flags().String("addr", defaultAddr, "gRPC API address")
	if withToken {
		cmd.Flags().String("token", "", "Session token (defaults to $"+TokenEnv+")")
	}
}

// dial opens a plaintext connection to the gRPC API named by --addr
func dial(cmd *cobra.Command) (*grpc.ClientConn, error) {
	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return nil, fmt.Errorf("invalid addr flag: %w", err)
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return conn, nil
}

// authorized attaches the session token from --token or TokenEnv to the outgoing metadata
func authorized(cmd *cobra.Command) (context.Context, error) {
	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		token = os.Getenv(TokenEnv)
	}
	if token == "" {
		return nil, fmt.Errorf("a session token is required, pass --token or set %s", TokenEnv)
	}
	return metadata.AppendToOutgoingContext(cmd.Context(), grpcv1.AuthorizeKey, token), nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
