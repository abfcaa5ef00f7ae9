package config

import (
	"fmt"
	"net"

	"github.com/go-playground/validator/v10"
)

// ServerSettings holds listener settings for the gRPC and REST front ends
type ServerSettings struct {
	Host           string   `mapstructure:"host"`
	GrpcPort       string   `mapstructure:"grpc_port" validate:"required,numeric"`
	RestPort       string   `mapstructure:"rest_port" validate:"required,numeric"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Validate checks that all fields in ServerSettings are valid
func (s *ServerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}

	return nil
}

// GrpcAddress returns the host:port the gRPC server listens on
func (s *ServerSettings) GrpcAddress() string {
	return net.JoinHostPort(s.Host, s.GrpcPort)
}

// RestAddress returns the host:port the REST server listens on
func (s *ServerSettings) RestAddress() string {
	return net.JoinHostPort(s.Host, s.RestPort)
}

// MetricsSettings controls the prometheus scrape endpoint
type MetricsSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    string `mapstructure:"port" validate:"omitempty,numeric"`
	Path    string `mapstructure:"path" validate:"omitempty,startswith=/"`
}

// Validate checks that all fields in MetricsSettings are valid
func (s *MetricsSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MetricsSettings: %w", err)
	}

	if s.Enabled && (s.Port == "" || s.Path == "") {
		return fmt.Errorf("metrics port and path are required when metrics are enabled")
	}

	return nil
}
