package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, nested keys use "__"
// (e.g. NEWS_API_AUTH__PASS_PEPPER)
const EnvPrefix = "NEWS_API"

// Settings is the root configuration shared by the gRPC, REST and CLI entry points
type Settings struct {
	Server   ServerSettings   `mapstructure:"server"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Auth     AuthSettings     `mapstructure:"auth"`
	Metrics  MetricsSettings  `mapstructure:"metrics"`
}

// Validate validates every settings section
func (s *Settings) Validate() error {
	return errors.Join(
		s.Server.Validate(),
		s.Database.Validate(),
		s.Logger.Validate(),
		s.Auth.Validate(),
		s.Metrics.Validate(),
	)
}

// Load reads settings from an optional YAML file and the environment.
// A .env file in the working directory is loaded first when present;
// environment variables always win over file values.
func Load(configPath string) (*Settings, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &settings, nil
}

// every key needs a default, otherwise AutomaticEnv never binds it during Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.grpc_port", "50051")
	v.SetDefault("server.rest_port", "8080")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("database.type", PostgresDbType)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.log_format", LogFormatText)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)

	v.SetDefault("auth.pass_pepper", "")
	v.SetDefault("auth.secret_key", "")
	v.SetDefault("auth.secure_routes", "")
	v.SetDefault("auth.session_ttl", 720*time.Hour)
	v.SetDefault("auth.bcrypt_cost", 0)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", "9090")
	v.SetDefault("metrics.path", "/metrics")
}
