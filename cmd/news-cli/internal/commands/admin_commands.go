package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/news-api/internal/bootstrap"
	"github.com/MGTheTrain/news-api/internal/pkg/config"
	"github.com/MGTheTrain/news-api/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AdminCommandHandler runs maintenance tasks directly against the database
type AdminCommandHandler struct {
	logger logger.Logger
}

// NewAdminCommandHandler initializes an AdminCommandHandler with a console logger
func NewAdminCommandHandler() (*AdminCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &AdminCommandHandler{logger: loggerInstance}, nil
}

func (h *AdminCommandHandler) container(cmd *cobra.Command, migrate bool) (*bootstrap.Container, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	settings, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.NewContainer(settings, migrate, h.logger)
}

// MigrateCmd creates or updates the database schema
func (h *AdminCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	c, err := h.container(cmd, true)
	if err != nil {
		return err
	}
	return c.Close()
}

// PurgeSessionsCmd deletes sessions past their time to live
func (h *AdminCommandHandler) PurgeSessionsCmd(cmd *cobra.Command, _ []string) error {
	c, err := h.container(cmd, false)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	purged, err := c.Sessions.PurgeExpired(cmd.Context())
	if err != nil {
		return err
	}
	h.logger.Info("Purged expired sessions: ", purged)
	return nil
}

// VerifyPasswordCmd checks a password against the stored credentials of a user
func (h *AdminCommandHandler) VerifyPasswordCmd(cmd *cobra.Command, _ []string) error {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		return fmt.Errorf("invalid username flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}

	c, err := h.container(cmd, false)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	user, err := c.Users.GetByUsername(cmd.Context(), username)
	if err != nil {
		return err
	}
	if err := c.Vault.Verify(password, user.PasswordHash, user.Salt); err != nil {
		return fmt.Errorf("password does not match for %s: %w", username, err)
	}

	h.logger.Info("Password matches for user ", username)
	return nil
}

// InitAdminCommands registers the database maintenance commands
func InitAdminCommands(rootCmd *cobra.Command) error {
	handler, err := NewAdminCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin command handler: %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  handler.MigrateCmd,
	}
	migrateCmd.Flags().String("config", "", "Path to the YAML config file")
	rootCmd.AddCommand(migrateCmd)

	var purgeSessionsCmd = &cobra.Command{
		Use:   "purge-sessions",
		Short: "Delete sessions past auth.session_ttl",
		RunE:  handler.PurgeSessionsCmd,
	}
	purgeSessionsCmd.Flags().String("config", "", "Path to the YAML config file")
	rootCmd.AddCommand(purgeSessionsCmd)

	var verifyPasswordCmd = &cobra.Command{
		Use:   "verify-password",
		Short: "Check a password against a user's stored hash, salt and the configured pepper",
		RunE:  handler.VerifyPasswordCmd,
	}
	verifyPasswordCmd.Flags().String("config", "", "Path to the YAML config file")
	verifyPasswordCmd.Flags().String("username", "", "Username")
	verifyPasswordCmd.Flags().String("password", "", "Password to check")
	_ = verifyPasswordCmd.MarkFlagRequired("username")
	_ = verifyPasswordCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(verifyPasswordCmd)

	return nil
}
