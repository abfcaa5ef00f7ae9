package commands

import (
	"fmt"

	grpcv1 "github.com/MGTheTrain/news-api/internal/api/grpc/v1"

	"github.com/spf13/cobra"
)

// AuthCommandHandler calls news.v1.AuthService
type AuthCommandHandler struct{}

func credentials(cmd *cobra.Command) (*grpcv1.CredentialsRequest, error) {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		return nil, fmt.Errorf("invalid username flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return nil, fmt.Errorf("invalid password flag: %w", err)
	}
	return &grpcv1.CredentialsRequest{Username: username, Password: password}, nil
}

// SignUpCmd registers a user and prints its session token
func (h *AuthCommandHandler) SignUpCmd(cmd *cobra.Command, _ []string) error {
	req, err := credentials(cmd)
	if err != nil {
		return err
	}

	conn, err := dial(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	resp, err := grpcv1.NewAuthServiceClient(conn).SignUp(cmd.Context(), req)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), resp)
}

// SignInCmd opens a new session and prints its token
func (h *AuthCommandHandler) SignInCmd(cmd *cobra.Command, _ []string) error {
	req, err := credentials(cmd)
	if err != nil {
		return err
	}

	conn, err := dial(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	resp, err := grpcv1.NewAuthServiceClient(conn).SignIn(cmd.Context(), req)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), resp)
}

// SignOutCmd ends the session given by --token
func (h *AuthCommandHandler) SignOutCmd(cmd *cobra.Command, _ []string) error {
	ctx, err := authorized(cmd)
	if err != nil {
		return err
	}

	conn, err := dial(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	_, err = grpcv1.NewAuthServiceClient(conn).SignOut(ctx, &grpcv1.Empty{})
	return err
}

// InitAuthCommands registers the sign up, sign in and sign out commands
func InitAuthCommands(rootCmd *cobra.Command) error {
	handler := &AuthCommandHandler{}

	var signUpCmd = &cobra.Command{
		Use:   "signup",
		Short: "Register a user",
		RunE:  handler.SignUpCmd,
	}
	var signInCmd = &cobra.Command{
		Use:   "signin",
		Short: "Sign in and print a session token",
		RunE:  handler.SignInCmd,
	}
	for _, c := range []*cobra.Command{signUpCmd, signInCmd} {
		addClientFlags(c, false)
		c.Flags().String("username", "", "Username")
		c.Flags().String("password", "", "Password")
		_ = c.MarkFlagRequired("username")
		_ = c.MarkFlagRequired("password")
		rootCmd.AddCommand(c)
	}

	var signOutCmd = &cobra.Command{
		Use:   "signout",
		Short: "End the current session",
		RunE:  handler.SignOutCmd,
	}
	addClientFlags(signOutCmd, true)
	rootCmd.AddCommand(signOutCmd)

	return nil
}
