package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/PHedro/recipes/internal/app"
	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/PHedro/recipes/internal/infrastructure/persistence"
	"github.com/PHedro/recipes/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// UserCommandHandler encapsulates logic for provisioning user accounts via CLI.
type UserCommandHandler struct {
	logger logger.Logger
}

// NewUserCommandHandler initializes and returns a UserCommandHandler instance
// with a configured logger.
func NewUserCommandHandler() (*UserCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &UserCommandHandler{
		logger: loggerInstance,
	}, nil
}

// CreateUserCmd creates a user account and logs the API token that grants it
// access. The token key is shown only once; store it safely.
func (commandHandler *UserCommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		commandHandler.logger.Error("invalid username flag ", err)
		return
	}
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		commandHandler.logger.Error("invalid email flag ", err)
		return
	}
	if username == "" || email == "" {
		commandHandler.logger.Error("both --username and --email are required")
		return
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Warn("Failed to close database connection: ", err)
		}
	}()

	userRepo, err := persistence.NewGormUserRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	tokenRepo, err := persistence.NewGormTokenRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	userService, err := app.NewUserService(userRepo, tokenRepo, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	user, token, err := userService.Create(context.Background(), username, email)
	if err != nil {
		if errors.Is(err, accounts.ErrDuplicate) {
			commandHandler.logger.Error("username or email is already taken")
			return
		}
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Created user ", user.Username, " with ID ", user.ID)
	commandHandler.logger.Info("API token: ", token.Key)
}

// InitUserCommands registers user-related commands
func InitUserCommands(rootCmd *cobra.Command) error {
	handler, err := NewUserCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create user command handler %w", err)
	}

	var usersCmd = &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	var createUserCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a user together with its API token",
		Run:   handler.CreateUserCmd,
	}
	createUserCmd.Flags().StringP("username", "", "", "Username of the new account")
	createUserCmd.Flags().StringP("email", "", "", "Email of the new account")
	addConfigFlag(createUserCmd)
	usersCmd.AddCommand(createUserCmd)

	rootCmd.AddCommand(usersCmd)

	return nil
}
