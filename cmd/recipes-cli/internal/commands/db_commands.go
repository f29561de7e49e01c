package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/PHedro/recipes/internal/app"
	"github.com/PHedro/recipes/internal/domain/recipes"
	"github.com/PHedro/recipes/internal/infrastructure/persistence"
	"github.com/PHedro/recipes/internal/pkg/config"
	"github.com/PHedro/recipes/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// seedUnits are the measurement units every fresh installation starts with.
var seedUnits = []struct {
	name         string
	abbreviation string
}{
	{"gram", "g"},
	{"kilogram", "kg"},
	{"milligram", "mg"},
	{"liter", "l"},
	{"milliliter", "ml"},
	{"teaspoon", "tsp"},
	{"tablespoon", "tbsp"},
	{"cup", "cup"},
	{"piece", "pc"},
	{"pinch", "pinch"},
}

// DBCommandHandler encapsulates logic for handling database operations via CLI.
type DBCommandHandler struct {
	logger logger.Logger
}

// NewDBCommandHandler initializes and returns a DBCommandHandler instance with
// a configured logger.
func NewDBCommandHandler() (*DBCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &DBCommandHandler{
		logger: loggerInstance,
	}, nil
}

// ProvisionDBCmd creates the configured database and migrates its schema
func (commandHandler *DBCommandHandler) ProvisionDBCmd(cmd *cobra.Command, _ []string) {
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

	if err := persistence.Migrate(db); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Database provisioned and schema migrated")
}

// DropDBCmd drops the configured database
func (commandHandler *DBCommandHandler) DropDBCmd(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	switch cfg.Database.Type {
	case config.PostgresDbType:
		if cfg.Database.Name == "" {
			commandHandler.logger.Error("database.name is required to drop a postgres database")
			return
		}
		if err := persistence.DropDatabase(cfg.Database.DSN, cfg.Database.Name); err != nil {
			commandHandler.logger.Error(err)
			return
		}
		commandHandler.logger.Info("Dropped database ", cfg.Database.Name)
	case config.SqliteDbType:
		if cfg.Database.DSN == "" || cfg.Database.DSN == ":memory:" {
			commandHandler.logger.Error("an in-memory sqlite database cannot be dropped")
			return
		}
		if err := os.Remove(cfg.Database.DSN); err != nil {
			commandHandler.logger.Error(err)
			return
		}
		commandHandler.logger.Info("Removed sqlite database file ", cfg.Database.DSN)
	default:
		commandHandler.logger.Error("unsupported database type ", cfg.Database.Type)
	}
}

// SeedDBCmd migrates the schema and inserts the common measurement units.
// Units that already exist are left untouched, so seeding is repeatable.
func (commandHandler *DBCommandHandler) SeedDBCmd(cmd *cobra.Command, _ []string) {
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

	if err := persistence.Migrate(db); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	unitRepo, err := persistence.NewGormUnitRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	unitService, err := app.NewUnitService(unitRepo, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ctx := context.Background()
	created := 0
	for _, seed := range seedUnits {
		if _, err := unitService.Create(ctx, seed.name, seed.abbreviation); err != nil {
			if errors.Is(err, recipes.ErrDuplicate) {
				commandHandler.logger.Info("Unit ", seed.name, " already present, skipping")
				continue
			}
			commandHandler.logger.Error(err)
			return
		}
		created++
	}

	commandHandler.logger.Info("Seeded ", created, " measurement units")
}

// InitDBCommands registers database-related commands
func InitDBCommands(rootCmd *cobra.Command) error {
	handler, err := NewDBCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create database command handler %w", err)
	}

	var dbCmd = &cobra.Command{
		Use:   "db",
		Short: "Manage the service database",
	}

	var provisionDBCmd = &cobra.Command{
		Use:   "provision",
		Short: "Create the database and migrate its schema",
		Run:   handler.ProvisionDBCmd,
	}
	addConfigFlag(provisionDBCmd)
	dbCmd.AddCommand(provisionDBCmd)

	var dropDBCmd = &cobra.Command{
		Use:   "drop",
		Short: "Drop the database",
		Run:   handler.DropDBCmd,
	}
	addConfigFlag(dropDBCmd)
	dbCmd.AddCommand(dropDBCmd)

	var seedDBCmd = &cobra.Command{
		Use:   "seed",
		Short: "Insert the common measurement units",
		Run:   handler.SeedDBCmd,
	}
	addConfigFlag(seedDBCmd)
	dbCmd.AddCommand(seedDBCmd)

	rootCmd.AddCommand(dbCmd)

	return nil
}
