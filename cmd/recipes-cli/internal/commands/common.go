package commands

import (
	"fmt"
	"os"

	"github.com/PHedro/recipes/internal/pkg/config"
	"github.com/PHedro/recipes/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// defaultConfigPath is used when neither --config nor CONFIG_PATH is set.
const defaultConfigPath = "../../configs/rest-api.yaml"

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
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

// loadConfig resolves the configuration file of a command: the --config flag
// wins, then CONFIG_PATH, then the default path relative to the binary dir.
func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config from %s: %w", configPath, err)
	}

	return cfg, nil
}

// addConfigFlag registers the shared --config flag on a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "", "", "Path to the YAML config file (falls back to CONFIG_PATH)")
}
