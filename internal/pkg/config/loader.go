package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// loadDotEnv populates the process environment from the first .env file
// found. Missing files are fine: deployments may provide the environment
// directly.
func loadDotEnv() {
	for _, path := range []string{"settings/.env", ".env"} {
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}

// newViper builds a viper instance reading the YAML file at configPath with
// RECIPES_* environment variables taking precedence over file values.
func newViper(configPath string) (*viper.Viper, error) {
	loadDotEnv()

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("RECIPES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	return v, nil
}
