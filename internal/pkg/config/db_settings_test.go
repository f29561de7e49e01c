//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name: "valid postgres settings",
			settings: &DatabaseSettings{
				Type: PostgresDbType,
				DSN:  "host=localhost user=postgres password=postgres port=5432 sslmode=disable",
				Name: "recipes",
			},
			expectedError: false,
		},
		{
			name: "valid sqlite settings without name",
			settings: &DatabaseSettings{
				Type: SqliteDbType,
				DSN:  ":memory:",
			},
			expectedError: false,
		},
		{
			name: "missing type",
			settings: &DatabaseSettings{
				DSN:  "host=localhost user=postgres",
				Name: "recipes",
			},
			expectedError: true,
		},
		{
			name: "missing DSN",
			settings: &DatabaseSettings{
				Type: PostgresDbType,
				Name: "recipes",
			},
			expectedError: true,
		},
		{
			name: "unsupported type",
			settings: &DatabaseSettings{
				Type: "mysql",
				DSN:  "user:password@tcp(localhost:3306)/recipes",
				Name: "recipes",
			},
			expectedError: true,
		},
		{
			name: "empty fields",
			settings: &DatabaseSettings{
				Type: "",
				DSN:  "",
				Name: "",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Validate the struct
			err := tt.settings.Validate()

			if tt.expectedError {
				// Expect an error when validation fails
				require.Error(t, err)
			} else {
				// Expect no error when validation passes
				require.NoError(t, err)
			}
		})
	}
}
