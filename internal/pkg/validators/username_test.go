//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsernameValidation(t *testing.T) {
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("username", UsernameValidation))

	type subject struct {
		Username string `validate:"username"`
	}

	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"plain", "chef", true},
		{"with digits", "chef42", true},
		{"with separators", "chef.de_cuisine+test@home", true},
		{"with space", "head chef", false},
		{"with slash", "chef/42", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(&subject{Username: tt.username})

			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
