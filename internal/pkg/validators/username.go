package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Usernames may contain letters, digits and the @ . + - _ characters.
var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// UsernameValidation validates that a username only contains the allowed
// character set.
func UsernameValidation(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}
