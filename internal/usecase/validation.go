package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kervincort225/vyntra/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Minimum lengths for caller-supplied text fields.
const (
	minNameLength    = 2
	minMessageLength = 10
)

// local@domain.tld, no whitespace in any part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateCreateLeadInput checks every field and returns all violations at
// once rather than stopping at the first, so a form can show the full list.
// Phone, company and value are accepted as-is.
func ValidateCreateLeadInput(input entity.CreateLeadDTO) []ValidationError {
	var errors []ValidationError

	if len(strings.TrimSpace(input.Name)) < minNameLength {
		errors = append(errors, ValidationError{"name", fmt.Sprintf("must have at least %d characters", minNameLength)})
	}

	if !emailPattern.MatchString(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if len(strings.TrimSpace(input.Message)) < minMessageLength {
		errors = append(errors, ValidationError{"message", fmt.Sprintf("must have at least %d characters", minMessageLength)})
	}

	return errors
}
