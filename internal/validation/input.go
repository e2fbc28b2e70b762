// Package validation provides input validation shared by the mock client
// and the development server.
package validation

import (
	"fmt"
	"strings"
	"time"

	"vitalog/internal/models"
)

// Datetime layouts accepted on record input. The first is the canonical
// ISO-like local form produced by datetime widgets.
var datetimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// ValidateCredentials checks the login name/password pair for required fields.
func ValidateCredentials(creds models.Credentials) error {
	if strings.TrimSpace(creds.Name) == "" || creds.Password == "" {
		return models.NewValidationError("name and password are required")
	}
	return nil
}

// ValidateRegisterInput checks required fields and value ranges for
// registration.
func ValidateRegisterInput(in models.RegisterInput) error {
	if strings.TrimSpace(in.Name) == "" || in.Password == "" {
		return models.NewValidationError("name and password are required")
	}
	if in.Age < 0 {
		return models.NewValidationError("age must not be negative")
	}
	if in.WeightKg < 0 {
		return models.NewValidationError("weightKg must not be negative")
	}
	if in.HeightM < 0 {
		return models.NewValidationError("heightM must not be negative")
	}
	switch in.Gender {
	case "", models.GenderMale, models.GenderFemale, models.GenderOther:
	default:
		return models.NewValidationError("gender must be one of male, female, other")
	}
	return nil
}

// ValidateDatetime checks that a record timestamp parses in one of the
// accepted layouts.
func ValidateDatetime(datetime string) error {
	if _, err := ParseDatetime(datetime); err != nil {
		return models.NewValidationError(fmt.Sprintf("invalid datetime %q", datetime))
	}
	return nil
}

// ParseDatetime parses a record timestamp in any accepted layout.
func ParseDatetime(datetime string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, datetime); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", datetime)
}

// ValidateNonNegative rejects negative numeric record values. Invalid values
// are a defined failure path, not silently corrected.
func ValidateNonNegative(field string, value float64) error {
	if value < 0 {
		return models.NewValidationError(field + " must not be negative")
	}
	return nil
}

// ValidateCategoryName checks a custom category name.
func ValidateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return models.NewValidationError("categoryName is required")
	}
	return nil
}
