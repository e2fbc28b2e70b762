package validation

import (
	"testing"

	"vitalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterInput(t *testing.T) {
	t.Parallel()

	valid := models.RegisterInput{
		Name:     "carol",
		Password: "password",
		Age:      25,
		WeightKg: 55,
		HeightM:  1.6,
		Gender:   models.GenderFemale,
	}

	tests := []struct {
		name        string
		mutate      func(in *models.RegisterInput)
		expectError bool
	}{
		{"valid input", func(_ *models.RegisterInput) {}, false},
		{"gender omitted", func(in *models.RegisterInput) { in.Gender = "" }, false},
		{"missing name", func(in *models.RegisterInput) { in.Name = " " }, true},
		{"missing password", func(in *models.RegisterInput) { in.Password = "" }, true},
		{"negative age", func(in *models.RegisterInput) { in.Age = -1 }, true},
		{"negative weight", func(in *models.RegisterInput) { in.WeightKg = -5 }, true},
		{"negative height", func(in *models.RegisterInput) { in.HeightM = -0.1 }, true},
		{"unknown gender", func(in *models.RegisterInput) { in.Gender = "robot" }, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := valid
			tt.mutate(&in)
			err := ValidateRegisterInput(in)
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, &models.AppError{Code: models.CodeValidation})
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseDatetime(t *testing.T) {
	t.Parallel()

	for _, good := range []string{
		"2026-08-28T09:30",
		"2026-08-28T09:30:15",
		"2026-08-28T09:30:15Z",
		"2026-08-28",
	} {
		ts, err := ParseDatetime(good)
		require.NoError(t, err, good)
		assert.Equal(t, 2026, ts.Year())
	}

	for _, bad := range []string{"", "yesterday", "28/08/2026"} {
		_, err := ParseDatetime(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidateNonNegative(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateNonNegative("amountMl", 0))
	assert.NoError(t, ValidateNonNegative("amountMl", 250))
	assert.Error(t, ValidateNonNegative("amountMl", -1))
}
