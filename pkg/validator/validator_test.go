package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type templateForm struct {
	Name      string `validate:"required"`
	StartTime string `validate:"required,hhmm"`
	EndTime   string `validate:"required,hhmm"`
}

func TestValidateHHMM(t *testing.T) {
	cv := NewValidator()

	valid := templateForm{Name: "Night", StartTime: "22:00", EndTime: "06:30"}
	assert.NoError(t, cv.Validate(&valid))

	cases := []string{"24:00", "7:00", "07:60", "0700", "seven"}
	for _, start := range cases {
		form := templateForm{Name: "Night", StartTime: start, EndTime: "06:30"}
		assert.Error(t, cv.Validate(&form), "expected %q to be rejected", start)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&templateForm{StartTime: "25:00", EndTime: "06:30"})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Name is required", formatted["Name"])
	assert.Equal(t, "StartTime must be a time in HH:MM format", formatted["StartTime"])
	assert.NotContains(t, formatted, "EndTime")
}
