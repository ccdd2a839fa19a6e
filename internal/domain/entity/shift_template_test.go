package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdaysDecoding(t *testing.T) {
	tmpl := ShiftTemplate{DaysOfWeek: JSON{"days": []interface{}{float64(0), float64(2), float64(4)}}}
	assert.Equal(t, []int{0, 2, 4}, tmpl.Weekdays())

	empty := ShiftTemplate{DaysOfWeek: JSON{}}
	assert.Nil(t, empty.Weekdays())
}

func TestAppliesOnMondayBasedDays(t *testing.T) {
	// Monday and Sunday in template numbering
	tmpl := ShiftTemplate{DaysOfWeek: JSON{"days": []interface{}{float64(0), float64(6)}}}

	assert.True(t, tmpl.AppliesOn(time.Monday))
	assert.True(t, tmpl.AppliesOn(time.Sunday))
	assert.False(t, tmpl.AppliesOn(time.Tuesday))
	assert.False(t, tmpl.AppliesOn(time.Saturday))
}
