package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWorkedHours(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		end           time.Time
		breakDuration int
		want          float64
	}{
		{"full day with break", start.Add(8 * time.Hour), 30, 7.5},
		{"no break", start.Add(8 * time.Hour), 0, 8},
		{"rounds to two decimals", start.Add(7*time.Hour + 25*time.Minute), 0, 7.42},
		{"break exceeds length", start.Add(30 * time.Minute), 60, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Shift{StartDatetime: start, EndDatetime: tt.end, BreakDuration: tt.breakDuration}
			assert.InDelta(t, tt.want, s.WorkedHours(), 0.0001)
		})
	}
}

func TestIsOpen(t *testing.T) {
	s := &Shift{}
	assert.True(t, s.IsOpen())

	id := uuid.New()
	s.EmployeeID = &id
	assert.False(t, s.IsOpen())
}
