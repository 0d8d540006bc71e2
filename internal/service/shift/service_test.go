package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		start   string
		end     string
		wantErr bool
	}{
		{"valid", "2026-10-12", "09:00", "17:30", false},
		{"adjacent minutes", "2026-10-12", "09:00", "09:01", false},
		{"end equals start", "2026-10-12", "09:00", "09:00", true},
		{"end before start", "2026-10-12", "17:00", "09:00", true},
		{"overnight span rejected", "2026-10-12", "22:00", "02:00", true},
		{"bad date", "12/10/2026", "09:00", "17:00", true},
		{"not a calendar date", "2026-02-30", "09:00", "17:00", true},
		{"bad start", "2026-10-12", "9am", "17:00", true},
		{"bad end", "2026-10-12", "09:00", "25:00", true},
		{"empty times", "2026-10-12", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ValidateSchedule(tt.date, tt.start, tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSchedule)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), d)
		})
	}
}
