package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2024-01-04",
			want:  time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap day",
			input: "2024-02-29",
			want:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "leap day in non-leap year",
			input:   "2023-02-29",
			wantErr: true,
		},
		{
			name:    "missing parts",
			input:   "2024-01",
			wantErr: true,
		},
		{
			name:    "month out of range",
			input:   "2024-13-01",
			wantErr: true,
		},
		{
			name:    "day out of range",
			input:   "2024-04-31",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			input:   "2024-ab-01",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", FormatDate(parsed))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 28, DaysInMonth(2023, 2))
	assert.Equal(t, 28, DaysInMonth(1900, 2))
	assert.Equal(t, 29, DaysInMonth(2000, 2))
	assert.Equal(t, 30, DaysInMonth(2024, 11))
	assert.Equal(t, 31, DaysInMonth(2024, 12))
}
