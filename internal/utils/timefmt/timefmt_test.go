package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{
			name:  "microseconds",
			input: "2024-03-10T14:30:00.123456",
			want:  time.Date(2024, 3, 10, 14, 30, 0, 123456000, time.UTC),
			ok:    true,
		},
		{
			name:  "milliseconds",
			input: "2024-03-10T14:30:00.123",
			want:  time.Date(2024, 3, 10, 14, 30, 0, 123000000, time.UTC),
			ok:    true,
		},
		{
			name:  "no fraction",
			input: "2024-03-10T14:30:00",
			want:  time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "milliseconds zulu",
			input: "2024-03-10T14:30:00.500Z",
			want:  time.Date(2024, 3, 10, 14, 30, 0, 500000000, time.UTC),
			ok:    true,
		},
		{
			name:  "plain date",
			input: "2024-03-10",
			want:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "garbage",
			input: "next week maybe",
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"08:00:00", "08:00"},
		{"08:00:00.000", "08:00"},
		{"08:00:00.000000", "08:00"},
		{"1970-01-01T09:15:00Z", "09:15"},
		{"1970-01-01T09:15:00.000Z", "09:15"},
		{"1970-01-01T09:15:00.000000Z", "09:15"},
		{"13:45", "13:45"},
		{"25:00:00", "25:00:00"},
		{"morning", "morning"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeClock(tt.input))
		})
	}
}

func TestNormalizeClock_Idempotent(t *testing.T) {
	once := NormalizeClock("10:30:00.000")
	assert.Equal(t, once, NormalizeClock(once))
}

func TestParseInput(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	got, ok := ParseInput("2024-04-01T08:00:00", now)
	require.True(t, ok)
	assert.Equal(t, "2024-04-01T08:00:00", FormatDate(got))

	got, ok = ParseInput("tomorrow", now)
	require.True(t, ok)
	assert.Equal(t, 11, got.Day())

	_, ok = ParseInput("", now)
	assert.False(t, ok)
}
