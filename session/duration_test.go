package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestElapsedMinutes_Symmetric(t *testing.T) {
	a := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 1, 10, 35, 59, 0, time.UTC)

	assert.Equal(t, 95, ElapsedMinutes(a, b))
	assert.Equal(t, ElapsedMinutes(a, b), ElapsedMinutes(b, a))
	assert.Equal(t, 0, ElapsedMinutes(a, a))
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{95, "01:35"},
		{-95, "-01:35"},
		{-1, "-00:01"},
		{600, "10:00"},
		{6001, "100:01"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
		})
	}
}

func TestToneOf(t *testing.T) {
	assert.Equal(t, ToneNonNegative, ToneOf(0))
	assert.Equal(t, ToneNonNegative, ToneOf(30))
	assert.Equal(t, ToneNegative, ToneOf(-30))
}

func TestBreakMinutes_IgnoresMissingBounds(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	bs := []Break{
		{StartsAt: &start, EndsAt: &end},
		{StartsAt: &start},
		{EndsAt: &end},
		{StartsAt: &end, EndsAt: &start},
	}

	assert.Equal(t, 60, BreakMinutes(bs))
	assert.Equal(t, 0, BreakMinutes(nil))
}
