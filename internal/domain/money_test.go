package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
		wantErr  error
	}{
		{"one night", date(2025, 6, 1), date(2025, 6, 2), 1, nil},
		{"three nights", date(2025, 6, 1), date(2025, 6, 4), 3, nil},
		{"same day", date(2025, 6, 1), date(2025, 6, 1), 0, ErrInvalidDateRange},
		{"inverted", date(2025, 6, 4), date(2025, 6, 1), 0, ErrInvalidDateRange},
		{"across leap day", date(2024, 2, 28), date(2024, 3, 1), 2, nil},
		{"across year end", date(2024, 12, 30), date(2025, 1, 2), 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Nights(tt.checkIn, tt.checkOut)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNights_IgnoresTimeOfDay(t *testing.T) {
	// A late check-in and an early check-out still count whole nights.
	in := time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)
	out := time.Date(2025, 6, 4, 6, 0, 0, 0, time.UTC)

	n, err := Nights(in, out)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestStayPriceCents(t *testing.T) {
	// 3 nights at 100.00 per night.
	price, err := StayPriceCents(date(2025, 6, 1), date(2025, 6, 4), 10_000)

	require.NoError(t, err)
	assert.Equal(t, int64(30_000), price)
}

func TestStayPriceCents_InvalidRange(t *testing.T) {
	_, err := StayPriceCents(date(2025, 6, 1), date(2025, 6, 1), 10_000)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestTaxCents(t *testing.T) {
	tests := []struct {
		name   string
		total  int64
		rateBP int64
		want   int64
	}{
		{"15 percent of 300.00", 30_000, 1500, 4_500},
		{"zero total", 0, 1500, 0},
		{"zero rate", 30_000, 0, 0},
		{"rounds half up", 33, 1500, 5},      // 4.95 -> 5
		{"rounds down below half", 3, 1500, 0}, // 0.45 -> 0
		{"full rate", 12_345, 10_000, 12_345},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TaxCents(tt.total, tt.rateBP))
		})
	}
}
