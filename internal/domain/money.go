package domain

import "time"

const day = 24 * time.Hour

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights returns the whole-day stay length. Same-day and inverted ranges are
// rejected, never coerced to a single night.
func Nights(checkIn, checkOut time.Time) (int, error) {
	n := int(dateOnly(checkOut).Sub(dateOnly(checkIn)) / day)
	if n < 1 {
		return 0, ErrInvalidDateRange
	}
	return n, nil
}

// StayPriceCents prices a stay: nightly rate times whole nights. All money is
// integer cents, so the product is exact.
func StayPriceCents(checkIn, checkOut time.Time, nightlyRateCents int64) (int64, error) {
	n, err := Nights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return nightlyRateCents * int64(n), nil
}

// TaxCents applies a rate given in basis points (1500 = 15%) rounding half
// up to the cent. Totals are never negative.
func TaxCents(totalCents int64, rateBasisPoints int64) int64 {
	return (totalCents*rateBasisPoints + 5_000) / 10_000
}
