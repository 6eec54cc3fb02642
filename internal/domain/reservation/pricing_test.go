//go:build unit

package reservation

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/discount"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStay(t *testing.T, checkIn, checkOut time.Time) StayPeriod {
	t.Helper()
	stay, err := NewStayPeriod(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

func mustFlat(t *testing.T, cents int64) *discount.Terms {
	t.Helper()
	terms, err := discount.NewTerms(0, cents)
	require.NoError(t, err)
	return &terms
}

func mustRate(t *testing.T, percent float64) *discount.Terms {
	t.Helper()
	terms, err := discount.NewTerms(percent, 0)
	require.NoError(t, err)
	return &terms
}

func TestComputePrice(t *testing.T) {
	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC) // 3 nights

	tests := []struct {
		name        string
		nightlyRate int64
		checkOut    time.Time
		terms       *discount.Terms
		wantCents   int64
	}{
		{
			name:        "no discount",
			nightlyRate: 10000,
			checkOut:    checkOut,
			terms:       nil,
			wantCents:   30000,
		},
		{
			name:        "flat discount",
			nightlyRate: 10000,
			checkOut:    checkOut,
			terms:       mustFlat(t, 5000),
			wantCents:   25000,
		},
		{
			name:        "flat discount exceeding base clamps to zero",
			nightlyRate: 10000,
			checkOut:    checkOut,
			terms:       mustFlat(t, 40000),
			wantCents:   0,
		},
		{
			name:        "rate discount",
			nightlyRate: 10000,
			checkOut:    checkOut,
			terms:       mustRate(t, 10),
			wantCents:   27000,
		},
		{
			name:        "rate discount rounds to the cent",
			nightlyRate: 9999,
			checkOut:    checkOut,
			terms:       mustRate(t, 33.33),
			wantCents:   19999, // 29997 * 0.6667 = 19998.9999
		},
		{
			name:        "exact half cent rounds away from zero",
			nightlyRate: 50,
			checkOut:    checkIn.Add(24 * time.Hour),
			terms:       mustRate(t, 75),
			wantCents:   13, // 50 * 0.25 = 12.5
		},
		{
			name:        "full rate discount",
			nightlyRate: 10000,
			checkOut:    checkOut,
			terms:       mustRate(t, 100),
			wantCents:   0,
		},
		{
			name:        "partial day does not count as a night",
			nightlyRate: 10000,
			checkOut:    checkIn.Add(26 * time.Hour),
			terms:       nil,
			wantCents:   10000,
		},
		{
			name:        "zero rate room",
			nightlyRate: 0,
			checkOut:    checkOut,
			terms:       nil,
			wantCents:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay := mustStay(t, checkIn, tt.checkOut)

			price, err := ComputePrice(NewMoney(tt.nightlyRate), stay, tt.terms)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCents, price.Cents())
		})
	}
}

func TestComputePriceScenario(t *testing.T) {
	// Nightly rate 100.00, 2024-01-01 to 2024-01-04, per the booking examples.
	stay := mustStay(t,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	)
	rate := NewMoney(10000)

	price, err := ComputePrice(rate, stay, nil)
	require.NoError(t, err)
	assert.Equal(t, "300.00", price.String())

	price, err = ComputePrice(rate, stay, mustFlat(t, 5000))
	require.NoError(t, err)
	assert.Equal(t, "250.00", price.String())

	price, err = ComputePrice(rate, stay, mustFlat(t, 40000))
	require.NoError(t, err)
	assert.Equal(t, "0.00", price.String())

	price, err = ComputePrice(rate, stay, mustRate(t, 10))
	require.NoError(t, err)
	assert.Equal(t, "270.00", price.String())
}

func TestComputePriceEmptyTerms(t *testing.T) {
	stay := mustStay(t,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	)

	_, err := ComputePrice(NewMoney(10000), stay, &discount.Terms{})

	assert.ErrorIs(t, err, discount.ErrUnapplicable)
}
