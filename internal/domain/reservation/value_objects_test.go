//go:build unit

package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStayPeriod(t *testing.T) {
	base := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		wantErr  error
	}{
		{
			name:     "valid range",
			checkIn:  base,
			checkOut: base.AddDate(0, 0, 2),
		},
		{
			name:     "check-out equal to check-in",
			checkIn:  base,
			checkOut: base,
			wantErr:  ErrInvalidDateRange,
		},
		{
			name:     "check-out before check-in",
			checkIn:  base,
			checkOut: base.AddDate(0, 0, -1),
			wantErr:  ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStayPeriod(tt.checkIn, tt.checkOut)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStayPeriodNights(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkOut time.Time
		want     int64
	}{
		{name: "three full days", checkOut: base.AddDate(0, 0, 3), want: 3},
		{name: "one day and change truncates", checkOut: base.Add(30 * time.Hour), want: 1},
		{name: "under a day is zero nights", checkOut: base.Add(6 * time.Hour), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay, err := NewStayPeriod(base, tt.checkOut)
			require.NoError(t, err)

			assert.Equal(t, tt.want, stay.Nights())
		})
	}
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "270.00", NewMoney(27000).String())
	assert.Equal(t, "0.00", NewMoney(0).String())
	assert.Equal(t, "0.05", NewMoney(5).String())
	assert.Equal(t, "1234.56", NewMoney(123456).String())
	assert.Equal(t, "-12.34", NewMoney(-1234).String())
}

func TestNewMoneyFromCents(t *testing.T) {
	_, err := NewMoneyFromCents(-1)
	assert.ErrorIs(t, err, ErrNegativeMoney)

	m, err := NewMoneyFromCents(100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), m.Cents())
}
