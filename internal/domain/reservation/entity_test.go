//go:build unit

package reservation

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/discount"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiscount(t *testing.T, ratePercent float64, flatCents int64) *discount.Discount {
	t.Helper()
	code, err := discount.NewCode("SUMMER10")
	require.NoError(t, err)
	terms, err := discount.NewTerms(ratePercent, flatCents)
	require.NoError(t, err)
	return discount.NewDiscount(code, terms, nil)
}

func TestNewReservation(t *testing.T) {
	roomID := uuid.New()
	accountID := uuid.New()
	stay := mustStay(t,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	)

	t.Run("computes price at creation", func(t *testing.T) {
		res, err := NewReservation(roomID, &accountID, nil, 2, stay, NewMoney(10000), nil)

		require.NoError(t, err)
		assert.Equal(t, int64(30000), res.Price().Cents())
		assert.False(t, res.HasCanceled())
		assert.Nil(t, res.DiscountID())
	})

	t.Run("applies discount and records its id", func(t *testing.T) {
		disc := newTestDiscount(t, 10, 0)

		res, err := NewReservation(roomID, &accountID, disc, 2, stay, NewMoney(10000), nil)

		require.NoError(t, err)
		assert.Equal(t, int64(27000), res.Price().Cents())
		require.NotNil(t, res.DiscountID())
		assert.Equal(t, disc.ID(), *res.DiscountID())
	})

	t.Run("rejects zero guests", func(t *testing.T) {
		_, err := NewReservation(roomID, &accountID, nil, 0, stay, NewMoney(10000), nil)

		assert.ErrorIs(t, err, ErrInvalidGuestCount)
	})
}

func TestReservationUpdateDoesNotRecomputePrice(t *testing.T) {
	roomID := uuid.New()
	stay := mustStay(t,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	)

	res, err := NewReservation(roomID, nil, nil, 2, stay, NewMoney(10000), nil)
	require.NoError(t, err)
	require.Equal(t, int64(30000), res.Price().Cents())

	longerStay := mustStay(t,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	)

	updated, err := res.ApplyUpdate(Update{Stay: &longerStay})
	require.NoError(t, err)

	// Price is locked at booking time.
	assert.Equal(t, int64(30000), updated.Price().Cents())
	assert.Equal(t, longerStay, updated.Stay())
}

func TestReservationCancel(t *testing.T) {
	roomID := uuid.New()
	stay := mustStay(t,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	)

	res, err := NewReservation(roomID, nil, nil, 1, stay, NewMoney(10000), nil)
	require.NoError(t, err)

	canceled := res.Cancel()

	assert.True(t, canceled.HasCanceled())
	assert.False(t, res.HasCanceled(), "original value is not mutated")

	// Cancel is a flag, not a lifecycle: update may set it back.
	uncancel := false
	reverted, err := canceled.ApplyUpdate(Update{HasCanceled: &uncancel})
	require.NoError(t, err)
	assert.False(t, reverted.HasCanceled())
}
