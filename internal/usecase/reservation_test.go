//go:build unit

package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/discount"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testRoom(t *testing.T, priceCents int64) *room.Room {
	t.Helper()
	number := int32(101)
	r, err := room.NewRoom(uuid.New(), nil, &number, "", "", "", priceCents, 2, 2, nil)
	require.NoError(t, err)
	return r
}

func stayDates(nights int) (time.Time, time.Time) {
	checkIn := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	return checkIn, checkIn.AddDate(0, 0, nights)
}

func TestReservationUseCase_Create_NoDiscount(t *testing.T) {
	rm := testRoom(t, 10000)
	checkIn, checkOut := stayDates(3)

	roomRepo := new(roomRepoMock)
	roomRepo.On("FindByID", mock.Anything, rm.ID()).Return(rm, nil)

	resRepo := new(reservationRepoMock)
	resRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewReservationUseCase(resRepo, roomRepo, new(discountRepoMock))
	out, err := uc.Create(context.Background(), reqdto.CreateReservationRequest{
		RoomID:   rm.ID(),
		Guests:   2,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, int64(30000), out.PriceCents)
	assert.Equal(t, "300.00", out.Price)
	assert.False(t, out.HasCanceled)
	resRepo.AssertExpectations(t)
}

func TestReservationUseCase_Create_WithRateDiscount(t *testing.T) {
	rm := testRoom(t, 10000)
	checkIn, checkOut := stayDates(3)

	code, _ := discount.NewCode("SUMMER10")
	terms, _ := discount.NewTerms(10, 0)
	disc := discount.NewDiscount(code, terms, nil)
	discID := disc.ID()

	roomRepo := new(roomRepoMock)
	roomRepo.On("FindByID", mock.Anything, rm.ID()).Return(rm, nil)

	discountRepo := new(discountRepoMock)
	discountRepo.On("FindByID", mock.Anything, discID).Return(disc, nil)

	resRepo := new(reservationRepoMock)
	resRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewReservationUseCase(resRepo, roomRepo, discountRepo)
	out, err := uc.Create(context.Background(), reqdto.CreateReservationRequest{
		RoomID:     rm.ID(),
		DiscountID: &discID,
		Guests:     2,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, "270.00", out.Price)
	require.NotNil(t, out.DiscountID)
	assert.Equal(t, discID, *out.DiscountID)
}

func TestReservationUseCase_Create_InvalidDates(t *testing.T) {
	checkIn, _ := stayDates(3)

	uc := NewReservationUseCase(new(reservationRepoMock), new(roomRepoMock), new(discountRepoMock))
	_, err := uc.Create(context.Background(), reqdto.CreateReservationRequest{
		RoomID:   uuid.New(),
		Guests:   2,
		CheckIn:  checkIn,
		CheckOut: checkIn,
	}, uuid.New())

	assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
}

func TestReservationUseCase_Create_UnknownRoom(t *testing.T) {
	checkIn, checkOut := stayDates(2)
	roomID := uuid.New()

	roomRepo := new(roomRepoMock)
	roomRepo.On("FindByID", mock.Anything, roomID).
		Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

	uc := NewReservationUseCase(new(reservationRepoMock), roomRepo, new(discountRepoMock))
	_, err := uc.Create(context.Background(), reqdto.CreateReservationRequest{
		RoomID:   roomID,
		Guests:   1,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, uuid.New())

	assert.ErrorIs(t, err, ErrUnknownRoom)
}

func TestReservationUseCase_Update_KeepsPrice(t *testing.T) {
	checkIn, checkOut := stayDates(3)
	stay, err := reservation.NewStayPeriod(checkIn, checkOut)
	require.NoError(t, err)

	res, err := reservation.NewReservation(uuid.New(), nil, nil, 2, stay, reservation.NewMoney(10000), nil)
	require.NoError(t, err)

	resRepo := new(reservationRepoMock)
	resRepo.On("FindByID", mock.Anything, res.ID()).Return(res, nil)

	var persisted *reservation.Reservation
	resRepo.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { persisted = args.Get(1).(*reservation.Reservation) }).
		Return(nil)

	// Doubling the stay must not touch the locked price.
	newCheckOut := checkIn.AddDate(0, 0, 6)
	uc := NewReservationUseCase(resRepo, new(roomRepoMock), new(discountRepoMock))
	out, err := uc.Update(context.Background(), res.ID(), reqdto.UpdateReservationRequest{
		CheckOut: &newCheckOut,
	}, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, int64(30000), out.PriceCents)
	assert.Equal(t, newCheckOut, out.CheckOut)
	require.NotNil(t, persisted)
	assert.Equal(t, int64(30000), persisted.Price().Cents())
}

func TestReservationUseCase_Cancel(t *testing.T) {
	checkIn, checkOut := stayDates(2)
	stay, err := reservation.NewStayPeriod(checkIn, checkOut)
	require.NoError(t, err)

	res, err := reservation.NewReservation(uuid.New(), nil, nil, 1, stay, reservation.NewMoney(5000), nil)
	require.NoError(t, err)

	resRepo := new(reservationRepoMock)
	resRepo.On("FindByID", mock.Anything, res.ID()).Return(res, nil)
	resRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	uc := NewReservationUseCase(resRepo, new(roomRepoMock), new(discountRepoMock))
	out, err := uc.Cancel(context.Background(), res.ID(), uuid.New())

	require.NoError(t, err)
	assert.True(t, out.HasCanceled)
}
