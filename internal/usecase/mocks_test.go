//go:build unit

package usecase

import (
	"context"
	"io"
	"time"

	"hotel-booking/internal/domain/account"
	"hotel-booking/internal/domain/discount"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newActorID() uuid.UUID {
	return uuid.New()
}

type accountRepoMock struct {
	mock.Mock
}

func (m *accountRepoMock) Create(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *accountRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *accountRepoMock) FindByEmail(ctx context.Context, email account.Email) (*account.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *accountRepoMock) FindAll(ctx context.Context) ([]*account.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Account), args.Error(1)
}

func (m *accountRepoMock) Update(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *accountRepoMock) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *accountRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type hotelRepoMock struct {
	mock.Mock
}

func (m *hotelRepoMock) Create(ctx context.Context, h *hotel.Hotel) error {
	return m.Called(ctx, h).Error(0)
}

func (m *hotelRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hotel.Hotel), args.Error(1)
}

func (m *hotelRepoMock) FindAll(ctx context.Context) ([]*hotel.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hotel.Hotel), args.Error(1)
}

func (m *hotelRepoMock) Update(ctx context.Context, h *hotel.Hotel) error {
	return m.Called(ctx, h).Error(0)
}

func (m *hotelRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type roomRepoMock struct {
	mock.Mock
}

func (m *roomRepoMock) Create(ctx context.Context, r *room.Room) error {
	return m.Called(ctx, r).Error(0)
}

func (m *roomRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*room.Room), args.Error(1)
}

func (m *roomRepoMock) FindAll(ctx context.Context) ([]*room.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*room.Room), args.Error(1)
}

func (m *roomRepoMock) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*room.Room, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*room.Room), args.Error(1)
}

func (m *roomRepoMock) Update(ctx context.Context, r *room.Room) error {
	return m.Called(ctx, r).Error(0)
}

func (m *roomRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type discountRepoMock struct {
	mock.Mock
}

func (m *discountRepoMock) Create(ctx context.Context, d *discount.Discount) error {
	return m.Called(ctx, d).Error(0)
}

func (m *discountRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discount.Discount), args.Error(1)
}

func (m *discountRepoMock) FindByCode(ctx context.Context, code discount.Code) (*discount.Discount, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discount.Discount), args.Error(1)
}

func (m *discountRepoMock) FindAll(ctx context.Context) ([]*discount.Discount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*discount.Discount), args.Error(1)
}

func (m *discountRepoMock) Update(ctx context.Context, d *discount.Discount) error {
	return m.Called(ctx, d).Error(0)
}

func (m *discountRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type reservationRepoMock struct {
	mock.Mock
}

func (m *reservationRepoMock) Create(ctx context.Context, r *reservation.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *reservationRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.Reservation), args.Error(1)
}

func (m *reservationRepoMock) FindAll(ctx context.Context) ([]*reservation.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservation.Reservation), args.Error(1)
}

func (m *reservationRepoMock) FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*reservation.Reservation, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservation.Reservation), args.Error(1)
}

func (m *reservationRepoMock) Update(ctx context.Context, r *reservation.Reservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *reservationRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type roomExtraRepoMock struct {
	mock.Mock
}

func (m *roomExtraRepoMock) Create(ctx context.Context, e *room.Extra) error {
	return m.Called(ctx, e).Error(0)
}

func (m *roomExtraRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*room.Extra, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*room.Extra), args.Error(1)
}

func (m *roomExtraRepoMock) FindByFlags(ctx context.Context, hasInternet, hasTV bool) (*room.Extra, error) {
	args := m.Called(ctx, hasInternet, hasTV)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*room.Extra), args.Error(1)
}

func (m *roomExtraRepoMock) FindAll(ctx context.Context) ([]*room.Extra, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*room.Extra), args.Error(1)
}

func (m *roomExtraRepoMock) ReplaceRooms(ctx context.Context, e *room.Extra) error {
	return m.Called(ctx, e).Error(0)
}

func (m *roomExtraRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type fileStoreMock struct {
	mock.Mock
}

func (m *fileStoreMock) Save(subdir, filename string, r io.Reader) (string, error) {
	args := m.Called(subdir, filename, r)
	return args.String(0), args.Error(1)
}

func (m *fileStoreMock) Remove(path string) error {
	return m.Called(path).Error(0)
}

type hotelMediaRepoMock struct {
	mock.Mock
}

func (m *hotelMediaRepoMock) Create(ctx context.Context, md *hotel.Media) error {
	return m.Called(ctx, md).Error(0)
}

func (m *hotelMediaRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*hotel.Media, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hotel.Media), args.Error(1)
}

func (m *hotelMediaRepoMock) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*hotel.Media, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hotel.Media), args.Error(1)
}

func (m *hotelMediaRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type roomMediaRepoMock struct {
	mock.Mock
}

func (m *roomMediaRepoMock) Create(ctx context.Context, md *room.Media) error {
	return m.Called(ctx, md).Error(0)
}

func (m *roomMediaRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*room.Media, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*room.Media), args.Error(1)
}

func (m *roomMediaRepoMock) FindAll(ctx context.Context) ([]*room.Media, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*room.Media), args.Error(1)
}

func (m *roomMediaRepoMock) ReplaceRooms(ctx context.Context, md *room.Media) error {
	return m.Called(ctx, md).Error(0)
}

func (m *roomMediaRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
