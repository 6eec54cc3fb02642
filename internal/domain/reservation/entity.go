package reservation

import (
	"time"

	"hotel-booking/internal/domain/discount"

	"github.com/google/uuid"
)

// Reservation holds the price computed once at creation time. Updates never
// recompute it, even when the stay or the room changes: the price is locked
// at booking.
type Reservation struct {
	id          uuid.UUID
	roomID      uuid.UUID
	accountID   *uuid.UUID
	discountID  *uuid.UUID
	guests      int32
	stay        StayPeriod
	price       Money
	hasCanceled bool
	updatedBy   *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReservation(
	roomID uuid.UUID,
	accountID *uuid.UUID,
	disc *discount.Discount,
	guests int32,
	stay StayPeriod,
	nightlyRate Money,
	updatedBy *uuid.UUID,
) (*Reservation, error) {
	if guests < 1 {
		return nil, ErrInvalidGuestCount
	}

	var terms *discount.Terms
	var discountID *uuid.UUID
	if disc != nil {
		t := disc.Terms()
		terms = &t
		id := disc.ID()
		discountID = &id
	}

	price, err := ComputePrice(nightlyRate, stay, terms)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		id:         uuid.New(),
		roomID:     roomID,
		accountID:  accountID,
		discountID: discountID,
		guests:     guests,
		stay:       stay,
		price:      price,
		updatedBy:  updatedBy,
	}, nil
}

func ReconstructReservation(
	id, roomID uuid.UUID,
	accountID, discountID *uuid.UUID,
	guests int32,
	stay StayPeriod,
	price Money,
	hasCanceled bool,
	updatedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		roomID:      roomID,
		accountID:   accountID,
		discountID:  discountID,
		guests:      guests,
		stay:        stay,
		price:       price,
		hasCanceled: hasCanceled,
		updatedBy:   updatedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update carries the generic field merge. Price is absent on purpose.
type Update struct {
	RoomID      *uuid.UUID
	AccountID   *uuid.UUID
	DiscountID  *uuid.UUID
	Guests      *int32
	Stay        *StayPeriod
	HasCanceled *bool
	UpdatedBy   *uuid.UUID
}

func (r *Reservation) ApplyUpdate(u Update) (*Reservation, error) {
	next := *r
	if u.RoomID != nil {
		next.roomID = *u.RoomID
	}
	if u.AccountID != nil {
		next.accountID = u.AccountID
	}
	if u.DiscountID != nil {
		next.discountID = u.DiscountID
	}
	if u.Guests != nil {
		if *u.Guests < 1 {
			return nil, ErrInvalidGuestCount
		}
		next.guests = *u.Guests
	}
	if u.Stay != nil {
		next.stay = *u.Stay
	}
	if u.HasCanceled != nil {
		next.hasCanceled = *u.HasCanceled
	}
	if u.UpdatedBy != nil {
		next.updatedBy = u.UpdatedBy
	}
	return &next, nil
}

// Cancel marks the reservation canceled. The system this replaces cleared the
// flag instead; that was judged a defect and the intended contract is kept.
func (r *Reservation) Cancel() *Reservation {
	next := *r
	next.hasCanceled = true
	return &next
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) RoomID() uuid.UUID      { return r.roomID }
func (r *Reservation) AccountID() *uuid.UUID  { return r.accountID }
func (r *Reservation) DiscountID() *uuid.UUID { return r.discountID }
func (r *Reservation) Guests() int32          { return r.guests }
func (r *Reservation) Stay() StayPeriod       { return r.stay }
func (r *Reservation) Price() Money           { return r.price }
func (r *Reservation) HasCanceled() bool      { return r.hasCanceled }
func (r *Reservation) UpdatedBy() *uuid.UUID  { return r.updatedBy }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }
