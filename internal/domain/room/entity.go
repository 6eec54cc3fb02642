package room

import (
	"errors"
	"time"

	"hotel-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

var (
	ErrMissingIdentifier = errors.New("a room requires a name or a number")
	ErrInvalidStatus     = errors.New("invalid room status")
	ErrInvalidRoomType   = errors.New("invalid room type")
	ErrNegativePrice     = errors.New("nightly price cannot be negative")
	ErrInvalidCapacity   = errors.New("capacity must be between 1 and 10")
	ErrInvalidBedCount   = errors.New("bed count must be between 1 and 12")
)

const (
	MinCapacity = 1
	MaxCapacity = 10
	MinBeds     = 1
	MaxBeds     = 12
)

// Room belongs to exactly one hotel. The "name or number" rule is an
// application-level invariant, checked here before anything reaches storage.
type Room struct {
	id          uuid.UUID
	hotelID     uuid.UUID
	name        *string
	number      *int32
	description string
	status      Status
	roomType    RoomType
	priceCents  int64
	capacity    int16
	beds        int16
	updatedBy   *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoom(
	hotelID uuid.UUID,
	name *string,
	number *int32,
	description string,
	status Status,
	roomType RoomType,
	priceCents int64,
	capacity, beds int16,
	updatedBy *uuid.UUID,
) (*Room, error) {
	if status == "" {
		status = StatusAvailable
	}
	if roomType == "" {
		roomType = TypeUnknown
	}

	r := &Room{
		id:          uuid.New(),
		hotelID:     hotelID,
		name:        name,
		number:      number,
		description: description,
		status:      status,
		roomType:    roomType,
		priceCents:  priceCents,
		capacity:    capacity,
		beds:        beds,
		updatedBy:   updatedBy,
	}

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRoom(
	id, hotelID uuid.UUID,
	name *string,
	number *int32,
	description string,
	status Status,
	roomType RoomType,
	priceCents int64,
	capacity, beds int16,
	updatedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:          id,
		hotelID:     hotelID,
		name:        name,
		number:      number,
		description: description,
		status:      status,
		roomType:    roomType,
		priceCents:  priceCents,
		capacity:    capacity,
		beds:        beds,
		updatedBy:   updatedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

type Update struct {
	HotelID     *uuid.UUID
	Name        *string
	Number      *int32
	Description *string
	Status      *Status
	RoomType    *RoomType
	PriceCents  *int64
	Capacity    *int16
	Beds        *int16
	UpdatedBy   *uuid.UUID
}

func (r *Room) ApplyUpdate(u Update) (*Room, error) {
	next := *r
	if u.HotelID != nil {
		next.hotelID = *u.HotelID
	}
	if u.Name != nil {
		next.name = u.Name
	}
	if u.Number != nil {
		next.number = u.Number
	}
	if u.Description != nil {
		next.description = *u.Description
	}
	if u.Status != nil {
		next.status = *u.Status
	}
	if u.RoomType != nil {
		next.roomType = *u.RoomType
	}
	if u.PriceCents != nil {
		next.priceCents = *u.PriceCents
	}
	if u.Capacity != nil {
		next.capacity = *u.Capacity
	}
	if u.Beds != nil {
		next.beds = *u.Beds
	}
	if u.UpdatedBy != nil {
		next.updatedBy = u.UpdatedBy
	}

	if err := next.validate(); err != nil {
		return nil, err
	}
	return &next, nil
}

func (r *Room) validate() error {
	if (r.name == nil || *r.name == "") && r.number == nil {
		return ErrMissingIdentifier
	}
	if !r.status.IsValid() {
		return ErrInvalidStatus
	}
	if !r.roomType.IsValid() {
		return ErrInvalidRoomType
	}
	if r.priceCents < 0 {
		return ErrNegativePrice
	}
	if r.capacity < MinCapacity || r.capacity > MaxCapacity {
		return ErrInvalidCapacity
	}
	if r.beds < MinBeds || r.beds > MaxBeds {
		return ErrInvalidBedCount
	}
	return nil
}

func (r *Room) NightlyRate() reservation.Money {
	return reservation.NewMoney(r.priceCents)
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) HotelID() uuid.UUID    { return r.hotelID }
func (r *Room) Name() *string         { return r.name }
func (r *Room) Number() *int32        { return r.number }
func (r *Room) Description() string   { return r.description }
func (r *Room) Status() Status        { return r.status }
func (r *Room) RoomType() RoomType    { return r.roomType }
func (r *Room) PriceCents() int64     { return r.priceCents }
func (r *Room) Capacity() int16       { return r.capacity }
func (r *Room) Beds() int16           { return r.beds }
func (r *Room) UpdatedBy() *uuid.UUID { return r.updatedBy }
func (r *Room) CreatedAt() time.Time  { return r.createdAt }
func (r *Room) UpdatedAt() time.Time  { return r.updatedAt }
