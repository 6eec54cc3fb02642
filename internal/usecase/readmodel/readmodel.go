// Package readmodel holds the flat structs usecases hand to the HTTP layer.
// They are built from domain entities and carry no behavior.
package readmodel

import (
	"time"

	"hotel-booking/internal/domain/account"
	"hotel-booking/internal/domain/discount"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"

	"github.com/google/uuid"
)

type AccountRM struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	LastName    string     `json:"last_name"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewAccountRM(a *account.Account) *AccountRM {
	return &AccountRM{
		ID:          a.ID(),
		Email:       a.Email().Value(),
		Name:        a.Name(),
		LastName:    a.LastName(),
		IsStaff:     a.IsStaff(),
		IsSuperuser: a.IsSuperuser(),
		IsActive:    a.IsActive(),
		LastLogin:   a.LastLogin(),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}

type HotelRM struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Description string     `json:"description"`
	Stars       int16      `json:"stars"`
	UpdatedBy   *uuid.UUID `json:"updated_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewHotelRM(h *hotel.Hotel) *HotelRM {
	return &HotelRM{
		ID:          h.ID(),
		Name:        h.Name(),
		Address:     h.Address(),
		Description: h.Description(),
		Stars:       h.Stars(),
		UpdatedBy:   h.UpdatedBy(),
		CreatedAt:   h.CreatedAt(),
		UpdatedAt:   h.UpdatedAt(),
	}
}

type RoomRM struct {
	ID          uuid.UUID  `json:"id"`
	HotelID     uuid.UUID  `json:"hotel_id"`
	Name        *string    `json:"name"`
	Number      *int32     `json:"number"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	RoomType    string     `json:"room_type"`
	PriceCents  int64      `json:"price_cents"`
	Price       string     `json:"price"`
	Capacity    int16      `json:"capacity"`
	Beds        int16      `json:"beds"`
	UpdatedBy   *uuid.UUID `json:"updated_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewRoomRM(r *room.Room) *RoomRM {
	return &RoomRM{
		ID:          r.ID(),
		HotelID:     r.HotelID(),
		Name:        r.Name(),
		Number:      r.Number(),
		Description: r.Description(),
		Status:      string(r.Status()),
		RoomType:    string(r.RoomType()),
		PriceCents:  r.PriceCents(),
		Price:       r.NightlyRate().String(),
		Capacity:    r.Capacity(),
		Beds:        r.Beds(),
		UpdatedBy:   r.UpdatedBy(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

type DiscountRM struct {
	ID          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	RatePercent float64    `json:"rate_percent"`
	FlatCents   int64      `json:"flat_cents"`
	UpdatedBy   *uuid.UUID `json:"updated_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewDiscountRM(d *discount.Discount) *DiscountRM {
	return &DiscountRM{
		ID:          d.ID(),
		Code:        d.Code().Value(),
		RatePercent: d.Terms().RatePercent(),
		FlatCents:   d.Terms().FlatCents(),
		UpdatedBy:   d.UpdatedBy(),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}
}

type ReservationRM struct {
	ID          uuid.UUID  `json:"id"`
	RoomID      uuid.UUID  `json:"room_id"`
	AccountID   *uuid.UUID `json:"account_id"`
	DiscountID  *uuid.UUID `json:"discount_id"`
	Guests      int32      `json:"guests"`
	CheckIn     time.Time  `json:"check_in"`
	CheckOut    time.Time  `json:"check_out"`
	PriceCents  int64      `json:"price_cents"`
	Price       string     `json:"price"`
	HasCanceled bool       `json:"has_canceled"`
	UpdatedBy   *uuid.UUID `json:"updated_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewReservationRM(r *reservation.Reservation) *ReservationRM {
	return &ReservationRM{
		ID:          r.ID(),
		RoomID:      r.RoomID(),
		AccountID:   r.AccountID(),
		DiscountID:  r.DiscountID(),
		Guests:      r.Guests(),
		CheckIn:     r.Stay().CheckIn(),
		CheckOut:    r.Stay().CheckOut(),
		PriceCents:  r.Price().Cents(),
		Price:       r.Price().String(),
		HasCanceled: r.HasCanceled(),
		UpdatedBy:   r.UpdatedBy(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

type HotelMediaRM struct {
	ID      uuid.UUID `json:"id"`
	HotelID uuid.UUID `json:"hotel_id"`
	Path    string    `json:"path"`
}

func NewHotelMediaRM(m *hotel.Media) *HotelMediaRM {
	return &HotelMediaRM{ID: m.ID(), HotelID: m.HotelID(), Path: m.Path()}
}

type RoomMediaRM struct {
	ID      uuid.UUID   `json:"id"`
	Path    string      `json:"path"`
	RoomIDs []uuid.UUID `json:"room_ids"`
}

func NewRoomMediaRM(m *room.Media) *RoomMediaRM {
	return &RoomMediaRM{ID: m.ID(), Path: m.Path(), RoomIDs: m.RoomIDs()}
}

type RoomExtraRM struct {
	ID          uuid.UUID   `json:"id"`
	HasInternet bool        `json:"has_internet"`
	HasTV       bool        `json:"has_tv"`
	RoomIDs     []uuid.UUID `json:"room_ids"`
}

func NewRoomExtraRM(e *room.Extra) *RoomExtraRM {
	return &RoomExtraRM{ID: e.ID(), HasInternet: e.HasInternet(), HasTV: e.HasTV(), RoomIDs: e.RoomIDs()}
}
