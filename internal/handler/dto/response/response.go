// Package response holds the payload shapes written inside the success
// envelope. Conversion from readmodels is structural, via copier.
package response

import (
	"time"

	"hotel-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AccountResponse struct {
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

type HotelResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Description string     `json:"description"`
	Stars       int16      `json:"stars"`
	UpdatedBy   *uuid.UUID `json:"updated_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type RoomResponse struct {
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

type DiscountResponse struct {
	ID          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	RatePercent float64    `json:"rate_percent"`
	FlatCents   int64      `json:"flat_cents"`
	UpdatedBy   *uuid.UUID `json:"updated_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ReservationResponse struct {
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

type HotelMediaResponse struct {
	ID      uuid.UUID `json:"id"`
	HotelID uuid.UUID `json:"hotel_id"`
	Path    string    `json:"path"`
}

type RoomMediaResponse struct {
	ID      uuid.UUID   `json:"id"`
	Path    string      `json:"path"`
	RoomIDs []uuid.UUID `json:"room_ids"`
}

type RoomExtraResponse struct {
	ID          uuid.UUID   `json:"id"`
	HasInternet bool        `json:"has_internet"`
	HasTV       bool        `json:"has_tv"`
	RoomIDs     []uuid.UUID `json:"room_ids"`
}

func NewAccountResponse(rm *readmodel.AccountRM) AccountResponse {
	var out AccountResponse
	_ = copier.Copy(&out, rm)
	return out
}

func NewAccountResponses(rms []*readmodel.AccountRM) []AccountResponse {
	out := make([]AccountResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, NewAccountResponse(rm))
	}
	return out
}

func NewHotelResponse(rm *readmodel.HotelRM) HotelResponse {
	var out HotelResponse
	_ = copier.Copy(&out, rm)
	return out
}

func NewHotelResponses(rms []*readmodel.HotelRM) []HotelResponse {
	out := make([]HotelResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, NewHotelResponse(rm))
	}
	return out
}

func NewRoomResponse(rm *readmodel.RoomRM) RoomResponse {
	var out RoomResponse
	_ = copier.Copy(&out, rm)
	return out
}

func NewRoomResponses(rms []*readmodel.RoomRM) []RoomResponse {
	out := make([]RoomResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, NewRoomResponse(rm))
	}
	return out
}

func NewDiscountResponse(rm *readmodel.DiscountRM) DiscountResponse {
	var out DiscountResponse
	_ = copier.Copy(&out, rm)
	return out
}

func NewDiscountResponses(rms []*readmodel.DiscountRM) []DiscountResponse {
	out := make([]DiscountResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, NewDiscountResponse(rm))
	}
	return out
}

func NewReservationResponse(rm *readmodel.ReservationRM) ReservationResponse {
	var out ReservationResponse
	_ = copier.Copy(&out, rm)
	return out
}

func NewReservationResponses(rms []*readmodel.ReservationRM) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, NewReservationResponse(rm))
	}
	return out
}

func NewHotelMediaResponse(rm *readmodel.HotelMediaRM) HotelMediaResponse {
	var out HotelMediaResponse
	_ = copier.Copy(&out, rm)
	return out
}

func NewHotelMediaResponses(rms []*readmodel.HotelMediaRM) []HotelMediaResponse {
	out := make([]HotelMediaResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, NewHotelMediaResponse(rm))
	}
	return out
}

func NewRoomMediaResponse(rm *readmodel.RoomMediaRM) RoomMediaResponse {
	var out RoomMediaResponse
	_ = copier.Copy(&out, rm)
	return out
}

func NewRoomMediaResponses(rms []*readmodel.RoomMediaRM) []RoomMediaResponse {
	out := make([]RoomMediaResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, NewRoomMediaResponse(rm))
	}
	return out
}

func NewRoomExtraResponse(rm *readmodel.RoomExtraRM) RoomExtraResponse {
	var out RoomExtraResponse
	_ = copier.Copy(&out, rm)
	return out
}

func NewRoomExtraResponses(rms []*readmodel.RoomExtraRM) []RoomExtraResponse {
	out := make([]RoomExtraResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, NewRoomExtraResponse(rm))
	}
	return out
}
