package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID     uuid.UUID  `json:"room_id" binding:"required"`
	DiscountID *uuid.UUID `json:"discount_id"`
	Guests     int32      `json:"guests" binding:"required,min=1"`
	CheckIn    time.Time  `json:"check_in" binding:"required"`
	CheckOut   time.Time  `json:"check_out" binding:"required"`
}

type UpdateReservationRequest struct {
	RoomID     *uuid.UUID `json:"room_id"`
	DiscountID *uuid.UUID `json:"discount_id"`
	Guests     *int32     `json:"guests" binding:"omitempty,min=1"`
	CheckIn    *time.Time `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
}
