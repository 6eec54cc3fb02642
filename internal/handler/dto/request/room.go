package request

import "github.com/google/uuid"

type CreateRoomRequest struct {
	HotelID     uuid.UUID `json:"hotel_id" binding:"required"`
	Name        *string   `json:"name"`
	Number      *int32    `json:"number"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	RoomType    string    `json:"room_type"`
	PriceCents  int64     `json:"price_cents" binding:"min=0"`
	Capacity    int16     `json:"capacity" binding:"required,min=1,max=10"`
	Beds        int16     `json:"beds" binding:"required,min=1,max=12"`
}

type UpdateRoomRequest struct {
	HotelID     *uuid.UUID `json:"hotel_id"`
	Name        *string    `json:"name"`
	Number      *int32     `json:"number"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	RoomType    *string    `json:"room_type"`
	PriceCents  *int64     `json:"price_cents" binding:"omitempty,min=0"`
	Capacity    *int16     `json:"capacity" binding:"omitempty,min=1,max=10"`
	Beds        *int16     `json:"beds" binding:"omitempty,min=1,max=12"`
}
