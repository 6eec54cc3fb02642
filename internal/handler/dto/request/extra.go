package request

import "github.com/google/uuid"

// CreateOrUpdateExtraRequest targets the amenity pair, not a row id: the
// backend finds or creates the row for the pair and unions the room set in.
type CreateOrUpdateExtraRequest struct {
	HasInternet bool        `json:"has_internet"`
	HasTV       bool        `json:"has_tv"`
	RoomIDs     []uuid.UUID `json:"room_ids" binding:"required,min=1"`
}
