package request

type CreateHotelRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Description string `json:"description"`
	Stars       int16  `json:"stars" binding:"min=0,max=5"`
}

type UpdateHotelRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	Stars       *int16  `json:"stars" binding:"omitempty,min=0,max=5"`
}
