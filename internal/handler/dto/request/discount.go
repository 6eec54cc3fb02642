package request

type CreateDiscountRequest struct {
	Code        string  `json:"code" binding:"required"`
	RatePercent float64 `json:"rate_percent" binding:"min=0,max=100"`
	FlatCents   int64   `json:"flat_cents" binding:"min=0"`
}

type UpdateDiscountRequest struct {
	Code        *string  `json:"code"`
	RatePercent *float64 `json:"rate_percent" binding:"omitempty,min=0,max=100"`
	FlatCents   *int64   `json:"flat_cents" binding:"omitempty,min=0"`
}
