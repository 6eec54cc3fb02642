package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	discountUseCase usecase.DiscountUseCase
}

func NewDiscountHandler(discountUseCase usecase.DiscountUseCase) *DiscountHandler {
	return &DiscountHandler{discountUseCase: discountUseCase}
}

func (h *DiscountHandler) Create(c *gin.Context) {
	var req reqdto.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actorID, _ := middleware.GetAccountID(c)
	rm, err := h.discountUseCase.Create(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "discount created", gin.H{"discount": resdto.NewDiscountResponse(rm)})
}

func (h *DiscountHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	rm, err := h.discountUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"discount": resdto.NewDiscountResponse(rm)})
}

func (h *DiscountHandler) List(c *gin.Context) {
	rms, err := h.discountUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"discounts": resdto.NewDiscountResponses(rms)})
}

func (h *DiscountHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actorID, _ := middleware.GetAccountID(c)
	rm, err := h.discountUseCase.Update(c.Request.Context(), id, req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "discount updated", gin.H{"discount": resdto.NewDiscountResponse(rm)})
}

func (h *DiscountHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.discountUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "discount deleted", nil)
}
