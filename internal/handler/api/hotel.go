package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hotelUseCase usecase.HotelUseCase
	roomUseCase  usecase.RoomUseCase
}

func NewHotelHandler(hotelUseCase usecase.HotelUseCase, roomUseCase usecase.RoomUseCase) *HotelHandler {
	return &HotelHandler{hotelUseCase: hotelUseCase, roomUseCase: roomUseCase}
}

func (h *HotelHandler) Create(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actorID, _ := middleware.GetAccountID(c)
	rm, err := h.hotelUseCase.Create(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "hotel created", gin.H{"hotel": resdto.NewHotelResponse(rm)})
}

func (h *HotelHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	rm, err := h.hotelUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"hotel": resdto.NewHotelResponse(rm)})
}

func (h *HotelHandler) List(c *gin.Context) {
	rms, err := h.hotelUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"hotels": resdto.NewHotelResponses(rms)})
}

func (h *HotelHandler) ListRooms(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	rms, err := h.roomUseCase.ListByHotel(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"rooms": resdto.NewRoomResponses(rms)})
}

func (h *HotelHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actorID, _ := middleware.GetAccountID(c)
	rm, err := h.hotelUseCase.Update(c.Request.Context(), id, req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "hotel updated", gin.H{"hotel": resdto.NewHotelResponse(rm)})
}

func (h *HotelHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.hotelUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "hotel deleted", nil)
}
