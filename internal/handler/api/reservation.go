package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{reservationUseCase: reservationUseCase}
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actorID, _ := middleware.GetAccountID(c)
	rm, err := h.reservationUseCase.Create(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "reservation created", gin.H{"reservation": resdto.NewReservationResponse(rm)})
}

func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	rm, err := h.reservationUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"reservation": resdto.NewReservationResponse(rm)})
}

func (h *ReservationHandler) List(c *gin.Context) {
	rms, err := h.reservationUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"reservations": resdto.NewReservationResponses(rms)})
}

// Mine lists the authenticated account's own reservations.
func (h *ReservationHandler) Mine(c *gin.Context) {
	accountID, _ := middleware.GetAccountID(c)

	rms, err := h.reservationUseCase.ListByAccount(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"reservations": resdto.NewReservationResponses(rms)})
}

func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actorID, _ := middleware.GetAccountID(c)
	rm, err := h.reservationUseCase.Update(c.Request.Context(), id, req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "reservation updated", gin.H{"reservation": resdto.NewReservationResponse(rm)})
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	actorID, _ := middleware.GetAccountID(c)
	rm, err := h.reservationUseCase.Cancel(c.Request.Context(), id, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "reservation canceled", gin.H{"reservation": resdto.NewReservationResponse(rm)})
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.reservationUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "reservation deleted", nil)
}
