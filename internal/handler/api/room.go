package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomUseCase usecase.RoomUseCase
}

func NewRoomHandler(roomUseCase usecase.RoomUseCase) *RoomHandler {
	return &RoomHandler{roomUseCase: roomUseCase}
}

func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actorID, _ := middleware.GetAccountID(c)
	rm, err := h.roomUseCase.Create(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "room created", gin.H{"room": resdto.NewRoomResponse(rm)})
}

func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	rm, err := h.roomUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"room": resdto.NewRoomResponse(rm)})
}

func (h *RoomHandler) List(c *gin.Context) {
	rms, err := h.roomUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"rooms": resdto.NewRoomResponses(rms)})
}

func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	actorID, _ := middleware.GetAccountID(c)
	rm, err := h.roomUseCase.Update(c.Request.Context(), id, req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "room updated", gin.H{"room": resdto.NewRoomResponse(rm)})
}

func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.roomUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "room deleted", nil)
}
