package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RoomExtraHandler struct {
	extraUseCase usecase.RoomExtraUseCase
}

func NewRoomExtraHandler(extraUseCase usecase.RoomExtraUseCase) *RoomExtraHandler {
	return &RoomExtraHandler{extraUseCase: extraUseCase}
}

func (h *RoomExtraHandler) CreateOrUpdate(c *gin.Context) {
	var req reqdto.CreateOrUpdateExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	rm, err := h.extraUseCase.CreateOrUpdate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "extra saved", gin.H{"extra": resdto.NewRoomExtraResponse(rm)})
}

func (h *RoomExtraHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	rm, err := h.extraUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"extra": resdto.NewRoomExtraResponse(rm)})
}

func (h *RoomExtraHandler) List(c *gin.Context) {
	rms, err := h.extraUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"extras": resdto.NewRoomExtraResponses(rms)})
}

func (h *RoomExtraHandler) RemoveRoom(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	roomID, ok := parseUUIDParam(c, "roomId")
	if !ok {
		return
	}

	rm, err := h.extraUseCase.RemoveRoom(c.Request.Context(), id, roomID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "room detached", gin.H{"extra": resdto.NewRoomExtraResponse(rm)})
}

func (h *RoomExtraHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.extraUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "extra deleted", nil)
}
