package api

import (
	"net/http"

	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HotelMediaHandler struct {
	mediaUseCase usecase.HotelMediaUseCase
}

func NewHotelMediaHandler(mediaUseCase usecase.HotelMediaUseCase) *HotelMediaHandler {
	return &HotelMediaHandler{mediaUseCase: mediaUseCase}
}

// Upload accepts a multipart form with a "file" part, attached to the hotel
// in the path.
func (h *HotelMediaHandler) Upload(c *gin.Context) {
	hotelID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "A file part is required")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Could not read the uploaded file")
		return
	}
	defer src.Close()

	rm, err := h.mediaUseCase.Upload(c.Request.Context(), hotelID, fileHeader.Filename, src)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "media uploaded", gin.H{"media": resdto.NewHotelMediaResponse(rm)})
}

func (h *HotelMediaHandler) ListByHotel(c *gin.Context) {
	hotelID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	rms, err := h.mediaUseCase.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"media": resdto.NewHotelMediaResponses(rms)})
}

func (h *HotelMediaHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.mediaUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "media deleted", nil)
}

type RoomMediaHandler struct {
	mediaUseCase usecase.RoomMediaUseCase
}

func NewRoomMediaHandler(mediaUseCase usecase.RoomMediaUseCase) *RoomMediaHandler {
	return &RoomMediaHandler{mediaUseCase: mediaUseCase}
}

// Upload accepts a multipart form with a "file" part and one or more
// "room_ids" fields.
func (h *RoomMediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "A file part is required")
		return
	}

	roomIDs, err := parseRoomIDs(c.PostFormArray("room_ids"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room_ids")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Could not read the uploaded file")
		return
	}
	defer src.Close()

	rm, err := h.mediaUseCase.Upload(c.Request.Context(), roomIDs, fileHeader.Filename, src)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "media uploaded", gin.H{"media": resdto.NewRoomMediaResponse(rm)})
}

func (h *RoomMediaHandler) List(c *gin.Context) {
	rms, err := h.mediaUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"media": resdto.NewRoomMediaResponses(rms)})
}

func (h *RoomMediaHandler) RemoveRoom(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	roomID, ok := parseUUIDParam(c, "roomId")
	if !ok {
		return
	}

	rm, err := h.mediaUseCase.RemoveRoom(c.Request.Context(), id, roomID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "room detached", gin.H{"media": resdto.NewRoomMediaResponse(rm)})
}

func (h *RoomMediaHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.mediaUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "media deleted", nil)
}

func parseRoomIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, errs.New("at least one room id is required")
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
