//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-booking/internal/handler/api"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type hotelUseCaseMock struct {
	mock.Mock
}

func (m *hotelUseCaseMock) Create(ctx context.Context, req reqdto.CreateHotelRequest, actorID uuid.UUID) (*readmodel.HotelRM, error) {
	args := m.Called(ctx, req, actorID)
	if rm, ok := args.Get(0).(*readmodel.HotelRM); ok {
		return rm, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hotelUseCaseMock) Get(ctx context.Context, id uuid.UUID) (*readmodel.HotelRM, error) {
	args := m.Called(ctx, id)
	if rm, ok := args.Get(0).(*readmodel.HotelRM); ok {
		return rm, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hotelUseCaseMock) List(ctx context.Context) ([]*readmodel.HotelRM, error) {
	args := m.Called(ctx)
	if rms, ok := args.Get(0).([]*readmodel.HotelRM); ok {
		return rms, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hotelUseCaseMock) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateHotelRequest, actorID uuid.UUID) (*readmodel.HotelRM, error) {
	args := m.Called(ctx, id, req, actorID)
	if rm, ok := args.Get(0).(*readmodel.HotelRM); ok {
		return rm, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hotelUseCaseMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type roomUseCaseStub struct {
	usecase.RoomUseCase
}

func newHotelRouter(uc usecase.HotelUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.ErrorHandler())

	h := api.NewHotelHandler(uc, roomUseCaseStub{})
	engine.POST("/hotels", func(c *gin.Context) {
		c.Set("account_id", uuid.New())
		h.Create(c)
	})
	engine.GET("/hotels/:id", h.Get)
	engine.DELETE("/hotels/:id", h.Delete)
	return engine
}

func performJSON(t *testing.T, engine *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func testHotelRM() *readmodel.HotelRM {
	now := time.Now().UTC()
	return &readmodel.HotelRM{
		ID:        uuid.New(),
		Name:      "Grand Plaza",
		Address:   "1 Main Street",
		Stars:     4,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestHotelHandler_Get_SuccessEnvelope(t *testing.T) {
	uc := new(hotelUseCaseMock)
	rm := testHotelRM()
	uc.On("Get", mock.Anything, rm.ID).Return(rm, nil)

	rec := performJSON(t, newHotelRouter(uc), http.MethodGet, "/hotels/"+rm.ID.String(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, float64(0), body["cod"])
	assert.Equal(t, "ok", body["message"])

	payload, ok := body["hotel"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, rm.Name, payload["name"])
	assert.Equal(t, rm.ID.String(), payload["id"])
}

func TestHotelHandler_Get_NotFoundEnvelope(t *testing.T) {
	uc := new(hotelUseCaseMock)
	id := uuid.New()
	uc.On("Get", mock.Anything, id).Return(nil, errs.Mark(errs.New("no rows"), errs.ErrNotFound))

	rec := performJSON(t, newHotelRouter(uc), http.MethodGet, "/hotels/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, float64(1), body["cod"])
	assert.Equal(t, "Record not found", body["message"])
}

func TestHotelHandler_Get_InvalidIDEnvelope(t *testing.T) {
	uc := new(hotelUseCaseMock)

	rec := performJSON(t, newHotelRouter(uc), http.MethodGet, "/hotels/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, float64(1), body["cod"])
	assert.Equal(t, "Invalid identifier", body["message"])
	uc.AssertNotCalled(t, "Get")
}

func TestHotelHandler_Create_SuccessEnvelope(t *testing.T) {
	uc := new(hotelUseCaseMock)
	rm := testHotelRM()
	uc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(rm, nil)

	rec := performJSON(t, newHotelRouter(uc), http.MethodPost, "/hotels", gin.H{
		"name":    rm.Name,
		"address": rm.Address,
		"stars":   rm.Stars,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, float64(0), body["cod"])
	assert.Equal(t, "hotel created", body["message"])
}

func TestHotelHandler_Create_DuplicateEnvelope(t *testing.T) {
	uc := new(hotelUseCaseMock)
	uc.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errs.Mark(errs.New("duplicate key"), usecase.ErrDuplicateHotel))

	rec := performJSON(t, newHotelRouter(uc), http.MethodPost, "/hotels", gin.H{
		"name":    "Grand Plaza",
		"address": "1 Main Street",
		"stars":   4,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, float64(1), body["cod"])
	assert.Equal(t, usecase.ErrDuplicateHotel.Error(), body["message"])
}

func TestHotelHandler_Create_BindErrorEnvelope(t *testing.T) {
	uc := new(hotelUseCaseMock)

	rec := performJSON(t, newHotelRouter(uc), http.MethodPost, "/hotels", gin.H{
		"address": "1 Main Street",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, float64(1), body["cod"])
	assert.Equal(t, "Invalid request format", body["message"])
	uc.AssertNotCalled(t, "Create")
}

func TestHotelHandler_Delete_InUseEnvelope(t *testing.T) {
	uc := new(hotelUseCaseMock)
	id := uuid.New()
	uc.On("Delete", mock.Anything, id).
		Return(errs.Mark(errs.New("fk violation"), usecase.ErrHotelInUse))

	rec := performJSON(t, newHotelRouter(uc), http.MethodDelete, "/hotels/"+id.String(), nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, float64(1), body["cod"])
	assert.Equal(t, usecase.ErrHotelInUse.Error(), body["message"])
}

func TestHotelHandler_Get_UnexpectedErrorEnvelope(t *testing.T) {
	uc := new(hotelUseCaseMock)
	id := uuid.New()
	uc.On("Get", mock.Anything, id).Return(nil, errs.New("connection reset"))

	rec := performJSON(t, newHotelRouter(uc), http.MethodGet, "/hotels/"+id.String(), nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, float64(1), body["cod"])
	assert.Equal(t, "Internal server error", body["message"])
}
