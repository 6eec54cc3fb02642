package api

import (
	"errors"
	"net/http"

	"hotel-booking/internal/domain/account"
	"hotel-booking/internal/domain/discount"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respond writes the success envelope: cod 0, a message, and the payload
// fields merged in at the top level.
func respond(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{"cod": 0, "message": message}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// validationErrors all map to a plain 400 with the error's own message.
var validationErrors = []error{
	errs.ErrWeakPassword,
	errs.ErrMissingTarget,
	errs.ErrInvalidDateRange,
	errs.ErrUnapplicableDiscount,
	errs.ErrInvalidDiscountShape,
	errs.ErrMissingIdentifier,
	usecase.ErrUnknownHotel,
	usecase.ErrUnknownRoom,
	usecase.ErrUnknownDiscount,
	account.ErrInvalidEmail,
	account.ErrInvalidTier,
	hotel.ErrEmptyName,
	hotel.ErrEmptyAddress,
	hotel.ErrNameTooLong,
	hotel.ErrAddressTooLong,
	hotel.ErrInvalidStars,
	hotel.ErrEmptyMediaPath,
	room.ErrInvalidStatus,
	room.ErrInvalidRoomType,
	room.ErrNegativePrice,
	room.ErrInvalidCapacity,
	room.ErrInvalidBedCount,
	room.ErrEmptyMediaPath,
	room.ErrEmptyRoomSet,
	room.ErrRoomNotInSet,
	discount.ErrInvalidCode,
	discount.ErrCodeTooLong,
	discount.ErrRateOutOfRange,
	discount.ErrNegativeFlat,
	reservation.ErrInvalidGuestCount,
	reservation.ErrNegativeMoney,
}

var conflictErrors = []error{
	errs.ErrDuplicateIdentity,
	usecase.ErrDuplicateHotel,
	usecase.ErrDuplicateRoom,
	usecase.ErrDuplicateCode,
	usecase.ErrHotelInUse,
	usecase.ErrRoomInUse,
}

// respondError translates usecase and domain errors into the failure
// envelope with the matching status code.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Record not found")
	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrAuthenticationFailed),
		errors.Is(err, usecase.ErrTokenValidation):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials")
	case errors.Is(err, usecase.ErrAccountInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive")
	case matchesAny(err, conflictErrors):
		httperr.AbortWithError(c, http.StatusConflict, err, rootMessage(err))
	case matchesAny(err, validationErrors):
		httperr.AbortWithError(c, http.StatusBadRequest, err, rootMessage(err))
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

func matchesAny(err error, sentinels []error) bool {
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// rootMessage returns the sentinel's message rather than the full wrapped
// chain, which may carry storage detail.
func rootMessage(err error) string {
	for _, sentinel := range append(append([]error{}, conflictErrors...), validationErrors...) {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

func bindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid identifier")
		return uuid.Nil, false
	}
	return id, true
}
