package usecase

import (
	"context"
	"errors"

	"hotel-booking/internal/domain/hotel"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrDuplicateHotel = errors.New("a hotel with this name or address already exists")
	ErrHotelInUse     = errors.New("hotel still has rooms attached")
)

type HotelRepository interface {
	Create(ctx context.Context, h *hotel.Hotel) error
	FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	FindAll(ctx context.Context) ([]*hotel.Hotel, error)
	Update(ctx context.Context, h *hotel.Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HotelUseCase interface {
	Create(ctx context.Context, req reqdto.CreateHotelRequest, actorID uuid.UUID) (*readmodel.HotelRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.HotelRM, error)
	List(ctx context.Context) ([]*readmodel.HotelRM, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateHotelRequest, actorID uuid.UUID) (*readmodel.HotelRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type hotelUseCaseImpl struct {
	hotelRepo HotelRepository
}

func NewHotelUseCase(hotelRepo HotelRepository) HotelUseCase {
	return &hotelUseCaseImpl{hotelRepo: hotelRepo}
}

func (u *hotelUseCaseImpl) Create(ctx context.Context, req reqdto.CreateHotelRequest, actorID uuid.UUID) (*readmodel.HotelRM, error) {
	h, err := hotel.NewHotel(req.Name, req.Address, req.Description, req.Stars, &actorID)
	if err != nil {
		return nil, err
	}

	if err := u.hotelRepo.Create(ctx, h); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateHotel)
		}
		return nil, err
	}

	return readmodel.NewHotelRM(h), nil
}

func (u *hotelUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.HotelRM, error) {
	h, err := u.findHotel(ctx, id)
	if err != nil {
		return nil, err
	}
	return readmodel.NewHotelRM(h), nil
}

func (u *hotelUseCaseImpl) List(ctx context.Context) ([]*readmodel.HotelRM, error) {
	hotels, err := u.hotelRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rms := make([]*readmodel.HotelRM, 0, len(hotels))
	for _, h := range hotels {
		rms = append(rms, readmodel.NewHotelRM(h))
	}
	return rms, nil
}

func (u *hotelUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateHotelRequest, actorID uuid.UUID) (*readmodel.HotelRM, error) {
	h, err := u.findHotel(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := h.ApplyUpdate(hotel.Update{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Stars:       req.Stars,
		UpdatedBy:   &actorID,
	})
	if err != nil {
		return nil, err
	}

	if err := u.hotelRepo.Update(ctx, next); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateHotel)
		}
		return nil, err
	}

	return readmodel.NewHotelRM(next), nil
}

func (u *hotelUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.ErrMissingTarget
	}

	if err := u.hotelRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, ErrHotelInUse)
		}
		return err
	}
	return nil
}

func (u *hotelUseCaseImpl) findHotel(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	if id == uuid.Nil {
		return nil, errs.ErrMissingTarget
	}

	h, err := u.hotelRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, err
	}
	return h, nil
}
