package usecase

import (
	"context"

	"hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type RoomExtraRepository interface {
	Create(ctx context.Context, e *room.Extra) error
	FindByID(ctx context.Context, id uuid.UUID) (*room.Extra, error)
	FindByFlags(ctx context.Context, hasInternet, hasTV bool) (*room.Extra, error)
	FindAll(ctx context.Context) ([]*room.Extra, error)
	ReplaceRooms(ctx context.Context, e *room.Extra) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomExtraUseCase interface {
	CreateOrUpdate(ctx context.Context, req reqdto.CreateOrUpdateExtraRequest) (*readmodel.RoomExtraRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.RoomExtraRM, error)
	List(ctx context.Context) ([]*readmodel.RoomExtraRM, error)
	RemoveRoom(ctx context.Context, id, roomID uuid.UUID) (*readmodel.RoomExtraRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomExtraUseCaseImpl struct {
	extraRepo RoomExtraRepository
}

func NewRoomExtraUseCase(extraRepo RoomExtraRepository) RoomExtraUseCase {
	return &roomExtraUseCaseImpl{extraRepo: extraRepo}
}

// CreateOrUpdate finds the row keyed by the amenity pair and unions the
// requested rooms into its set; if no row exists, one is created. The pair
// never ends up duplicated.
func (u *roomExtraUseCaseImpl) CreateOrUpdate(ctx context.Context, req reqdto.CreateOrUpdateExtraRequest) (*readmodel.RoomExtraRM, error) {
	existing, err := u.extraRepo.FindByFlags(ctx, req.HasInternet, req.HasTV)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}

		created, err := room.NewExtra(req.HasInternet, req.HasTV, req.RoomIDs)
		if err != nil {
			return nil, err
		}
		if err := u.extraRepo.Create(ctx, created); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return nil, errs.Mark(err, ErrUnknownRoom)
			}
			return nil, err
		}
		return readmodel.NewRoomExtraRM(created), nil
	}

	merged := existing.MergeRooms(req.RoomIDs)
	if err := u.extraRepo.ReplaceRooms(ctx, merged); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrUnknownRoom)
		}
		return nil, err
	}
	return readmodel.NewRoomExtraRM(merged), nil
}

func (u *roomExtraUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.RoomExtraRM, error) {
	e, err := u.findExtra(ctx, id)
	if err != nil {
		return nil, err
	}
	return readmodel.NewRoomExtraRM(e), nil
}

func (u *roomExtraUseCaseImpl) List(ctx context.Context) ([]*readmodel.RoomExtraRM, error) {
	extras, err := u.extraRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rms := make([]*readmodel.RoomExtraRM, 0, len(extras))
	for _, e := range extras {
		rms = append(rms, readmodel.NewRoomExtraRM(e))
	}
	return rms, nil
}

func (u *roomExtraUseCaseImpl) RemoveRoom(ctx context.Context, id, roomID uuid.UUID) (*readmodel.RoomExtraRM, error) {
	e, err := u.findExtra(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := e.DetachRoom(roomID)
	if err != nil {
		return nil, err
	}

	if err := u.extraRepo.ReplaceRooms(ctx, next); err != nil {
		return nil, err
	}
	return readmodel.NewRoomExtraRM(next), nil
}

func (u *roomExtraUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.ErrMissingTarget
	}

	if err := u.extraRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return err
	}
	return nil
}

func (u *roomExtraUseCaseImpl) findExtra(ctx context.Context, id uuid.UUID) (*room.Extra, error) {
	if id == uuid.Nil {
		return nil, errs.ErrMissingTarget
	}

	e, err := u.extraRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}
