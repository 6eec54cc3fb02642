package usecase

import (
	"context"
	"errors"

	"hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrDuplicateRoom = errors.New("a room with this name and number already exists in the hotel")
	ErrUnknownHotel  = errors.New("referenced hotel does not exist")
	ErrRoomInUse     = errors.New("room still has reservations attached")
)

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	FindAll(ctx context.Context) ([]*room.Room, error)
	FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*room.Room, error)
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomUseCase interface {
	Create(ctx context.Context, req reqdto.CreateRoomRequest, actorID uuid.UUID) (*readmodel.RoomRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error)
	List(ctx context.Context) ([]*readmodel.RoomRM, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*readmodel.RoomRM, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest, actorID uuid.UUID) (*readmodel.RoomRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomUseCaseImpl struct {
	roomRepo RoomRepository
}

func NewRoomUseCase(roomRepo RoomRepository) RoomUseCase {
	return &roomUseCaseImpl{roomRepo: roomRepo}
}

func (u *roomUseCaseImpl) Create(ctx context.Context, req reqdto.CreateRoomRequest, actorID uuid.UUID) (*readmodel.RoomRM, error) {
	r, err := room.NewRoom(
		req.HotelID,
		req.Name,
		req.Number,
		req.Description,
		room.Status(req.Status),
		room.RoomType(req.RoomType),
		req.PriceCents,
		req.Capacity,
		req.Beds,
		&actorID,
	)
	if err != nil {
		if errors.Is(err, room.ErrMissingIdentifier) {
			return nil, errs.Mark(err, errs.ErrMissingIdentifier)
		}
		return nil, err
	}

	if err := u.roomRepo.Create(ctx, r); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateRoom)
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrUnknownHotel)
		}
		return nil, err
	}

	return readmodel.NewRoomRM(r), nil
}

func (u *roomUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error) {
	r, err := u.findRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	return readmodel.NewRoomRM(r), nil
}

func (u *roomUseCaseImpl) List(ctx context.Context) ([]*readmodel.RoomRM, error) {
	rooms, err := u.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return roomRMs(rooms), nil
}

func (u *roomUseCaseImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*readmodel.RoomRM, error) {
	rooms, err := u.roomRepo.FindByHotelID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	return roomRMs(rooms), nil
}

func (u *roomUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest, actorID uuid.UUID) (*readmodel.RoomRM, error) {
	r, err := u.findRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := room.Update{
		HotelID:     req.HotelID,
		Name:        req.Name,
		Number:      req.Number,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Capacity:    req.Capacity,
		Beds:        req.Beds,
		UpdatedBy:   &actorID,
	}
	if req.Status != nil {
		status := room.Status(*req.Status)
		upd.Status = &status
	}
	if req.RoomType != nil {
		roomType := room.RoomType(*req.RoomType)
		upd.RoomType = &roomType
	}

	next, err := r.ApplyUpdate(upd)
	if err != nil {
		if errors.Is(err, room.ErrMissingIdentifier) {
			return nil, errs.Mark(err, errs.ErrMissingIdentifier)
		}
		return nil, err
	}

	if err := u.roomRepo.Update(ctx, next); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateRoom)
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrUnknownHotel)
		}
		return nil, err
	}

	return readmodel.NewRoomRM(next), nil
}

func (u *roomUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.ErrMissingTarget
	}

	if err := u.roomRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, ErrRoomInUse)
		}
		return err
	}
	return nil
}

func (u *roomUseCaseImpl) findRoom(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	if id == uuid.Nil {
		return nil, errs.ErrMissingTarget
	}

	r, err := u.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, err
	}
	return r, nil
}

func roomRMs(rooms []*room.Room) []*readmodel.RoomRM {
	rms := make([]*readmodel.RoomRM, 0, len(rooms))
	for _, r := range rooms {
		rms = append(rms, readmodel.NewRoomRM(r))
	}
	return rms
}
