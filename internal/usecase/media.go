package usecase

import (
	"context"
	"io"
	"log/slog"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/filestore"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const (
	hotelMediaDir = "media_hotel"
	roomMediaDir  = "media_room"
)

type HotelMediaRepository interface {
	Create(ctx context.Context, m *hotel.Media) error
	FindByID(ctx context.Context, id uuid.UUID) (*hotel.Media, error)
	FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*hotel.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomMediaRepository interface {
	Create(ctx context.Context, m *room.Media) error
	FindByID(ctx context.Context, id uuid.UUID) (*room.Media, error)
	FindAll(ctx context.Context) ([]*room.Media, error)
	ReplaceRooms(ctx context.Context, m *room.Media) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HotelMediaUseCase interface {
	Upload(ctx context.Context, hotelID uuid.UUID, filename string, file io.Reader) (*readmodel.HotelMediaRM, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*readmodel.HotelMediaRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomMediaUseCase interface {
	Upload(ctx context.Context, roomIDs []uuid.UUID, filename string, file io.Reader) (*readmodel.RoomMediaRM, error)
	List(ctx context.Context) ([]*readmodel.RoomMediaRM, error)
	RemoveRoom(ctx context.Context, id, roomID uuid.UUID) (*readmodel.RoomMediaRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type hotelMediaUseCaseImpl struct {
	mediaRepo HotelMediaRepository
	files     filestore.Store
}

func NewHotelMediaUseCase(mediaRepo HotelMediaRepository, files filestore.Store) HotelMediaUseCase {
	return &hotelMediaUseCaseImpl{mediaRepo: mediaRepo, files: files}
}

func (u *hotelMediaUseCaseImpl) Upload(ctx context.Context, hotelID uuid.UUID, filename string, file io.Reader) (*readmodel.HotelMediaRM, error) {
	path, err := u.files.Save(hotelMediaDir, filename, file)
	if err != nil {
		return nil, err
	}

	m, err := hotel.NewMedia(hotelID, path)
	if err != nil {
		return nil, err
	}

	if err := u.mediaRepo.Create(ctx, m); err != nil {
		// The binary must not outlive a failed insert.
		cleanupFile(u.files, path)
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrUnknownHotel)
		}
		return nil, err
	}

	return readmodel.NewHotelMediaRM(m), nil
}

func (u *hotelMediaUseCaseImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*readmodel.HotelMediaRM, error) {
	media, err := u.mediaRepo.FindByHotelID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	rms := make([]*readmodel.HotelMediaRM, 0, len(media))
	for _, m := range media {
		rms = append(rms, readmodel.NewHotelMediaRM(m))
	}
	return rms, nil
}

func (u *hotelMediaUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.ErrMissingTarget
	}

	m, err := u.mediaRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return err
	}

	if err := u.mediaRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return err
	}

	return u.files.Remove(m.Path())
}

type roomMediaUseCaseImpl struct {
	mediaRepo RoomMediaRepository
	files     filestore.Store
}

func NewRoomMediaUseCase(mediaRepo RoomMediaRepository, files filestore.Store) RoomMediaUseCase {
	return &roomMediaUseCaseImpl{mediaRepo: mediaRepo, files: files}
}

func (u *roomMediaUseCaseImpl) Upload(ctx context.Context, roomIDs []uuid.UUID, filename string, file io.Reader) (*readmodel.RoomMediaRM, error) {
	path, err := u.files.Save(roomMediaDir, filename, file)
	if err != nil {
		return nil, err
	}

	m, err := room.NewMedia(path, roomIDs)
	if err != nil {
		cleanupFile(u.files, path)
		return nil, err
	}

	if err := u.mediaRepo.Create(ctx, m); err != nil {
		cleanupFile(u.files, path)
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrUnknownRoom)
		}
		return nil, err
	}

	return readmodel.NewRoomMediaRM(m), nil
}

func (u *roomMediaUseCaseImpl) List(ctx context.Context) ([]*readmodel.RoomMediaRM, error) {
	media, err := u.mediaRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rms := make([]*readmodel.RoomMediaRM, 0, len(media))
	for _, m := range media {
		rms = append(rms, readmodel.NewRoomMediaRM(m))
	}
	return rms, nil
}

// RemoveRoom detaches a single room from the media's set. The record and the
// file survive even when the set becomes empty.
func (u *roomMediaUseCaseImpl) RemoveRoom(ctx context.Context, id, roomID uuid.UUID) (*readmodel.RoomMediaRM, error) {
	if id == uuid.Nil {
		return nil, errs.ErrMissingTarget
	}

	m, err := u.mediaRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, err
	}

	next, err := m.DetachRoom(roomID)
	if err != nil {
		return nil, err
	}

	if err := u.mediaRepo.ReplaceRooms(ctx, next); err != nil {
		return nil, err
	}
	return readmodel.NewRoomMediaRM(next), nil
}

func (u *roomMediaUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.ErrMissingTarget
	}

	m, err := u.mediaRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return err
	}

	if err := u.mediaRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return err
	}

	return u.files.Remove(m.Path())
}

func cleanupFile(files filestore.Store, path string) {
	if err := files.Remove(path); err != nil {
		slog.Warn("failed to remove orphaned media file", "path", path, "error", err)
	}
}
