package usecase

import (
	"context"
	"errors"

	"hotel-booking/internal/domain/discount"
	"hotel-booking/internal/domain/reservation"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/patch"
	"hotel-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUnknownRoom     = errors.New("referenced room does not exist")
	ErrUnknownDiscount = errors.New("referenced discount does not exist")
)

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindAll(ctx context.Context) ([]*reservation.Reservation, error)
	FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*reservation.Reservation, error)
	Update(ctx context.Context, r *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReservationUseCase interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest, actorID uuid.UUID) (*readmodel.ReservationRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	List(ctx context.Context) ([]*readmodel.ReservationRM, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*readmodel.ReservationRM, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationRequest, actorID uuid.UUID) (*readmodel.ReservationRM, error)
	Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*readmodel.ReservationRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationUseCaseImpl struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	discountRepo    DiscountRepository
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	discountRepo DiscountRepository,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		discountRepo:    discountRepo,
	}
}

// Create prices the stay once, from the room's current nightly rate and the
// referenced discount. The stored price never changes afterwards.
func (u *reservationUseCaseImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest, actorID uuid.UUID) (*readmodel.ReservationRM, error) {
	stay, err := reservation.NewStayPeriod(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	rm, err := u.roomRepo.FindByID(ctx, req.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUnknownRoom)
		}
		return nil, err
	}

	var disc *discount.Discount
	if req.DiscountID != nil {
		disc, err = u.discountRepo.FindByID(ctx, *req.DiscountID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrUnknownDiscount)
			}
			return nil, err
		}
	}

	res, err := reservation.NewReservation(rm.ID(), &actorID, disc, req.Guests, stay, rm.NightlyRate(), &actorID)
	if err != nil {
		if errors.Is(err, discount.ErrUnapplicable) {
			return nil, errs.Mark(err, errs.ErrUnapplicableDiscount)
		}
		return nil, err
	}

	if err := u.reservationRepo.Create(ctx, res); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrUnknownRoom)
		}
		return nil, err
	}

	return readmodel.NewReservationRM(res), nil
}

func (u *reservationUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	res, err := u.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	return readmodel.NewReservationRM(res), nil
}

func (u *reservationUseCaseImpl) List(ctx context.Context) ([]*readmodel.ReservationRM, error) {
	reservations, err := u.reservationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return reservationRMs(reservations), nil
}

func (u *reservationUseCaseImpl) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*readmodel.ReservationRM, error) {
	reservations, err := u.reservationRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return reservationRMs(reservations), nil
}

// Update merges the requested fields. Even when the stay or the room changes,
// the locked price is kept.
func (u *reservationUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationRequest, actorID uuid.UUID) (*readmodel.ReservationRM, error) {
	res, err := u.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := reservation.Update{
		RoomID:     req.RoomID,
		DiscountID: req.DiscountID,
		Guests:     req.Guests,
		UpdatedBy:  &actorID,
	}

	if req.CheckIn != nil || req.CheckOut != nil {
		stay, err := reservation.NewStayPeriod(
			patch.Coalesce(req.CheckIn, res.Stay().CheckIn()),
			patch.Coalesce(req.CheckOut, res.Stay().CheckOut()),
		)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidDateRange)
		}
		upd.Stay = &stay
	}

	next, err := res.ApplyUpdate(upd)
	if err != nil {
		return nil, err
	}

	if err := u.persist(ctx, next); err != nil {
		return nil, err
	}
	return readmodel.NewReservationRM(next), nil
}

func (u *reservationUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*readmodel.ReservationRM, error) {
	res, err := u.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := res.Cancel().ApplyUpdate(reservation.Update{UpdatedBy: &actorID})
	if err != nil {
		return nil, err
	}

	if err := u.persist(ctx, next); err != nil {
		return nil, err
	}
	return readmodel.NewReservationRM(next), nil
}

func (u *reservationUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.ErrMissingTarget
	}

	if err := u.reservationRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return err
	}
	return nil
}

func (u *reservationUseCaseImpl) findReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	if id == uuid.Nil {
		return nil, errs.ErrMissingTarget
	}

	res, err := u.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, err
	}
	return res, nil
}

func (u *reservationUseCaseImpl) persist(ctx context.Context, res *reservation.Reservation) error {
	if err := u.reservationRepo.Update(ctx, res); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, ErrUnknownRoom)
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return err
	}
	return nil
}

func reservationRMs(reservations []*reservation.Reservation) []*readmodel.ReservationRM {
	rms := make([]*readmodel.ReservationRM, 0, len(reservations))
	for _, r := range reservations {
		rms = append(rms, readmodel.NewReservationRM(r))
	}
	return rms
}
