package usecase

import (
	"context"
	"errors"

	"hotel-booking/internal/domain/discount"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/patch"
	"hotel-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrDuplicateCode = errors.New("a discount with this code already exists")

type DiscountRepository interface {
	Create(ctx context.Context, d *discount.Discount) error
	FindByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error)
	FindByCode(ctx context.Context, code discount.Code) (*discount.Discount, error)
	FindAll(ctx context.Context) ([]*discount.Discount, error)
	Update(ctx context.Context, d *discount.Discount) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DiscountUseCase interface {
	Create(ctx context.Context, req reqdto.CreateDiscountRequest, actorID uuid.UUID) (*readmodel.DiscountRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.DiscountRM, error)
	List(ctx context.Context) ([]*readmodel.DiscountRM, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateDiscountRequest, actorID uuid.UUID) (*readmodel.DiscountRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type discountUseCaseImpl struct {
	discountRepo DiscountRepository
}

func NewDiscountUseCase(discountRepo DiscountRepository) DiscountUseCase {
	return &discountUseCaseImpl{discountRepo: discountRepo}
}

func (u *discountUseCaseImpl) Create(ctx context.Context, req reqdto.CreateDiscountRequest, actorID uuid.UUID) (*readmodel.DiscountRM, error) {
	code, err := discount.NewCode(req.Code)
	if err != nil {
		return nil, err
	}

	terms, err := discount.NewTerms(req.RatePercent, req.FlatCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDiscountShape)
	}

	d := discount.NewDiscount(code, terms, &actorID)
	if err := u.discountRepo.Create(ctx, d); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateCode)
		}
		return nil, err
	}

	return readmodel.NewDiscountRM(d), nil
}

func (u *discountUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.DiscountRM, error) {
	d, err := u.findDiscount(ctx, id)
	if err != nil {
		return nil, err
	}
	return readmodel.NewDiscountRM(d), nil
}

func (u *discountUseCaseImpl) List(ctx context.Context) ([]*readmodel.DiscountRM, error) {
	discounts, err := u.discountRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rms := make([]*readmodel.DiscountRM, 0, len(discounts))
	for _, d := range discounts {
		rms = append(rms, readmodel.NewDiscountRM(d))
	}
	return rms, nil
}

// Update merges the requested fields and re-validates the resulting terms:
// a merge that leaves rate and flat both positive or both zero is rejected.
func (u *discountUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateDiscountRequest, actorID uuid.UUID) (*readmodel.DiscountRM, error) {
	d, err := u.findDiscount(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := discount.Update{UpdatedBy: &actorID}

	if req.Code != nil {
		code, err := discount.NewCode(*req.Code)
		if err != nil {
			return nil, err
		}
		upd.Code = &code
	}

	if req.RatePercent != nil || req.FlatCents != nil {
		terms, err := discount.NewTerms(
			patch.Coalesce(req.RatePercent, d.Terms().RatePercent()),
			patch.Coalesce(req.FlatCents, d.Terms().FlatCents()),
		)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidDiscountShape)
		}
		upd.Terms = &terms
	}

	next := d.ApplyUpdate(upd)
	if err := u.discountRepo.Update(ctx, next); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateCode)
		}
		return nil, err
	}

	return readmodel.NewDiscountRM(next), nil
}

func (u *discountUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.ErrMissingTarget
	}

	if err := u.discountRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return err
	}
	return nil
}

func (u *discountUseCaseImpl) findDiscount(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	if id == uuid.Nil {
		return nil, errs.ErrMissingTarget
	}

	d, err := u.discountRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, err
	}
	return d, nil
}
