package usecase

import (
	"context"
	"time"

	"hotel-booking/internal/domain/account"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AccountRepository interface {
	Create(ctx context.Context, a *account.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
	FindByEmail(ctx context.Context, email account.Email) (*account.Account, error)
	FindAll(ctx context.Context) ([]*account.Account, error)
	Update(ctx context.Context, a *account.Account) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AccountUseCase interface {
	Create(ctx context.Context, req reqdto.CreateAccountRequest, tier account.Tier) (*readmodel.AccountRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.AccountRM, error)
	List(ctx context.Context) ([]*readmodel.AccountRM, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateAccountRequest) (*readmodel.AccountRM, error)
	Activate(ctx context.Context, id uuid.UUID) (*readmodel.AccountRM, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*readmodel.AccountRM, error)
	GrantStaff(ctx context.Context, id uuid.UUID) (*readmodel.AccountRM, error)
	RevokeStaff(ctx context.Context, id uuid.UUID) (*readmodel.AccountRM, error)
	GrantSuperuser(ctx context.Context, id uuid.UUID) (*readmodel.AccountRM, error)
	RevokeSuperuser(ctx context.Context, id uuid.UUID) (*readmodel.AccountRM, error)
	DeletePhysical(ctx context.Context, id uuid.UUID) error
}

type accountUseCaseImpl struct {
	accountRepo AccountRepository
}

func NewAccountUseCase(accountRepo AccountRepository) AccountUseCase {
	return &accountUseCaseImpl{accountRepo: accountRepo}
}

func (u *accountUseCaseImpl) Create(ctx context.Context, req reqdto.CreateAccountRequest, tier account.Tier) (*readmodel.AccountRM, error) {
	tier, err := account.NewTier(tier.String())
	if err != nil {
		return nil, err
	}

	email, err := account.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}

	pw, err := account.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrWeakPassword)
	}

	hash, err := password.Hash(pw.Value())
	if err != nil {
		return nil, err
	}

	acc := account.NewAccount(email, req.Name, req.LastName, hash, tier)
	if err := u.accountRepo.Create(ctx, acc); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDuplicateIdentity)
		}
		return nil, err
	}

	return readmodel.NewAccountRM(acc), nil
}

func (u *accountUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.AccountRM, error) {
	acc, err := u.findAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	return readmodel.NewAccountRM(acc), nil
}

func (u *accountUseCaseImpl) List(ctx context.Context) ([]*readmodel.AccountRM, error) {
	accounts, err := u.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rms := make([]*readmodel.AccountRM, 0, len(accounts))
	for _, acc := range accounts {
		rms = append(rms, readmodel.NewAccountRM(acc))
	}
	return rms, nil
}

// Update merges the requested fields. Privilege flags in the payload are
// ignored rather than rejected; a new password is re-validated and re-hashed.
func (u *accountUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateAccountRequest) (*readmodel.AccountRM, error) {
	acc, err := u.findAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := account.Update{
		Name:     req.Name,
		LastName: req.LastName,
		IsActive: req.IsActive,
	}

	if req.Email != nil {
		email, err := account.NewEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		upd.Email = &email
	}

	if req.Password != nil {
		pw, err := account.NewPassword(*req.Password)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrWeakPassword)
		}
		hash, err := password.Hash(pw.Value())
		if err != nil {
			return nil, err
		}
		upd.PasswordHash = &hash
	}

	next := acc.ApplyUpdate(upd)
	if err := u.persist(ctx, next); err != nil {
		return nil, err
	}
	return readmodel.NewAccountRM(next), nil
}

func (u *accountUseCaseImpl) Activate(ctx context.Context, id uuid.UUID) (*readmodel.AccountRM, error) {
	return u.mutate(ctx, id, (*account.Account).Activate)
}

func (u *accountUseCaseImpl) Deactivate(ctx context.Context, id uuid.UUID) (*readmodel.AccountRM, error) {
	return u.mutate(ctx, id, (*account.Account).Deactivate)
}

func (u *accountUseCaseImpl) GrantStaff(ctx context.Context, id uuid.UUID) (*readmodel.AccountRM, error) {
	return u.mutate(ctx, id, (*account.Account).GrantStaff)
}

func (u *accountUseCaseImpl) RevokeStaff(ctx context.Context, id uuid.UUID) (*readmodel.AccountRM, error) {
	return u.mutate(ctx, id, (*account.Account).RevokeStaff)
}

func (u *accountUseCaseImpl) GrantSuperuser(ctx context.Context, id uuid.UUID) (*readmodel.AccountRM, error) {
	return u.mutate(ctx, id, (*account.Account).GrantSuperuser)
}

func (u *accountUseCaseImpl) RevokeSuperuser(ctx context.Context, id uuid.UUID) (*readmodel.AccountRM, error) {
	return u.mutate(ctx, id, (*account.Account).RevokeSuperuser)
}

func (u *accountUseCaseImpl) DeletePhysical(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.ErrMissingTarget
	}
	if err := u.accountRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return err
	}
	return nil
}

func (u *accountUseCaseImpl) mutate(ctx context.Context, id uuid.UUID, op func(*account.Account) *account.Account) (*readmodel.AccountRM, error) {
	acc, err := u.findAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	next := op(acc)
	if err := u.persist(ctx, next); err != nil {
		return nil, err
	}
	return readmodel.NewAccountRM(next), nil
}

func (u *accountUseCaseImpl) findAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	if id == uuid.Nil {
		return nil, errs.ErrMissingTarget
	}

	acc, err := u.accountRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, err
	}
	return acc, nil
}

func (u *accountUseCaseImpl) persist(ctx context.Context, acc *account.Account) error {
	if err := u.accountRepo.Update(ctx, acc); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, errs.ErrDuplicateIdentity)
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return err
	}
	return nil
}
