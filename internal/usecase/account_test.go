//go:build unit

package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/domain/account"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateAccountRequest() reqdto.CreateAccountRequest {
	return reqdto.CreateAccountRequest{
		Email:    "guest@example.com",
		Name:     "Ana",
		LastName: "Garcia",
		Password: "secret123",
	}
}

func TestAccountUseCase_Create(t *testing.T) {
	tests := []struct {
		name    string
		tier    account.Tier
		isStaff bool
		isSuper bool
		active  bool
	}{
		{name: "user tier starts inactive", tier: account.TierUser},
		{name: "staff tier starts active", tier: account.TierStaff, isStaff: true, active: true},
		{name: "superuser tier gets all flags", tier: account.TierSuperuser, isStaff: true, isSuper: true, active: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(accountRepoMock)
			repo.On("Create", mock.Anything, mock.Anything).Return(nil)

			uc := NewAccountUseCase(repo)
			rm, err := uc.Create(context.Background(), validCreateAccountRequest(), tt.tier)

			require.NoError(t, err)
			assert.Equal(t, tt.isStaff, rm.IsStaff)
			assert.Equal(t, tt.isSuper, rm.IsSuperuser)
			assert.Equal(t, tt.active, rm.IsActive)
			repo.AssertExpectations(t)
		})
	}
}

func TestAccountUseCase_Create_UnknownTier(t *testing.T) {
	repo := new(accountRepoMock)
	uc := NewAccountUseCase(repo)

	_, err := uc.Create(context.Background(), validCreateAccountRequest(), account.Tier("admin"))

	assert.ErrorIs(t, err, account.ErrInvalidTier)
	repo.AssertNotCalled(t, "Create")
}

func TestAccountUseCase_Create_WeakPassword(t *testing.T) {
	repo := new(accountRepoMock)
	uc := NewAccountUseCase(repo)

	req := validCreateAccountRequest()
	req.Password = "short1"
	_, err := uc.Create(context.Background(), req, account.TierUser)

	assert.ErrorIs(t, err, errs.ErrWeakPassword)
	repo.AssertNotCalled(t, "Create")
}

func TestAccountUseCase_Create_DuplicateEmail(t *testing.T) {
	repo := new(accountRepoMock)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey))

	uc := NewAccountUseCase(repo)
	_, err := uc.Create(context.Background(), validCreateAccountRequest(), account.TierUser)

	assert.ErrorIs(t, err, errs.ErrDuplicateIdentity)
}

func TestAccountUseCase_Update_IgnoresPrivilegeFlags(t *testing.T) {
	email, _ := account.NewEmail("guest@example.com")
	acc := account.NewAccount(email, "Ana", "Garcia", "hash", account.TierUser)

	repo := new(accountRepoMock)
	repo.On("FindByID", mock.Anything, acc.ID()).Return(acc, nil)

	var persisted *account.Account
	repo.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { persisted = args.Get(1).(*account.Account) }).
		Return(nil)

	staff := true
	super := true
	name := "Ana Maria"
	uc := NewAccountUseCase(repo)
	rm, err := uc.Update(context.Background(), acc.ID(), reqdto.UpdateAccountRequest{
		Name:        &name,
		IsStaff:     &staff,
		IsSuperuser: &super,
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", rm.Name)
	assert.False(t, rm.IsStaff, "is_staff in the payload is a no-op")
	assert.False(t, rm.IsSuperuser, "is_superuser in the payload is a no-op")
	require.NotNil(t, persisted)
	assert.False(t, persisted.IsStaff())
}

func TestAccountUseCase_Update_RehashesPassword(t *testing.T) {
	email, _ := account.NewEmail("guest@example.com")
	acc := account.NewAccount(email, "Ana", "Garcia", "oldhash", account.TierUser)

	repo := new(accountRepoMock)
	repo.On("FindByID", mock.Anything, acc.ID()).Return(acc, nil)

	var persisted *account.Account
	repo.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { persisted = args.Get(1).(*account.Account) }).
		Return(nil)

	newPassword := "newsecret42"
	uc := NewAccountUseCase(repo)
	_, err := uc.Update(context.Background(), acc.ID(), reqdto.UpdateAccountRequest{Password: &newPassword})

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.NotEqual(t, "oldhash", persisted.PasswordHash())
	assert.NotEqual(t, newPassword, persisted.PasswordHash(), "plaintext is never stored")
}

func TestAccountUseCase_ActivateDeactivate(t *testing.T) {
	email, _ := account.NewEmail("guest@example.com")
	acc := account.NewAccount(email, "Ana", "Garcia", "hash", account.TierUser)

	repo := new(accountRepoMock)
	repo.On("FindByID", mock.Anything, acc.ID()).Return(acc, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	uc := NewAccountUseCase(repo)

	rm, err := uc.Activate(context.Background(), acc.ID())
	require.NoError(t, err)
	assert.True(t, rm.IsActive)

	rm, err = uc.Deactivate(context.Background(), acc.ID())
	require.NoError(t, err)
	assert.False(t, rm.IsActive)
}

func TestAccountUseCase_MissingTarget(t *testing.T) {
	repo := new(accountRepoMock)
	uc := NewAccountUseCase(repo)

	_, err := uc.Get(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, errs.ErrMissingTarget)

	err = uc.DeletePhysical(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, errs.ErrMissingTarget)
}

func TestAccountUseCase_Get_NotFound(t *testing.T) {
	id := uuid.New()
	repo := new(accountRepoMock)
	repo.On("FindByID", mock.Anything, id).
		Return(nil, infra.WrapRepoErr("account not found", nil, infra.KindNotFound))

	uc := NewAccountUseCase(repo)
	_, err := uc.Get(context.Background(), id)

	assert.ErrorIs(t, err, errs.ErrNotFound)
}
