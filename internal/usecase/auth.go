package usecase

import (
	"context"
	"errors"

	"hotel-booking/internal/domain/account"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAccountInactive      = errors.New("account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (jwt.TokenPair, *readmodel.AccountRM, error)
	Refresh(ctx context.Context, refreshToken string) (jwt.TokenPair, error)
	GetCurrentUser(ctx context.Context, accountID uuid.UUID) (*readmodel.AccountRM, error)
	ValidateAccessToken(tokenString string) (*jwt.Claims, error)
}

type authUseCaseImpl struct {
	accountRepo AccountRepository
	jwtService  *jwt.Service
	clock       clock.Clock
}

func NewAuthUseCase(accountRepo AccountRepository, jwtService *jwt.Service, clock clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		accountRepo: accountRepo,
		jwtService:  jwtService,
		clock:       clock,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (jwt.TokenPair, *readmodel.AccountRM, error) {
	acc, err := a.validateAccount(ctx, email, plainPassword)
	if err != nil {
		return jwt.TokenPair{}, nil, err
	}

	pair, err := a.jwtService.GenerateTokenPair(acc.ID(), acc.IsStaff(), acc.IsSuperuser())
	if err != nil {
		return jwt.TokenPair{}, nil, ErrTokenGeneration
	}

	if err := a.accountRepo.UpdateLastLogin(ctx, acc.ID(), a.clock.Now()); err != nil {
		return jwt.TokenPair{}, nil, err
	}

	return pair, readmodel.NewAccountRM(acc), nil
}

func (a *authUseCaseImpl) validateAccount(ctx context.Context, email, plainPassword string) (*account.Account, error) {
	addr, err := account.NewEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	acc, err := a.accountRepo.FindByEmail(ctx, addr)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !acc.IsActive() {
		return nil, ErrAccountInactive
	}

	if err := password.Compare(acc.PasswordHash(), plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	return acc, nil
}

// Refresh re-checks the account before minting new tokens: a deactivated or
// deleted account cannot extend its session.
func (a *authUseCaseImpl) Refresh(ctx context.Context, refreshToken string) (jwt.TokenPair, error) {
	claims, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return jwt.TokenPair{}, ErrTokenValidation
	}

	acc, err := a.accountRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return jwt.TokenPair{}, ErrAuthenticationFailed
	}

	if !acc.IsActive() {
		return jwt.TokenPair{}, ErrAccountInactive
	}

	pair, err := a.jwtService.GenerateTokenPair(acc.ID(), acc.IsStaff(), acc.IsSuperuser())
	if err != nil {
		return jwt.TokenPair{}, ErrTokenGeneration
	}

	return pair, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, accountID uuid.UUID) (*readmodel.AccountRM, error) {
	acc, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	if !acc.IsActive() {
		return nil, ErrAccountInactive
	}

	return readmodel.NewAccountRM(acc), nil
}

func (a *authUseCaseImpl) ValidateAccessToken(tokenString string) (*jwt.Claims, error) {
	claims, err := a.jwtService.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, ErrTokenValidation
	}
	return claims, nil
}
