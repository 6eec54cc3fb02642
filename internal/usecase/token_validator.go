package usecase

import "hotel-booking/internal/pkg/jwt"

// TokenValidator is the narrow slice of AuthUseCase the auth middleware needs.
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (*jwt.Claims, error)
}

func NewTokenValidator(authUseCase AuthUseCase) TokenValidator {
	return authUseCase
}
