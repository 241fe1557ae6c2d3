package usecase

import (
	authdomain "fizzy-backend/internal/auth/domain"
	authdto "fizzy-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication and tenancy
type AuthUsecase interface {
	// Register creates a new account (tenant) together with its admin user
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)

	// Join adds a user to an existing account via its join code
	Join(req *authdto.JoinRequest) (*authdto.TokenResponse, error)

	// Login authenticates an existing user
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// RefreshToken exchanges a valid refresh token for a new token pair
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)

	// Logout revokes a refresh token
	Logout(refreshToken string) error

	// ValidateToken parses an access token and loads its user
	ValidateToken(tokenString string) (*authdomain.User, error)
}
