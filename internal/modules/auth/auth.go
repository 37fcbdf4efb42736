package auth

import (
	"context"
	"errors"
)

// ErrInvalidPIN is returned when the cashier PIN does not match.
var ErrInvalidPIN = errors.New("auth: invalid PIN")

// Service defines the terminal's authentication logic.
type Service interface {
	// EnsurePIN seeds the stored hash from the configured PIN on first run.
	EnsurePIN(ctx context.Context, defaultPIN string) error

	// Login checks the cashier PIN and returns a signed session token.
	Login(ctx context.Context, pin string) (string, error)
}

// Repository persists the cashier's PIN hash.
type Repository interface {
	GetPINHash(ctx context.Context) (string, error)
	SetPINHash(ctx context.Context, hash string) error
}
