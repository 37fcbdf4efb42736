package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/nujoom-retail/pos-backend/internal/kvstore"
)

type service struct {
	repo   Repository
	secret []byte
}

// NewService creates a new auth service signing tokens with secret.
func NewService(repo Repository, secret string) Service {
	return &service{repo: repo, secret: []byte(secret)}
}

func (s *service) EnsurePIN(ctx context.Context, defaultPIN string) error {
	_, err := s.repo.GetPINHash(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, kvstore.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPIN), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.SetPINHash(ctx, string(hash))
}

func (s *service) Login(ctx context.Context, pin string) (string, error) {
	hash, err := s.repo.GetPINHash(ctx)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)); err != nil {
		return "", ErrInvalidPIN
	}

	expirationTime := time.Now().Add(12 * time.Hour)
	claims := &jwt.StandardClaims{
		Subject:   "cashier",
		ExpiresAt: expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
