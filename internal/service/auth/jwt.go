// Package auth provides JWT token issuance/validation and password hashing
// for the HTTP transport layer. The services below it never see credentials;
// they receive an already-authenticated user ID.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/phrazzld/nihongo-api/internal/config"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed access token for the user.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken validates a token string and returns the user ID it was
	// issued for. Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (int64, error)
}

// hmacJWTService implements JWTService with HMAC-SHA256 signing.
type hmacJWTService struct {
	secret   []byte
	lifetime time.Duration
	clock    func() time.Time
}

// NewJWTService creates a JWTService from the auth configuration.
func NewJWTService(cfg config.AuthConfig) (JWTService, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, errors.New("jwt secret must be at least 32 characters")
	}
	if cfg.TokenLifetimeHours <= 0 {
		return nil, errors.New("token lifetime must be positive")
	}

	return &hmacJWTService{
		secret:   []byte(cfg.JWTSecret),
		lifetime: time.Duration(cfg.TokenLifetimeHours) * time.Hour,
		clock:    time.Now,
	}, nil
}

// GenerateToken implements JWTService.GenerateToken.
func (s *hmacJWTService) GenerateToken(ctx context.Context, userID int64) (string, error) {
	if userID <= 0 {
		return "", errors.New("user ID must be positive")
	}

	now := s.clock().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ValidateToken implements JWTService.ValidateToken.
func (s *hmacJWTService) ValidateToken(ctx context.Context, tokenString string) (int64, error) {
	if tokenString == "" {
		return 0, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(func() time.Time { return s.clock() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: malformed subject claim", ErrInvalidToken)
	}
	return userID, nil
}
