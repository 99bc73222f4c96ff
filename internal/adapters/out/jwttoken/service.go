// Package jwttoken signs and verifies HS256 bearer tokens whose subject is
// a user ID. Roles are not carried in the token; they are looked up on
// every request.
package jwttoken

import (
	"context"
	"errors"
	"time"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSecretIsRequired = errors.New("token secret is required")
	ErrSubjectIsMissing = errors.New("token has no subject")
)

var (
	_ ports.TokenVerifier = (*Service)(nil)
	_ ports.TokenIssuer   = (*Service)(nil)
)

type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewService returns a Service. A zero ttl issues tokens without expiry.
func NewService(secret, issuer string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	return &Service{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (s *Service) Sign(_ context.Context, userID kernel.UUID) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) Verify(_ context.Context, token string) (kernel.UUID, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		options = append(options, jwt.WithIssuer(s.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, options...)
	if err != nil {
		return kernel.UUID{}, err
	}
	if !parsed.Valid {
		return kernel.UUID{}, jwt.ErrSignatureInvalid
	}
	if claims.Subject == "" {
		return kernel.UUID{}, ErrSubjectIsMissing
	}

	return kernel.UUIDFromString(claims.Subject)
}
