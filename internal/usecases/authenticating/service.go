package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/fiscal-metrics-api/internal/config"
	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
)

type Authenticator interface {
	// Enabled indica se as requisições precisam de bearer token
	Enabled() bool
	GenerateToken(subject, role string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret  []byte
	enabled bool
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret:  []byte(cfg.Auth.Secret),
		enabled: cfg.Auth.Enabled,
	}
}

func (s *Service) Enabled() bool {
	return s.enabled
}

func validRole(role string) bool {
	return role == domain.RoleViewer || role == domain.RoleAdmin
}

// GenerateToken assina um token HS256 para o dashboard
func (s *Service) GenerateToken(subject, role string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingKey
	}
	if !validRole(role) {
		return "", fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	now := time.Now()
	claims := domain.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !validRole(claims.Role) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, claims.Role)
	}

	return claims, nil
}
