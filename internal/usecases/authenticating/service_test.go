package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fiscal-metrics-api/internal/config"
	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
)

func newAuthenticator(secret string) Authenticator {
	return NewService(&config.Config{Auth: config.Auth{Secret: secret, Enabled: true}})
}

func TestService_GenerateAndValidate(t *testing.T) {
	auth := newAuthenticator("segredo")

	token, err := auth.GenerateToken("ana@exemplo.com", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "ana@exemplo.com", claims.Subject)
	assert.True(t, auth.Enabled())
}

func TestService_ValidateToken_Errors(t *testing.T) {
	auth := newAuthenticator("segredo")

	t.Run("token expirado", func(t *testing.T) {
		token, err := auth.GenerateToken("ana", domain.RoleViewer, -time.Minute)
		require.NoError(t, err)

		_, err = auth.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("assinado com outro segredo", func(t *testing.T) {
		token, err := newAuthenticator("outro").GenerateToken("ana", domain.RoleViewer, time.Hour)
		require.NoError(t, err)

		_, err = auth.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("papel desconhecido", func(t *testing.T) {
		claims := domain.Claims{
			Role: "owner",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("segredo"))
		require.NoError(t, err)

		_, err = auth.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("texto qualquer", func(t *testing.T) {
		_, err := auth.ValidateToken("abc.def")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_GenerateToken_Errors(t *testing.T) {
	_, err := newAuthenticator("").GenerateToken("ana", domain.RoleViewer, time.Hour)
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = newAuthenticator("segredo").GenerateToken("ana", "owner", time.Hour)
	assert.ErrorIs(t, err, ErrInvalidRole)
}
