package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imobops/backoffice/internal/model"
)

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseValidToken(t *testing.T) {
	userID := uuid.New()
	claims := Claims{
		Email: "ana@imobops.com.br",
		Role:  string(model.RoleManager),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	parser := NewParser("secret")
	principal, err := parser.Parse(signToken(t, "secret", claims))
	require.NoError(t, err)

	assert.Equal(t, userID, principal.UserID)
	assert.Equal(t, "ana@imobops.com.br", principal.Email)
	assert.True(t, principal.IsManager())
}

func TestParseRejectsWrongSecret(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	parser := NewParser("secret")
	_, err := parser.Parse(signToken(t, "other-secret", claims))
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}

	parser := NewParser("secret")
	_, err := parser.Parse(signToken(t, "secret", claims))
	assert.Error(t, err)
}

func TestParseRejectsBadSubject(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	parser := NewParser("secret")
	_, err := parser.Parse(signToken(t, "secret", claims))
	assert.Error(t, err)
}
