package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTService(t *testing.T) {
	svc := NewJWTService("secret", "", 15*time.Minute)

	assert.NotNil(t, svc)
}

func TestJWTService_GenerateToken(t *testing.T) {
	svc := NewJWTService("test-secret", "", 15*time.Minute)

	token, err := svc.GenerateToken("user_123", "test@example.com")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestJWTService_GenerateToken_RequiresSubject(t *testing.T) {
	svc := NewJWTService("test-secret", "", 15*time.Minute)

	_, err := svc.GenerateToken("", "test@example.com")

	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Valid(t *testing.T) {
	svc := NewJWTService("test-secret", "https://clerk.example.com", 15*time.Minute)

	token, err := svc.GenerateToken("user_123", "test@example.com")
	require.NoError(t, err)

	caller, err := svc.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, "user_123", caller.Subject)
	assert.Equal(t, "test@example.com", caller.Email)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc1 := NewJWTService("secret-1", "", 15*time.Minute)
	svc2 := NewJWTService("secret-2", "", 15*time.Minute)

	token, err := svc1.GenerateToken("user_123", "test@example.com")
	require.NoError(t, err)

	_, err = svc2.ValidateToken(token)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_ValidateToken_WrongIssuer(t *testing.T) {
	issuer := NewJWTService("test-secret", "https://other.example.com", 15*time.Minute)
	verifier := NewJWTService("test-secret", "https://clerk.example.com", 15*time.Minute)

	token, err := issuer.GenerateToken("user_123", "")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)

	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", "", 15*time.Minute)

	past := time.Now().Add(-time.Hour)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
			Subject:   "user_123",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_ValidateToken_NoExpiry(t *testing.T) {
	svc := NewJWTService("test-secret", "", 15*time.Minute)

	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user_123"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)

	assert.Error(t, err)
}

func TestJWTService_ValidateToken_NoSubject(t *testing.T) {
	svc := NewJWTService("test-secret", "", 15*time.Minute)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no subject")
}

func TestJWTService_ValidateToken_MalformedToken(t *testing.T) {
	svc := NewJWTService("test-secret", "", 15*time.Minute)

	testCases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt-token"},
		{"partial jwt", "eyJhbGciOiJIUzI1NiJ9."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tc.token)
			assert.Error(t, err)
		})
	}
}
