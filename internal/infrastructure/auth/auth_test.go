package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saradorri/rewardwallet/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "s3cret", Expiry: time.Hour})

	token, err := svc.GenerateToken(7, "player@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "player@example.com", claims.Email)
	assert.Equal(t, "7", claims.Subject)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "s3cret", Expiry: time.Hour})
	other := NewJWTService(&config.JWTConfig{Secret: "other", Expiry: time.Hour})

	foreign, err := other.GenerateToken(7, "player@example.com")
	require.NoError(t, err)

	expiredSvc := &jwtService{
		config: &config.JWTConfig{Secret: "s3cret", Expiry: time.Minute},
		now:    func() time.Time { return time.Now().Add(-time.Hour) },
	}
	expired, err := expiredSvc.GenerateToken(7, "player@example.com")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 7})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong_secret", token: foreign},
		{name: "expired", token: expired},
		{name: "none_alg", token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)

	assert.True(t, h.Verify(hash, "123456"))
	assert.False(t, h.Verify(hash, "654321"))
	assert.False(t, h.Verify("not-a-hash", "123456"))
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(bcrypt.MinCost).cost)
}
