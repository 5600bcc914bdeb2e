package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tumpangan/liveride/internal/pkg/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "liveride-test",
	}
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, "driver", cfg)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(tokenString, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "driver", (*claims)["role"])
	assert.Equal(t, cfg.Issuer, (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := models.JWTConfig{Secret: "right-secret", Expiration: 60}

	tokenString, _, err := GenerateToken(uuid.New(), "passenger", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "wrong-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Expiration: -1}

	tokenString, _, err := GenerateToken(uuid.New(), "driver", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, cfg.Secret)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
