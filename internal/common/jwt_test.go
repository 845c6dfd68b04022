package common

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIdentity = Identity{ID: "5b9c1f7e-0000-4000-8000-000000000001", Username: "testUser", AvatarURL: "https://avatar.iran.liara.run/public"}

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, err := m.GenerateToken(testIdentity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidToken(token)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, claims.Identity())
	assert.Equal(t, "vidshare", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
}

func TestJWTManager_MissingSecret(t *testing.T) {
	m := NewJWTManager("", time.Hour)
	assert.ErrorIs(t, m.Ready(), ErrMissingSecret)
	assert.NoError(t, NewJWTManager("s", time.Hour).Ready())

	_, err := m.GenerateToken(testIdentity)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = m.ValidToken("anything")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("one", time.Hour).GenerateToken(testIdentity)
	require.NoError(t, err)

	_, err = NewJWTManager("two", time.Hour).ValidToken(token)
	assert.Error(t, err)
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := m.GenerateToken(testIdentity)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTManager_NoTTLHasNoExpiry(t *testing.T) {
	m := NewJWTManager("secret", 0)
	token, err := m.GenerateToken(testIdentity)
	require.NoError(t, err)

	claims, err := m.ValidToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestJWTManager_RejectsNonHMAC(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "x"})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTManager("secret", time.Hour).ValidToken(raw)
	assert.Error(t, err)
}

func TestJWTManager_RejectsMissingUserID(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	token, err := m.GenerateToken(Identity{Username: "nobody"})
	require.NoError(t, err)

	_, err = m.ValidToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
