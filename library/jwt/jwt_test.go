package jwt

import (
	"testing"
	"time"

	jwtLib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	j, err := New([]byte("test-secret"))
	require.NoError(t, err)

	raw, err := j.Sign(&AdminClaims{
		RegisteredClaims: jwtLib.RegisteredClaims{
			Subject:  "65f000000000000000000001",
			IssuedAt: jwtLib.NewNumericDate(time.Now().UTC()),
		},
		Email: "editor@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := j.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "65f000000000000000000001", claims.Subject)
	require.Equal(t, "editor@example.com", claims.Email)
}

// TestVerifyNoExpiration ensures tokens issued without exp stay valid.
func TestVerifyNoExpiration(t *testing.T) {
	j, err := New([]byte("test-secret"))
	require.NoError(t, err)

	raw, err := j.Sign(&AdminClaims{
		RegisteredClaims: jwtLib.RegisteredClaims{Subject: "id"},
		Email:            "a@b.c",
	})
	require.NoError(t, err)

	_, err = j.Verify(raw)
	require.NoError(t, err)
}

// TestVerifyExpired ensures an exp in the past is rejected when present.
func TestVerifyExpired(t *testing.T) {
	j, err := New([]byte("test-secret"))
	require.NoError(t, err)

	raw, err := j.Sign(&AdminClaims{
		RegisteredClaims: jwtLib.RegisteredClaims{
			Subject:   "id",
			ExpiresAt: jwtLib.NewNumericDate(time.Now().UTC().Add(-time.Hour)),
		},
	})
	require.NoError(t, err)

	_, err = j.Verify(raw)
	require.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	j1, err := New([]byte("secret-one"))
	require.NoError(t, err)
	j2, err := New([]byte("secret-two"))
	require.NoError(t, err)

	raw, err := j1.Sign(&AdminClaims{Email: "a@b.c"})
	require.NoError(t, err)

	_, err = j2.Verify(raw)
	require.Error(t, err)
}

func TestVerifyMalformed(t *testing.T) {
	j, err := New([]byte("test-secret"))
	require.NoError(t, err)

	_, err = j.Verify("not-a-token")
	require.Error(t, err)
}

func TestNewEmptySecret(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}
