package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlgate/pkg/apperr"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", "HS256", 30*time.Minute)

	signed, expiresIn, err := issuer.Issue("0812345678")
	require.NoError(t, err)
	assert.Equal(t, int64(1800), expiresIn)

	phone, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "0812345678", phone)
}

func TestIssueSetsExpiry(t *testing.T) {
	issuer := NewIssuer("test-secret", "HS256", 10*time.Minute)
	before := time.Now()

	signed, _, err := issuer.Issue("0812345678")
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	expected := before.Add(10 * time.Minute)
	assert.WithinDuration(t, expected, claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyRejectsExpired(t *testing.T) {
	issuer := NewIssuer("test-secret", "HS256", -1*time.Minute)

	signed, _, err := issuer.Issue("0812345678")
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidCredential))
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer("test-secret", "HS256", 30*time.Minute)
	other := NewIssuer("other-secret", "HS256", 30*time.Minute)

	signed, _, err := issuer.Issue("0812345678")
	require.NoError(t, err)

	_, err = other.Verify(signed)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidCredential))
}

func TestVerifyRejectsMalformed(t *testing.T) {
	issuer := NewIssuer("test-secret", "HS256", 30*time.Minute)

	_, err := issuer.Verify("not-a-token")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidCredential))
}

func TestVerifyHeader(t *testing.T) {
	issuer := NewIssuer("test-secret", "HS256", 30*time.Minute)
	signed, _, err := issuer.Issue("0812345678")
	require.NoError(t, err)

	t.Run("bearer scheme", func(t *testing.T) {
		phone, err := issuer.VerifyHeader("Bearer " + signed)
		require.NoError(t, err)
		assert.Equal(t, "0812345678", phone)
	})

	t.Run("bare token", func(t *testing.T) {
		phone, err := issuer.VerifyHeader(signed)
		require.NoError(t, err)
		assert.Equal(t, "0812345678", phone)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := issuer.VerifyHeader("")
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindCredentialRequired))
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := issuer.VerifyHeader("Bearer garbage")
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidCredential))
	})
}

func TestFromAuthorizationHeader(t *testing.T) {
	assert.Equal(t, "abc", FromAuthorizationHeader("Bearer abc"))
	assert.Equal(t, "abc", FromAuthorizationHeader("abc"))
	assert.Equal(t, "", FromAuthorizationHeader("  "))
}
