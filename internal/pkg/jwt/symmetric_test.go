package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/otpgate/otpgate/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticUUID struct{}

func (staticUUID) Generate() string { return "00000000-0000-0000-0000-000000000000" }

var testSecret = []byte(strings.Repeat("s", 64))

func newTestJWT(t *testing.T, now time.Time) *Symmetric {
	t.Helper()

	s, err := NewHS512(Config{
		Secret:    testSecret,
		Issuer:    "otpgate",
		Audiences: []string{"otpgate-web"},
		TTL:       time.Hour,
		Clock:     &clock.Static{T: now},
		UUID:      staticUUID{},
	})
	require.NoError(t, err)

	return s
}

func TestNewHS512(t *testing.T) {
	t.Run("SecretTooShort", func(t *testing.T) {
		_, err := NewHS512(Config{Secret: []byte("short")})

		assert.ErrorIs(t, err, ErrSigningKeyTooShort)
	})
}

func TestSymmetric(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	t.Run("RoundTrip", func(t *testing.T) {
		s := newTestJWT(t, now)

		token, err := s.Generate("628111111111", "Alice")
		require.NoError(t, err)

		claims, err := s.Verify(token)
		require.NoError(t, err)

		assert.Equal(t, "628111111111", claims.ContactNumber)
		assert.Equal(t, "Alice", claims.Name)
		assert.Equal(t, "628111111111", claims.Subject)
		assert.Equal(t, "otpgate", claims.Issuer)
		assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := newTestJWT(t, now).Generate("628111111111", "Alice")
		require.NoError(t, err)

		_, err = newTestJWT(t, now.Add(2*time.Hour)).Verify(token)

		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("TamperedSignature", func(t *testing.T) {
		s := newTestJWT(t, now)

		token, err := s.Generate("628111111111", "Alice")
		require.NoError(t, err)

		_, err = s.Verify(token[:len(token)-2] + "xx")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := newTestJWT(t, now).Verify("not.a.token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
