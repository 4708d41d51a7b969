package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/otpgate/otpgate/internal/pkg/goerror"
	"github.com/otpgate/otpgate/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshSession(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingAuthorization", func(t *testing.T) {
		uc := newTestUsecase(t, nil)

		_, err := uc.RefreshSession(ctx, RefreshSessionInput{})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Authorization is required", gerr.Msg())
		assert.Equal(t, http.StatusUnauthorized, gerr.StatusCode())
	})

	t.Run("MalformedAuthorization", func(t *testing.T) {
		uc := newTestUsecase(t, nil)

		for _, header := range []string{"token-only", "Bearer a b"} {
			_, err := uc.RefreshSession(ctx, RefreshSessionInput{Authorization: header})

			var gerr *goerror.Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, "Invalid Authorization", gerr.Msg())
			assert.Equal(t, http.StatusUnauthorized, gerr.StatusCode())
		}
	})

	t.Run("RejectedToken", func(t *testing.T) {
		uc := newTestUsecase(t, func(dep *Dependency) {
			dep.JWT.(*fakeJWT).verifyFn = func(string) (jwt.Claims, error) {
				return jwt.Claims{}, jwt.ErrTokenExpired
			}
		})

		_, err := uc.RefreshSession(ctx, RefreshSessionInput{Authorization: "Bearer stale-token"})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, jwt.ErrTokenExpired.Error(), gerr.Msg())
		assert.Equal(t, http.StatusUnauthorized, gerr.StatusCode())
	})

	t.Run("Success", func(t *testing.T) {
		uc := newTestUsecase(t, func(dep *Dependency) {
			dep.JWT.(*fakeJWT).verifyFn = func(tokenStr string) (jwt.Claims, error) {
				assert.Equal(t, "good-token", tokenStr)
				return jwt.Claims{ContactNumber: "628111111111", Name: "Alice"}, nil
			}
			dep.Provider.(*fakeProvider).exchangeCredentialFn = func(_ context.Context, contactNumber, name string) (string, error) {
				assert.Equal(t, "628111111111", contactNumber)
				assert.Equal(t, "Alice", name)
				return "provider-token", nil
			}
		})

		out, err := uc.RefreshSession(ctx, RefreshSessionInput{Authorization: "Bearer good-token"})

		require.NoError(t, err)
		assert.Equal(t, "provider-token", out.ProviderToken)
	})
}
