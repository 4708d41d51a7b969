package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/otpgate/otpgate/internal/auth/entity"
	"github.com/otpgate/otpgate/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestOtp(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingFields", func(t *testing.T) {
		uc := newTestUsecase(t, nil)

		err := uc.RequestOtp(ctx, RequestOtpInput{})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Contact Number, Name is required", gerr.Msg())
		assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
	})

	t.Run("NonNumericContactNumber", func(t *testing.T) {
		uc := newTestUsecase(t, nil)

		err := uc.RequestOtp(ctx, RequestOtpInput{ContactNumber: "not-a-number", Name: "Alice"})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Contact Number, Name is required", gerr.Msg())
	})

	t.Run("StoreFailure", func(t *testing.T) {
		uc := newTestUsecase(t, nil)

		err := uc.RequestOtp(ctx, RequestOtpInput{ContactNumber: "628111111111", Name: "Alice"})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, http.StatusInternalServerError, gerr.StatusCode())
	})

	t.Run("StoresCodeWithTTL", func(t *testing.T) {
		var stored entity.OtpRecord
		var storedTTL time.Duration

		uc := newTestUsecase(t, func(dep *Dependency) {
			dep.RepoCache.(*fakeCache).storeOtpFn = func(_ context.Context, rec entity.OtpRecord, ttl time.Duration) error {
				stored = rec
				storedTTL = ttl
				return nil
			}
		})

		err := uc.RequestOtp(ctx, RequestOtpInput{ContactNumber: "628111111111", Name: "Alice"})
		require.NoError(t, err)

		assert.Equal(t, "628111111111", stored.ContactNumber)
		assert.Equal(t, "abc123def4", stored.Code)
		assert.True(t, testNow.Equal(stored.IssuedAt))
		assert.Equal(t, 15*time.Minute, storedTTL)
	})

	t.Run("DeliversCodeInBackground", func(t *testing.T) {
		var gotToken, gotContact, gotMessage string

		uc := newTestUsecase(t, func(dep *Dependency) {
			dep.RepoCache.(*fakeCache).storeOtpFn = func(context.Context, entity.OtpRecord, time.Duration) error {
				return nil
			}
			dep.RepoCache.(*fakeCache).getAdminCredentialFn = func(context.Context) (string, error) {
				return "admin-token", nil
			}
			dep.Provider.(*fakeProvider).sendTextFn = func(_ context.Context, token, contact, message string) error {
				gotToken = token
				gotContact = contact
				gotMessage = message
				return nil
			}
		})

		require.NoError(t, uc.RequestOtp(ctx, RequestOtpInput{ContactNumber: "628111111111", Name: "Alice"}))
		require.NoError(t, uc.goroutine.Wait())

		assert.Equal(t, "admin-token", gotToken)
		assert.Equal(t, "628111111111", gotContact)
		assert.Equal(t, "Hello Alice, your login code is abc123def4.", gotMessage)
	})

	t.Run("SucceedsWhenDeliveryFails", func(t *testing.T) {
		uc := newTestUsecase(t, func(dep *Dependency) {
			dep.RepoCache.(*fakeCache).storeOtpFn = func(context.Context, entity.OtpRecord, time.Duration) error {
				return nil
			}
			// Admin credential fetch, exchange, and send all fail; none of
			// it should surface to the caller.
		})

		err := uc.RequestOtp(ctx, RequestOtpInput{ContactNumber: "628111111111", Name: "Alice"})
		require.NoError(t, err)

		assert.NoError(t, uc.goroutine.Wait())
	})
}
