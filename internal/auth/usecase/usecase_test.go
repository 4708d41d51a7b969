package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/otpgate/otpgate/internal/auth/entity"
	"github.com/otpgate/otpgate/internal/pkg/clock"
	"github.com/otpgate/otpgate/internal/pkg/config"
	"github.com/otpgate/otpgate/internal/pkg/goroutine"
	"github.com/otpgate/otpgate/internal/pkg/instrument"
	"github.com/otpgate/otpgate/internal/pkg/jwt"
	"github.com/otpgate/otpgate/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
provider:
  admin:
    contact_number: "628000000000"
    name: "Admin"
modules:
  auth:
    otp_ttl_minutes: 15
    admin_credential_ttl_minutes: 15
    delivery_template: "Hello %s, your login code is %s."
`

var testNow = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

type fakeCache struct {
	storeOtpFn             func(ctx context.Context, rec entity.OtpRecord, ttl time.Duration) error
	getOtpFn               func(ctx context.Context, contactNumber string) (*entity.OtpRecord, error)
	storeAdminCredentialFn func(ctx context.Context, token string, ttl time.Duration) error
	getAdminCredentialFn   func(ctx context.Context) (string, error)
}

func (f *fakeCache) StoreOtp(ctx context.Context, rec entity.OtpRecord, ttl time.Duration) error {
	return f.storeOtpFn(ctx, rec, ttl)
}

func (f *fakeCache) GetOtp(ctx context.Context, contactNumber string) (*entity.OtpRecord, error) {
	return f.getOtpFn(ctx, contactNumber)
}

func (f *fakeCache) StoreAdminCredential(ctx context.Context, token string, ttl time.Duration) error {
	return f.storeAdminCredentialFn(ctx, token, ttl)
}

func (f *fakeCache) GetAdminCredential(ctx context.Context) (string, error) {
	return f.getAdminCredentialFn(ctx)
}

type fakeProvider struct {
	exchangeCredentialFn func(ctx context.Context, contactNumber, name string) (string, error)
	sendTextFn           func(ctx context.Context, accessToken, contactNumber, message string) error
}

func (f *fakeProvider) ExchangeCredential(ctx context.Context, contactNumber, name string) (string, error) {
	return f.exchangeCredentialFn(ctx, contactNumber, name)
}

func (f *fakeProvider) SendText(ctx context.Context, accessToken, contactNumber, message string) error {
	return f.sendTextFn(ctx, accessToken, contactNumber, message)
}

type fakeOTP struct {
	code string
}

func (f fakeOTP) Generate(string) string { return f.code }

type fakeJWT struct {
	generateFn func(contactNumber, name string) (string, error)
	verifyFn   func(tokenStr string) (jwt.Claims, error)
}

func (f *fakeJWT) Generate(contactNumber, name string) (string, error) {
	return f.generateFn(contactNumber, name)
}

func (f *fakeJWT) Verify(tokenStr string) (jwt.Claims, error) {
	return f.verifyFn(tokenStr)
}

var errBoom = errors.New("boom")

// newTestUsecase builds a Usecase on top of failing-by-default fakes; tests
// override only the collaborators they exercise.
func newTestUsecase(t *testing.T, mutate func(dep *Dependency)) *Usecase {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	require.NoError(t, err)

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	dep := Dependency{
		RepoCache: &fakeCache{
			storeOtpFn: func(context.Context, entity.OtpRecord, time.Duration) error {
				return errBoom
			},
			getOtpFn: func(context.Context, string) (*entity.OtpRecord, error) {
				return nil, errBoom
			},
			storeAdminCredentialFn: func(context.Context, string, time.Duration) error {
				return errBoom
			},
			getAdminCredentialFn: func(context.Context) (string, error) {
				return "", errBoom
			},
		},
		Provider: &fakeProvider{
			exchangeCredentialFn: func(context.Context, string, string) (string, error) {
				return "", errBoom
			},
			sendTextFn: func(context.Context, string, string, string) error {
				return errBoom
			},
		},
		Validator:  v10,
		Config:     cfg,
		OTP:        fakeOTP{code: "abc123def4"},
		Clock:      &clock.Static{T: testNow},
		JWT: &fakeJWT{
			generateFn: func(string, string) (string, error) { return "", errBoom },
			verifyFn:   func(string) (jwt.Claims, error) { return jwt.Claims{}, errBoom },
		},
		Instrument: instrument.NewNoop(),
		Goroutine:  goroutine.NewManager(4),
	}

	if mutate != nil {
		mutate(&dep)
	}

	return New(dep)
}
