package usecase

import (
	"context"
	"time"

	"github.com/otpgate/otpgate/internal/auth/entity"
	"github.com/otpgate/otpgate/internal/pkg/clock"
	"github.com/otpgate/otpgate/internal/pkg/config"
	"github.com/otpgate/otpgate/internal/pkg/goroutine"
	"github.com/otpgate/otpgate/internal/pkg/instrument"
	"github.com/otpgate/otpgate/internal/pkg/jwt"
	"github.com/otpgate/otpgate/internal/pkg/otp"
	"github.com/otpgate/otpgate/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoCache interface {
	StoreOtp(ctx context.Context, rec entity.OtpRecord, ttl time.Duration) error
	GetOtp(ctx context.Context, contactNumber string) (*entity.OtpRecord, error)
	StoreAdminCredential(ctx context.Context, token string, ttl time.Duration) error
	GetAdminCredential(ctx context.Context) (string, error)
}

type providerClient interface {
	ExchangeCredential(ctx context.Context, contactNumber, name string) (string, error)
	SendText(ctx context.Context, accessToken, contactNumber, message string) error
}

// Usecase implements the OTP login, session refresh, and delivery workflows.
type Usecase struct {
	repoCache repoCache
	provider  providerClient
	validator validator.Validator
	cfg       config.Config
	otp       otp.Generator
	clock     clock.Clocker
	jwt       jwt.JWT
	ins       instrument.Instrumentation
	goroutine *goroutine.Manager
}

// Dependency lists everything a Usecase needs.
type Dependency struct {
	RepoCache  repoCache
	Provider   providerClient
	Validator  validator.Validator
	Config     config.Config
	OTP        otp.Generator
	Clock      clock.Clocker
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
	Goroutine  *goroutine.Manager
}

// New constructs the auth Usecase.
func New(dep Dependency) *Usecase {
	return &Usecase{
		repoCache: dep.RepoCache,
		provider:  dep.Provider,
		validator: dep.Validator,
		cfg:       dep.Config,
		otp:       dep.OTP,
		clock:     dep.Clock,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
		goroutine: dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}
