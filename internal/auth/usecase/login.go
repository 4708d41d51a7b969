package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"

	"github.com/otpgate/otpgate/internal/auth/entity"
	"github.com/otpgate/otpgate/internal/pkg/goerror"
)

// LoginInput carries the identity and the code submitted to complete login.
type LoginInput struct {
	ContactNumber string `validate:"required,contactnumber"`
	Name          string `validate:"required"`
	Otp           string `validate:"required"`
}

// LoginOutput carries the provider credential and the gateway session token.
type LoginOutput struct {
	ProviderToken string
	SessionToken  string
}

// Login validates the submitted passcode, exchanges the identity with the
// provider, and mints a session token so subsequent refreshes skip the OTP
// step.
//
// Field validation happens before any store or provider access. A missing or
// expired record reads as "OTP Expired", a mismatched code as "OTP Invalid".
// The stored code is not invalidated on success; it stays usable until its
// TTL elapses.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidFormat("Contact Number, Name, OTP is required")
	}

	rec, err := s.repoCache.GetOtp(ctx, in.ContactNumber)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "otp record absent or expired", "contact_number", in.ContactNumber)
		return nil, goerror.NewBusiness("OTP Expired", goerror.CodeOTPRejected)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to read otp record", "contact_number", in.ContactNumber, "error", err)
		return nil, goerror.NewServer(err)
	}

	if subtle.ConstantTimeCompare([]byte(rec.Code), []byte(in.Otp)) != 1 {
		slog.WarnContext(ctx, "otp code mismatch", "contact_number", in.ContactNumber)
		return nil, goerror.NewBusiness("OTP Invalid", goerror.CodeOTPRejected)
	}

	providerToken, err := s.provider.ExchangeCredential(ctx, in.ContactNumber, in.Name)
	if err != nil {
		return nil, s.providerError(ctx, err)
	}

	sessionToken, err := s.jwt.Generate(in.ContactNumber, in.Name)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate session token", "contact_number", in.ContactNumber, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{
		ProviderToken: providerToken,
		SessionToken:  sessionToken,
	}, nil
}

// providerError maps a provider client failure to the client-facing error,
// passing the upstream status and title through verbatim.
func (s *Usecase) providerError(ctx context.Context, err error) error {
	var perr *entity.ProviderError
	if errors.As(err, &perr) {
		slog.WarnContext(ctx, "provider rejected credential exchange", "status", perr.Status, "title", perr.Title)
		return goerror.NewProvider(perr.Status, perr.Title)
	}

	slog.ErrorContext(ctx, "failed to reach provider", "error", err)
	return goerror.NewServer(err)
}
