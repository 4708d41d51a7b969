package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/otpgate/otpgate/internal/auth/entity"
	"github.com/otpgate/otpgate/internal/pkg/goerror"
)

// RequestOtpInput carries the identity requesting a login code.
type RequestOtpInput struct {
	ContactNumber string `validate:"required,contactnumber"`
	Name          string `validate:"required"`
}

// RequestOtp mints a one-time passcode for the contact number, stores it with
// a fixed TTL, and dispatches delivery in the background.
//
// Issuance succeeds as soon as the code is stored: delivery runs detached
// from the request and its failures are logged, never surfaced. A repeated
// request simply overwrites the previous code for the same contact.
func (s *Usecase) RequestOtp(ctx context.Context, in RequestOtpInput) error {
	ctx, span := s.startSpan(ctx, "RequestOtp")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidFormat("Contact Number, Name is required")
	}

	code := s.otp.Generate(in.ContactNumber)

	rec := entity.OtpRecord{
		ContactNumber: in.ContactNumber,
		Code:          code,
		IssuedAt:      s.clock.Now(),
	}
	if err := s.repoCache.StoreOtp(ctx, rec, s.cfg.GetMinute("modules.auth.otp_ttl_minutes")); err != nil {
		slog.ErrorContext(ctx, "failed to store otp record", "contact_number", in.ContactNumber, "error", err)
		return goerror.NewServer(err)
	}

	// Detach delivery from the request lifetime so the response never waits
	// on the provider.
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		s.deliver(ctx, in.ContactNumber, in.Name, code)
		return nil
	})

	return nil
}

// deliver sends the code over the messaging channel, authorized by the admin
// credential. Failures are logged and swallowed: the OTP is already stored
// and the user can retry the request.
func (s *Usecase) deliver(ctx context.Context, contactNumber, name, code string) {
	ctx, span := s.startSpan(ctx, "deliver")
	defer span.End()

	token, err := s.adminToken(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "otp delivery skipped, no admin credential", "contact_number", contactNumber, "error", err)
		return
	}

	message := fmt.Sprintf(s.cfg.GetString("modules.auth.delivery_template"), name, code)
	if err := s.provider.SendText(ctx, token, contactNumber, message); err != nil {
		slog.ErrorContext(ctx, "failed to deliver otp message", "contact_number", contactNumber, "error", err)
		return
	}

	slog.InfoContext(ctx, "otp message delivered", "contact_number", contactNumber)
}
