package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/otpgate/otpgate/internal/pkg/goerror"
)

// RefreshSessionInput carries the raw Authorization header value.
type RefreshSessionInput struct {
	Authorization string
}

// RefreshSessionOutput carries the fresh provider credential.
type RefreshSessionOutput struct {
	ProviderToken string
}

// RefreshSession verifies a previously issued session token and re-exchanges
// its identity claims with the provider, bypassing the OTP step entirely.
//
// The header must be exactly "<scheme> <token>"; a missing header and a
// malformed one fail distinctly. Tokens stay valid for their full lifetime,
// there is no revocation list.
func (s *Usecase) RefreshSession(ctx context.Context, in RefreshSessionInput) (*RefreshSessionOutput, error) {
	ctx, span := s.startSpan(ctx, "RefreshSession")
	defer span.End()

	if in.Authorization == "" {
		return nil, goerror.NewBusiness("Authorization is required", goerror.CodeUnauthorized)
	}

	parts := strings.Split(in.Authorization, " ")
	if len(parts) != 2 {
		return nil, goerror.NewBusiness("Invalid Authorization", goerror.CodeUnauthorized)
	}

	claims, err := s.jwt.Verify(parts[1])
	if err != nil {
		slog.WarnContext(ctx, "session token rejected", "error", err)
		return nil, goerror.NewBusiness(err.Error(), goerror.CodeUnauthorized)
	}

	providerToken, err := s.provider.ExchangeCredential(ctx, claims.ContactNumber, claims.Name)
	if err != nil {
		return nil, s.providerError(ctx, err)
	}

	return &RefreshSessionOutput{ProviderToken: providerToken}, nil
}
