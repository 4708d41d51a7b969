package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/otpgate/otpgate/internal/pkg/goerror"
)

// adminToken returns the privileged provider token used to authorize OTP
// delivery messages.
//
// The token is cached in the shared store and only refreshed on a miss; a
// provider failure is propagated and never cached. Two concurrent misses may
// both refresh, which is harmless: either token is valid and the last write
// wins.
func (s *Usecase) adminToken(ctx context.Context) (string, error) {
	ctx, span := s.startSpan(ctx, "adminToken")
	defer span.End()

	token, err := s.repoCache.GetAdminCredential(ctx)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to read cached admin credential", "error", err)
		return "", err
	}

	contactNumber := s.cfg.GetString("provider.admin.contact_number")
	name := s.cfg.GetString("provider.admin.name")

	token, err = s.provider.ExchangeCredential(ctx, contactNumber, name)
	if err != nil {
		slog.ErrorContext(ctx, "failed to exchange admin credential with provider", "error", err)
		return "", err
	}

	ttl := s.cfg.GetMinute("modules.auth.admin_credential_ttl_minutes")
	if err := s.repoCache.StoreAdminCredential(ctx, token, ttl); err != nil {
		// The token itself is still usable for this delivery.
		slog.ErrorContext(ctx, "failed to cache admin credential", "error", err)
	}

	return token, nil
}
