package inbound

import (
	"github.com/otpgate/otpgate/internal/auth/usecase"
	"github.com/otpgate/otpgate/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the OTP login workflows.
type HTTPEndpoint struct {
	uc uc
}

// RequestOtp issues a one-time passcode and dispatches delivery.
//
// The response is returned as soon as the code is stored; delivery happens in
// the background and its outcome is not reflected here.
func (h *HTTPEndpoint) RequestOtp(r *router.Request) (any, error) {
	var req RequestOtpRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.RequestOtp(r.Context(), usecase.RequestOtpInput{
		ContactNumber: req.ContactNumber,
		Name:          req.Name,
	}); err != nil {
		return nil, err
	}

	return RequestOtpResponse{}, nil
}

// Login validates the passcode and returns the provider credential together
// with a session token.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		ContactNumber: req.ContactNumber,
		Name:          req.Name,
		Otp:           req.Otp,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		ProviderToken: resp.ProviderToken,
		SessionToken:  resp.SessionToken,
	}, nil
}

// RefreshSession verifies the bearer session token and returns a fresh
// provider credential.
func (h *HTTPEndpoint) RefreshSession(r *router.Request) (any, error) {
	resp, err := h.uc.RefreshSession(r.Context(), usecase.RefreshSessionInput{
		Authorization: r.GetHeader("Authorization"),
	})
	if err != nil {
		return nil, err
	}

	return RefreshSessionResponse{ProviderToken: resp.ProviderToken}, nil
}
