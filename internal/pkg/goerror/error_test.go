package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "InvalidFormat", err: NewInvalidFormat("missing fields"), want: http.StatusBadRequest},
		{name: "InvalidInput", err: NewInvalidInput(errors.New("bad")), want: http.StatusUnprocessableEntity},
		{name: "OTPRejected", err: NewBusiness("OTP Invalid", CodeOTPRejected), want: http.StatusBadRequest},
		{name: "Unauthorized", err: NewBusiness("Invalid Authorization", CodeUnauthorized), want: http.StatusUnauthorized},
		{name: "Server", err: NewServer(errors.New("boom")), want: http.StatusInternalServerError},
		{name: "ProviderPassthrough", err: NewProvider(403, "Account Disabled"), want: http.StatusForbidden},
		{name: "ProviderTeapot", err: NewProvider(418, "I'm a teapot"), want: 418},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gerr *Error
			require.ErrorAs(t, tt.err, &gerr)
			assert.Equal(t, tt.want, gerr.StatusCode())
		})
	}
}

func TestNewProvider(t *testing.T) {
	t.Run("KeepsUpstreamStatusAndTitle", func(t *testing.T) {
		var gerr *Error
		require.ErrorAs(t, NewProvider(429, "Rate Limited"), &gerr)

		assert.Equal(t, "Rate Limited", gerr.Msg())
		assert.Equal(t, 429, gerr.StatusCode())
		assert.Equal(t, TypeProvider, gerr.Type())
	})

	t.Run("CoercesNonErrorStatus", func(t *testing.T) {
		var gerr *Error
		require.ErrorAs(t, NewProvider(200, "weird"), &gerr)

		assert.Equal(t, http.StatusBadGateway, gerr.StatusCode())
	})
}

func TestNewInvalidInputFields(t *testing.T) {
	var gerr *Error
	require.ErrorAs(t, NewInvalidInput(nil, "otp", "is required"), &gerr)

	assert.Equal(t, map[string]string{"otp": "is required"}, gerr.Fields())
}
