package inbound

// RequestOtpRequest is the payload to begin a login.
type RequestOtpRequest struct {
	ContactNumber string `json:"contactNumber"`
	Name          string `json:"name"`
}

// RequestOtpResponse acknowledges that a code was issued.
//
// Delivery is best-effort and asynchronous, so the response carries no
// delivery status.
type RequestOtpResponse struct{}

// Message customizes the success envelope message.
func (RequestOtpResponse) Message() string {
	return "OTP has been sent"
}

// LoginRequest is the payload to complete a login with a one-time passcode.
type LoginRequest struct {
	ContactNumber string `json:"contactNumber"`
	Name          string `json:"name"`
	Otp           string `json:"otp"`
}

// LoginResponse carries the provider credential and the gateway session token.
type LoginResponse struct {
	ProviderToken string `json:"providerToken"`
	SessionToken  string `json:"sessionToken"`
}

// RefreshSessionResponse carries the fresh provider credential.
type RefreshSessionResponse struct {
	ProviderToken string `json:"providerToken"`
}
