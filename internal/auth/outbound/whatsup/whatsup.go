// Package whatsup is the HTTP client for the Whatsup messaging identity
// provider. It covers the two capabilities the gateway needs: exchanging a
// messaging identity for an access token, and sending a text message.
package whatsup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/otpgate/otpgate/internal/auth/entity"
	"github.com/otpgate/otpgate/internal/pkg/instrument"
	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel/codes"
)

const (
	loginPath   = "/api/user/login"
	messagePath = "/api/message/text"

	maxAttempts = 3
)

// Config holds the provider connection settings.
type Config struct {
	// BaseURL is the provider root, without trailing slash.
	BaseURL string
	// APIKey authorizes the credential exchange endpoint (Basic scheme).
	APIKey string
	// Timeout bounds every provider call.
	Timeout time.Duration
}

// Client talks to the Whatsup provider.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	ins     instrument.Instrumentation
}

// New constructs a provider client with a bounded request timeout.
func New(cfg Config, ins instrument.Instrumentation) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		ins:     ins,
	}
}

type loginRequest struct {
	ContactNumber string `json:"contact_number"`
	Name          string `json:"name"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type messageRequest struct {
	ContactNumber string `json:"contact_number"`
	Message       string `json:"message"`
}

// problem is the provider's error document shape.
type problem struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
}

// ExchangeCredential logs a messaging identity into the provider and returns
// its access token. Provider-reported failures come back as
// *entity.ProviderError carrying the upstream status and title.
func (c *Client) ExchangeCredential(ctx context.Context, contactNumber, name string) (string, error) {
	ctx, span := c.ins.Tracer("auth.outbound.whatsup").Start(ctx, "ExchangeCredential")
	defer span.End()

	body, err := json.Marshal(loginRequest{ContactNumber: contactNumber, Name: name})
	if err != nil {
		return "", err
	}

	var out loginResponse
	err = c.do(ctx, loginPath, "Basic "+c.apiKey, body, &out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	return out.AccessToken, nil
}

// SendText delivers a text message to the contact number, authorized by the
// given provider access token.
func (c *Client) SendText(ctx context.Context, accessToken, contactNumber, message string) error {
	ctx, span := c.ins.Tracer("auth.outbound.whatsup").Start(ctx, "SendText")
	defer span.End()

	body, err := json.Marshal(messageRequest{ContactNumber: contactNumber, Message: message})
	if err != nil {
		return err
	}

	if err := c.do(ctx, messagePath, "Bearer "+accessToken, body, nil); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// do posts the body to the provider and decodes the response into out.
//
// Transport failures are retried with a short fibonacci backoff; responses
// from the provider, success or failure, are never retried.
func (c *Client) do(ctx context.Context, path, authorization string, body []byte, out any) error {
	backoff := retry.WithMaxRetries(maxAttempts-1, retry.NewFibonacci(200*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", authorization)

		resp, err := c.http.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return retry.RetryableError(err)
		}

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			var p problem
			if err := json.Unmarshal(raw, &p); err != nil || p.Status == 0 {
				p = problem{Status: resp.StatusCode, Title: http.StatusText(resp.StatusCode)}
			}
			return &entity.ProviderError{Status: p.Status, Title: p.Title}
		}

		if out == nil {
			return nil
		}

		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode provider response: %w", err)
		}

		return nil
	})
}
