// Package cache is the ephemeral keyed store backing OTP records and the
// cached admin credential. All expiry is delegated to redis TTLs; there is no
// explicit deletion path.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/otpgate/otpgate/internal/auth/entity"
	"github.com/otpgate/otpgate/internal/pkg/goerror"
	"github.com/otpgate/otpgate/internal/pkg/instrument"
	"github.com/redis/go-redis/v9"
)

const (
	otpKeyPrefix       = "otp:"
	adminCredentialKey = "admin:credential"
)

// Cache stores OTP records and the admin credential in redis.
type Cache struct {
	client *redis.Client
	ins    instrument.Instrumentation
}

// New constructs a Cache on top of an existing redis client.
func New(client *redis.Client, ins instrument.Instrumentation) *Cache {
	return &Cache{client: client, ins: ins}
}

func (c *Cache) span(ctx context.Context, name string) (context.Context, func()) {
	ctx, sp := c.ins.Tracer("auth.outbound.cache").Start(ctx, name)
	return ctx, func() { sp.End() }
}

// StoreOtp writes the OTP record for its contact number with the given TTL,
// replacing any existing record. Single-key SET keeps the overwrite atomic.
func (c *Cache) StoreOtp(ctx context.Context, rec entity.OtpRecord, ttl time.Duration) error {
	ctx, end := c.span(ctx, "StoreOtp")
	defer end()

	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, otpKeyPrefix+rec.ContactNumber, raw, ttl).Err()
}

// GetOtp reads the live OTP record for a contact number.
//
// An absent or expired record returns goerror.ErrNotFound.
func (c *Cache) GetOtp(ctx context.Context, contactNumber string) (*entity.OtpRecord, error) {
	ctx, end := c.span(ctx, "GetOtp")
	defer end()

	raw, err := c.client.Get(ctx, otpKeyPrefix+contactNumber).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, goerror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var rec entity.OtpRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// StoreAdminCredential caches the privileged provider token with the given TTL.
// Concurrent writers simply overwrite each other; both tokens are valid.
func (c *Cache) StoreAdminCredential(ctx context.Context, token string, ttl time.Duration) error {
	ctx, end := c.span(ctx, "StoreAdminCredential")
	defer end()

	return c.client.Set(ctx, adminCredentialKey, token, ttl).Err()
}

// GetAdminCredential reads the cached admin token.
//
// A cache miss returns goerror.ErrNotFound.
func (c *Cache) GetAdminCredential(ctx context.Context) (string, error) {
	ctx, end := c.span(ctx, "GetAdminCredential")
	defer end()

	token, err := c.client.Get(ctx, adminCredentialKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", goerror.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	return token, nil
}
