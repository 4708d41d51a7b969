// Package jwt is helpers for working with JSON Web Tokens (JWT).
//
// It includes:
//   - A typed Claims wrapper (registered claims + strongly-typed payload).
//   - A symmetric HS512 implementation for generating and verifying tokens.
//
// Tokens are self-contained session credentials: they carry the user's
// messaging identity so the server needs no session storage.
package jwt
