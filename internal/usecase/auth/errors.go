// Package auth implements account creation, login and stateless bearer token
// verification. Passwords are stored as bcrypt hashes; sessions are HS256
// JWTs carrying the subject email and an expiry, with no server-side state
// and no revocation.
package auth

import "errors"

// Token verification failures are distinct so the API layer can report the
// specific reason on 401 responses.
var (
	// ErrTokenMissing indicates the token was absent or the header malformed.
	ErrTokenMissing = errors.New("missing or malformed token")

	// ErrTokenExpired indicates the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates a bad signature, algorithm or claim set.
	ErrTokenInvalid = errors.New("invalid token")
)
