package authenticating

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrMissingPassword    = errors.New("password is required")
)

// IsCredentialsError reports whether the error came from a bad login
// attempt rather than a server-side problem.
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrMissingPassword)
}

// IsAuthorizationError reports whether the error came from a rejected
// session token.
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken)
}
