// Package service defines domain service interfaces implemented by the infra layer.
package service

// TokenService defines the interface for issuing and verifying the admin
// bearer credential. Verification is a pure, stateless check: there is no
// revocation list, so a leaked token stays valid until natural expiry.
type TokenService interface {
	// IssueToken creates a signed, time-boxed admin credential.
	IssueToken() (string, error)

	// ValidateToken checks the signature and expiry of a credential.
	ValidateToken(token string) error
}
