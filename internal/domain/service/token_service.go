package service

import "time"

// DefaultTokenTTL is used when Issue is called without a positive ttl.
const DefaultTokenTTL = 15 * time.Minute

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue signs a token for subject that expires after ttl.
	// A ttl <= 0 falls back to DefaultTokenTTL.
	Issue(subject string, ttl time.Duration) (string, error)

	// Verify checks signature, algorithm and expiry and returns the subject claim.
	// Every failure is reported as domainerrors.ErrInvalidToken.
	Verify(token string) (string, error)
}
