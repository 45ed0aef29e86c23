package security

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const tokenSize = 32

const (
	// VerificationTokenTTL is how long a fresh email verification token stays valid
	VerificationTokenTTL = 24 * time.Hour
	// ResetTokenTTL is how long a password reset token stays valid
	ResetTokenTTL = time.Hour
)

// OpaqueToken is a random single purpose token together with its
// expiry. The two values always travel together so the stored pair is
// either fully set or fully cleared
type OpaqueToken struct {
	Token     string
	ExpiresAt time.Time
}

func NewOpaqueToken(ttl time.Duration) (*OpaqueToken, error) {
	token, err := gonanoid.New(tokenSize)
	if err != nil {
		return nil, err
	}

	return &OpaqueToken{
		Token:     token,
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}
