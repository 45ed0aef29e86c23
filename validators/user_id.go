package validators

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUserIDEmpty   = errors.New("no user id provided")
	ErrUserIDInvalid = errors.New("invalid user id")
)

// UserIDValidator rejects malformed identifiers before they ever reach
// the database
func UserIDValidator(id string) (uuid.UUID, error) {
	if id == "" {
		return uuid.Nil, ErrUserIDEmpty
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrUserIDInvalid
	}

	return parsed, nil
}
