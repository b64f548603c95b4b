// Package password hashes staff passwords with bcrypt.
package password

import (
	"errors"

	"mysterybox-storefront/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errs.New("password hashing failed")
	ErrComparisonFailed = errs.New("password comparison failed")
	ErrInvalidPassword  = errs.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

func HashPassword(plain string) (string, error) {
	return HashPasswordWithCost(plain, DefaultCost)
}

// HashPasswordWithCost exists for tests, which use bcrypt.MinCost to stay fast.
func HashPasswordWithCost(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}
	return string(hash), nil
}

func ComparePassword(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrInvalidPassword
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return errs.Wrap(err, "compare password hash")
	}
}

// NeedsRehash is true for unparseable hashes and for hashes cheaper than DefaultCost.
func NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	return err != nil || cost < DefaultCost
}
