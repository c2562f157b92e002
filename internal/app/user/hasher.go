package user

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is the work factor used for stored password hashes.
const DefaultBcryptCost = 10

// PasswordHasher turns a plaintext password into a salted one-way digest
// and checks candidates against a stored digest.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Matches(hash, plain string) bool
}

// BcryptHasher hashes passwords with bcrypt at a fixed cost.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher returns a hasher for cost, falling back to DefaultBcryptCost
// when cost is outside bcrypt's accepted range.
func NewBcryptHasher(cost int) BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return BcryptHasher{Cost: cost}
}

func (h BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Matches reports whether plain is the password behind hash.
func (h BcryptHasher) Matches(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
