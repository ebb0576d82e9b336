package academy

import (
	"crypto/subtle"
	"fmt"

	"github.com/etnz/classwork"
	"golang.org/x/crypto/bcrypt"
)

// DefaultSecret opens the administrative actions when nothing else is
// configured.
const DefaultSecret = "admin"

// Gate guards the administrative actions (adding rooms or teachers, clearing
// the academy) behind a shared secret. It is not a credential system.
type Gate struct {
	secret []byte
	hash   []byte
}

// NewGate accepts secret, or DefaultSecret if secret is empty.
func NewGate(secret string) *Gate {
	if secret == "" {
		secret = DefaultSecret
	}
	return &Gate{secret: []byte(secret)}
}

// NewHashedGate accepts any secret matching a bcrypt hash.
func NewHashedGate(hash string) (*Gate, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("invalid bcrypt hash: %w: %w", classwork.ErrValue, err)
	}
	return &Gate{hash: []byte(hash)}, nil
}

// HashSecret returns the bcrypt hash of secret, for NewHashedGate.
func HashSecret(secret string, cost int) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	return string(h), err
}

// Allow reports whether input is the secret.
func (g *Gate) Allow(input string) bool {
	if g.hash != nil {
		return bcrypt.CompareHashAndPassword(g.hash, []byte(input)) == nil
	}
	return subtle.ConstantTimeCompare(g.secret, []byte(input)) == 1
}
