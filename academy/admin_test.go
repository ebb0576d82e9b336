package academy

import (
	"errors"
	"testing"

	"github.com/etnz/classwork"
	"golang.org/x/crypto/bcrypt"
)

func TestGate(t *testing.T) {
	g := NewGate("")
	if !g.Allow(DefaultSecret) {
		t.Errorf("default gate refused %q", DefaultSecret)
	}
	if g.Allow("Admin") || g.Allow("") {
		t.Error("default gate accepted a wrong secret")
	}
	if !NewGate("s3cret").Allow("s3cret") {
		t.Error("gate refused its own secret")
	}
}

func TestHashedGate(t *testing.T) {
	hash, err := HashSecret("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashSecret returned an unexpected error: %v", err)
	}
	g, err := NewHashedGate(hash)
	if err != nil {
		t.Fatalf("NewHashedGate returned an unexpected error: %v", err)
	}
	if !g.Allow("s3cret") {
		t.Error("hashed gate refused the secret")
	}
	if g.Allow("admin") {
		t.Error("hashed gate accepted the default secret")
	}
	if _, err := NewHashedGate("not a hash"); !errors.Is(err, classwork.ErrValue) {
		t.Errorf("NewHashedGate(garbage) error = %v, want %v", err, classwork.ErrValue)
	}
}
