package auth

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}
	ctx := context.Background()

	hash, err := h.HashPassword(ctx, "pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "pw" {
		t.Fatalf("hash must not equal the password")
	}

	ok, err := h.VerifyPassword(ctx, "pw", hash)
	if err != nil || !ok {
		t.Fatalf("VerifyPassword(correct) = %v, %v", ok, err)
	}
	ok, err = h.VerifyPassword(ctx, "wrong", hash)
	if err != nil || ok {
		t.Fatalf("VerifyPassword(wrong) = %v, %v", ok, err)
	}
	if _, err := h.VerifyPassword(ctx, "pw", "not-a-hash"); err == nil {
		t.Fatalf("garbage hash should be an error")
	}
}
