package security

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "rahasia123" || strings.Contains(hash, "rahasia123") {
		t.Fatalf("hash leaks plaintext: %q", hash)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost: %v", err)
	}
	if cost != PasswordCost {
		t.Fatalf("cost = %d, want %d", cost, PasswordCost)
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	a, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	b, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct digests for the same input")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !CheckPassword("rahasia123", hash) {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword("salah", hash) {
		t.Fatalf("wrong password accepted")
	}
	if CheckPassword("rahasia123", "not-a-bcrypt-hash") {
		t.Fatalf("malformed digest accepted")
	}
}

func TestHashPassword_LongPasswordTruncated(t *testing.T) {
	long := strings.Repeat("a", 80)
	hash, err := HashPassword(long)
	if err != nil {
		t.Fatalf("HashPassword(80 bytes): %v", err)
	}
	if !CheckPassword(long, hash) {
		t.Fatalf("80-byte password rejected after hashing")
	}
	if !CheckPassword(long[:72], hash) {
		t.Fatalf("expected only the first 72 bytes to count")
	}
	if CheckPassword(long[:71], hash) {
		t.Fatalf("71-byte prefix accepted")
	}
}
