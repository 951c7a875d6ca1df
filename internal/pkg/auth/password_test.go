package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Password1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Password1" {
		t.Fatal("hash equals the plain password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("hash %q is not a bcrypt hash", hash)
	}

	if !CheckPassword(hash, "Password1") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "password1") {
		t.Error("CheckPassword accepted a wrong password")
	}
	if CheckPassword(hash, "") {
		t.Error("CheckPassword accepted an empty password")
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("Password1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("Password1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password are identical")
	}
}
