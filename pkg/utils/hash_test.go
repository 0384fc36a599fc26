package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw123456")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "pw123456" {
		t.Fatal("Hash must not equal the plaintext password")
	}

	if !CheckPasswordHash("pw123456", hash) {
		t.Error("Expected correct password to verify")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("Expected wrong password to fail verification")
	}
}

func TestCheckPasswordHashInvalidHash(t *testing.T) {
	// A bad hash is a mismatch, never a panic or error
	if CheckPasswordHash("pw123456", "not-a-bcrypt-hash") {
		t.Error("Expected verification against garbage hash to fail")
	}
}
