package security

import "testing"

func TestHashPasswordSaltsEachHash(t *testing.T) {
	h1, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Error("expected two hashes of the same password to differ")
	}
	if !CheckPasswordHash("pw123", h1) || !CheckPasswordHash("pw123", h2) {
		t.Error("expected both hashes to verify the original password")
	}
}

func TestCheckPasswordHashRejectsWrongPassword(t *testing.T) {
	h, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if CheckPasswordHash("wrong", h) {
		t.Error("expected wrong password to fail verification")
	}
	if CheckPasswordHash("pw123", "not-a-bcrypt-hash") {
		t.Error("expected malformed hash to fail verification")
	}
}
