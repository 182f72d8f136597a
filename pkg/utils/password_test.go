package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("koi-pond-42")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "koi-pond-42" {
		t.Fatal("hash must not equal the password")
	}

	if !CheckPassword("koi-pond-42", hash) {
		t.Error("expected matching password to pass")
	}
	if CheckPassword("koi-pond-43", hash) {
		t.Error("expected wrong password to fail")
	}
	if CheckPassword("", hash) {
		t.Error("expected empty password to fail")
	}
	if CheckPassword("koi-pond-42", "") {
		t.Error("expected empty hash to fail")
	}
}
