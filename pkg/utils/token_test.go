package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndValidateToken(t *testing.T) {
	SetTokenSecret("unit-test-secret")

	encoded, err := GenerateToken(42, "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := ValidateToken(encoded)
	if err != nil || !token.Valid {
		t.Fatalf("ValidateToken: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["account_id"].(float64) != 42 || claims["role"] != "ADMIN" {
		t.Errorf("unexpected claims %v", claims)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp.Before(time.Now().Add(TokenTTL-time.Minute)) {
		t.Errorf("unexpected expiry %v, %v", exp, err)
	}
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	SetTokenSecret("first-secret")
	encoded, err := GenerateToken(1, "CUSTOMER")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	SetTokenSecret("second-secret")
	if _, err := ValidateToken(encoded); err == nil {
		t.Error("expected token signed with another key to be rejected")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	SetTokenSecret("unit-test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": 1,
		"role":       "CUSTOMER",
		"exp":        time.Now().Add(-time.Hour).Unix(),
	})
	encoded, err := expired.SignedString([]byte("unit-test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateToken(encoded); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestValidateTokenRejectsNoneAlgorithm(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"account_id": 1, "role": "ADMIN"})
	encoded, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateToken(encoded); err == nil {
		t.Error("expected alg=none token to be rejected")
	}
}
