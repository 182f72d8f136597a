package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TokenTTL = 24 * time.Hour

const devTokenSecret = "kdos-dev-secret"

var secretKey = []byte(devTokenSecret)

// SetTokenSecret sets the HMAC key. An empty secret keeps the development
// key and logs a warning.
func SetTokenSecret(secret string) {
	if secret == "" {
		Log.Warn("JWT_SECRET not set, using development signing key")
		secretKey = []byte(devTokenSecret)
		return
	}
	secretKey = []byte(secret)
}

func tokenSecret() []byte {
	return secretKey
}

// GenerateToken signs a JWT carrying the account id and role.
func GenerateToken(accountID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"account_id": accountID,
		"role":       role,
		"exp":        time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tokenSecret())
}

// ValidateToken parses encodedToken and checks its HMAC signature and expiry.
func ValidateToken(encodedToken string) (*jwt.Token, error) {
	return jwt.Parse(encodedToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return tokenSecret(), nil
	})
}
