package services

import (
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

// NewAccessToken mints a short-lived access token carrying the owner
// identity. Token issuance lives outside this API; the helper exists for the
// auth middleware tests and local tooling.
func NewAccessToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iss":     "notemark",
		"iat":     now.Unix(),
		"exp":     now.Add(time.Duration(utils.JWTExpirationTime) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}
