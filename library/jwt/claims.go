package jwt

import (
	jwtLib "github.com/golang-jwt/jwt/v5"
)

// AdminClaims is the payload encoded into issued bearer tokens.
// Subject holds the admin's object id in hex.
type AdminClaims struct {
	jwtLib.RegisteredClaims
	Email string `json:"email"`
}
