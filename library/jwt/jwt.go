// Package jwt signs and verifies the bearer tokens issued to admins.
package jwt

import (
	"github.com/Laisky/errors/v2"
	jwtLib "github.com/golang-jwt/jwt/v5"
)

// JWT signs and verifies HS256 tokens with a shared secret.
type JWT struct {
	secret []byte
}

// New create a signer with the given secret.
func New(secret []byte) (*JWT, error) {
	if len(secret) == 0 {
		return nil, errors.New("empty jwt secret")
	}

	return &JWT{secret: secret}, nil
}

// Sign issue a signed token for the given claims.
func (j *JWT) Sign(claims *AdminClaims) (string, error) {
	token, err := jwtLib.NewWithClaims(jwtLib.SigningMethodHS256, claims).
		SignedString(j.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return token, nil
}

// Verify parse raw and return the embedded claims.
//
// Issued tokens carry no expiration, so a token stays valid until the admin
// it references is deleted. An `exp` in the past is still rejected when present.
func (j *JWT) Verify(raw string) (*AdminClaims, error) {
	claims := new(AdminClaims)
	if _, err := jwtLib.ParseWithClaims(raw, claims,
		func(*jwtLib.Token) (any, error) { return j.secret, nil },
		jwtLib.WithValidMethods([]string{jwtLib.SigningMethodHS256.Alg()}),
	); err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	return claims, nil
}
