package authn

import (
	"errors"

	"github.com/golang-jwt/jwt"
)

var ErrInvalidJWT = errors.New("invalid jwt token")
var ErrInvalidClaims = errors.New("invalid claims")

// Claims are the identity fields the API embeds in its bearer tokens.
type Claims struct {
	jwt.StandardClaims
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
}

// ParseClaims decodes the claims from a bearer token without verifying the
// signature or expiry. The server remains the authority; a stale token is
// only discovered on the next failed API call.
func ParseClaims(token string) (Claims, error) {
	claims := Claims{}
	// Check if token is JWT by attempting to parse it
	if t, err := jwt.ParseWithClaims(token, &claims, nil); err != nil {
		// Ignore validation errors (no need to check signing of key)
		if _, ok := err.(*jwt.ValidationError); !ok {
			return claims, ErrInvalidJWT
		}

		// Check if token was decoded successfully
		if t == nil {
			return claims, ErrInvalidClaims
		}
	}
	return claims, nil
}
