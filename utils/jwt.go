package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL bounds every issued token. There is no refresh flow; a token
// stays valid until exp regardless of server-side state.
const AccessTokenTTL = 20 * time.Minute

// ErrInvalidToken wraps every parse/validation failure.
var ErrInvalidToken = errors.New("invalid token")

// TokenClaims is the verified identity carried by a bearer token.
type TokenClaims struct {
	UserID   uint
	Username string
}

// GenerateJWT signs an HS256 token with sub, id and exp claims.
func GenerateJWT(secret []byte, username string, userID uint, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"id":  userID,
		"exp": time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

// ParseJWT validates signature, method and expiry and requires the sub and id
// claims to be present.
func ParseJWT(secret []byte, tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	username, _ := claims["sub"].(string)
	id, okID := claims["id"].(float64)
	if username == "" || !okID {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{UserID: uint(id), Username: username}, nil
}
