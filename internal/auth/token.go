// Package auth issues and verifies the stateless signed credentials used by
// the API. Tokens are HS256 JWTs embedding the account id, username, email,
// and role; validity is solely a function of signature and expiry — there is
// no server-side session store.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bossnabeel/nexus-blog-app/internal/domain"
)

// ErrInvalidToken is returned by Verify for any token that fails signature,
// algorithm, expiry, or shape checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the signed payload carried by every credential.
type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a credential for user valid for ttl.
func Issue(user *domain.User, secret string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Verify parses and validates a credential, returning its claims.
// Only HS256 is accepted; any other algorithm is rejected.
func Verify(token, secret string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
