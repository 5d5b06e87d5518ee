package jwt

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single outcome for every verification failure.
// A forged signature, an expired or malformed payload, a wrong signing
// method and a missing header segment are indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid token")

// Claims JWT 声明
type Claims struct {
	UserID   uint   `json:"id"`
	UserName string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret    []byte
	expireDur time.Duration
}

func NewTokenManager(secret string, expireHours int) *TokenManager {
	return &TokenManager{
		secret:    []byte(secret),
		expireDur: time.Duration(expireHours) * time.Hour,
	}
}

func (tm *TokenManager) Generate(userID uint, username string) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:   userID,
		UserName: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.expireDur)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Parse verifies the signature and claims of a raw token string.
func (tm *TokenManager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// VerifyRequest extracts the bearer token from a raw Authorization header
// value and resolves it to a user id. The token is the second
// whitespace-delimited segment; a missing segment and a token that fails
// verification both yield ErrInvalidToken.
func (tm *TokenManager) VerifyRequest(authHeader string) (uint, error) {
	parts := strings.Fields(authHeader)
	if len(parts) < 2 {
		return 0, ErrInvalidToken
	}

	claims, err := tm.Parse(parts[1])
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
