package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenTypeAccess marks short-lived tokens accepted by the API middleware.
	TokenTypeAccess = "access"
	// TokenTypeRefresh marks long-lived tokens accepted only for re-issuing.
	TokenTypeRefresh = "refresh"
)

// Claims are the JWT claims carried by issued tokens. The subject is the
// authenticated user's id.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"token_type"`
}

// TokenPair is the access/refresh pair returned by register and login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Issuer signs and verifies HS256 tokens with a shared secret.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair signs a new access/refresh token pair for the given user.
func (i *Issuer) IssuePair(userID uuid.UUID) (*TokenPair, error) {
	access, err := i.sign(userID, TokenTypeAccess, i.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := i.sign(userID, TokenTypeRefresh, i.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (i *Issuer) sign(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// ParseAccess verifies an access token and returns the user id it carries.
// Refresh tokens are rejected.
func (i *Issuer) ParseAccess(tokenStr string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}
	if claims.TokenType != TokenTypeAccess {
		return uuid.Nil, fmt.Errorf("not an access token")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject: %w", err)
	}
	return userID, nil
}
