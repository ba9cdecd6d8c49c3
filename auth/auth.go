// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
	ErrNoToken      = errors.New("no bearer token")
)

// TokenTTL is the validity window of an issued token.
const TokenTTL = 7 * 24 * time.Hour

// Claims binds a user id and canonical phone key to a signed token.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	PhoneKey string `json:"phone_key"`
}

// IssueToken signs an HS256 token carrying the user identity, valid
// for ttl from now.
func IssueToken(userID, phoneKey string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:   userID,
		PhoneKey: phoneKey,
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates signature and expiry, returning the embedded
// user id.
func VerifyToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}

// UserIDFromRequest extracts and verifies the Bearer token from the
// Authorization header.
func UserIDFromRequest(r *http.Request, secret []byte) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrNoToken
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header || tokenString == "" {
		return "", ErrNoToken
	}
	return VerifyToken(tokenString, secret)
}

// NewID returns a new entity primary key.
func NewID() string {
	return uuid.NewString()
}

// GenerateShareSlug creates the random identifier embedded in a pool's
// shareable link: 8 random bytes, hex encoded.
func GenerateShareSlug() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate share slug: %w", err)
	}
	return hex.EncodeToString(b), nil
}
