// Package auth provides JWT issuing/verification and password hashing.
//
// AUTHENTICATION FLOW:
//  1. POST /signup hashes the password, stores the user, issues a JWT
//  2. POST /login verifies the password against the stored hash, issues a JWT
//  3. Protected routes carry the token as "Authorization: Bearer <jwt>";
//     middleware validates it and puts the userID in the request context
//
// The token is stateless — the signed payload carries the userID and the
// expiry, so verification needs no database lookup, only the secret.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenIssuer identifies tokens minted by this server. Verification
// rejects tokens carrying any other issuer.
const tokenIssuer = "formbot"

// TokenTTL is the bearer token lifetime. After an hour the client must
// log in again.
const TokenTTL = time.Hour

// TokenService handles JWT creation and validation. It holds the HMAC
// secret used to sign and verify — the same key for both operations.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService with the given secret.
// The secret should be at least 32 bytes of random data in production.
func NewTokenService(secret string) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: JWT secret must be at least 16 characters")
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// claims is the JWT payload. jwt.RegisteredClaims covers the standard
// fields; the userID travels in "sub" (Subject).
type claims struct {
	jwt.RegisteredClaims
}

// Generate creates and signs a one-hour access token for the given userID.
func (s *TokenService) Generate(userID string) (string, error) {
	return s.GenerateWithDuration(userID, TokenTTL)
}

// GenerateWithDuration creates a token with a custom expiry. Used by tests
// to mint already-expired tokens.
func (s *TokenService) GenerateWithDuration(userID string, d time.Duration) (string, error) {
	now := time.Now()

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}

	return signed, nil
}

// Validate parses and verifies a JWT string. Returns the userID from the
// "sub" claim if the token is valid.
//
// The jwt library checks the signature, the expiry, and the issuer.
// jwt.WithValidMethods pins the algorithm to HS256 so a token signed with
// "none" (or any other method) is rejected outright.
func (s *TokenService) Validate(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("auth: token expired")
		}
		return "", fmt.Errorf("auth: invalid token: %w", err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("auth: invalid token claims")
	}

	userID := c.Subject
	if userID == "" {
		return "", fmt.Errorf("auth: token has no subject")
	}

	return userID, nil
}
