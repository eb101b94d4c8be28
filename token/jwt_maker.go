package token

import (
	"errors"
	"fmt"
	"time"

	// The official Go JWT library for working with JSON Web Tokens.
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RoleAdmin is the only role the service issues; it unlocks the catalog admin API.
const RoleAdmin = "admin"

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
)

// Maker issues and verifies access tokens.
type Maker interface {
	CreateToken(username, role string, duration time.Duration) (string, error)
	VerifyToken(tokenString string) (*Payload, error)
}

// Payload is the data stored inside a token.
type Payload struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTMaker is a struct that handles creation and verification of JWT tokens.
type JWTMaker struct {
	secretKey string // A secret key used to sign and verify JWTs.
}

// NewJWTMaker creates a new JWTMaker with the provided secret key.
// The key must be at least 32 characters long to ensure strong encryption.
func NewJWTMaker(secretKey string) (*JWTMaker, error) {
	if len(secretKey) < 32 {
		return nil, fmt.Errorf("invalid key size: must be at least 32 characters")
	}
	return &JWTMaker{secretKey}, nil
}

// CreateToken generates a signed HS256 token for username with the given role.
func (maker *JWTMaker) CreateToken(username, role string, duration time.Duration) (string, error) {
	now := time.Now()
	payload := &Payload{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return jwtToken.SignedString([]byte(maker.secretKey))
}

// VerifyToken checks if the given JWT token is valid and not expired and
// returns its payload.
func (maker *JWTMaker) VerifyToken(tokenString string) (*Payload, error) {
	payload := &Payload{}
	token, err := jwt.ParseWithClaims(tokenString, payload, func(token *jwt.Token) (interface{}, error) {
		return []byte(maker.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return payload, nil
}
