package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the JWT claims carried by an admin session token.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// LoginRequest carries the shared admin credential.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued session token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}
