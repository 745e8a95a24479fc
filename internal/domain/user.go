package domain

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload issued after the gate-password login.
type Claims struct {
	jwt.RegisteredClaims
}

// LoginRequest is the body of POST /v1/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the session token back to the caller.
type LoginResponse struct {
	Token string `json:"token"`
}
