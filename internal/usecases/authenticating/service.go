package authenticating

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArshadAliDS/Amazon/internal/config"
	"github.com/ArshadAliDS/Amazon/internal/domain"
)

// Authenticator gates the whole dashboard behind a single shared
// password and hands out session JWTs.
type Authenticator interface {
	Login(password string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

// Login checks the gate password and issues a signed session token.
// When a bcrypt hash is configured it takes precedence over the plain
// password comparison.
func (s *Service) Login(password string) (*domain.LoginResponse, error) {
	if password == "" {
		return nil, ErrMissingPassword
	}

	if s.cfg.Auth.GatePasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.GatePasswordHash), []byte(password)); err != nil {
			logrus.Warn("login attempt with wrong password")
			return nil, ErrInvalidCredentials
		}
	} else if subtle.ConstantTimeCompare([]byte(s.cfg.Auth.GatePassword), []byte(password)) != 1 {
		logrus.Warn("login attempt with wrong password")
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateJWT()
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{Token: token}, nil
}

func (s *Service) generateJWT() (string, error) {
	claims := domain.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "dashboard",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.Auth.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

// ValidateToken parses and verifies a session token.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
