package handler

import (
	"solpay/pkg/jwt"
)

// Session validates bearer tokens against the service's JWT secret.
type Session struct {
	tokens *jwt.JWTService
}

func NewSession(tokens *jwt.JWTService) *Session {
	return &Session{
		tokens: tokens,
	}
}

func (s *Session) Validate(token string) (string, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return "", err
	}
	return jwt.Subject(claims)
}
