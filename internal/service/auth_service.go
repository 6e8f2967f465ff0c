package service

import (
	"errors"
	"time"

	"codexam/internal/config"
	"codexam/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidPasscode = errors.New("invalid passcode")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

// AuthService handles professor passcode login and token validation. This is
// deliberately a fixed-passcode scheme, not hardened authentication.
type AuthService struct {
	professorPasscode string
	jwtSecret         []byte
}

// NewAuthService creates a new auth service from the loaded configuration.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		professorPasscode: cfg.ProfessorPasscode,
		jwtSecret:         []byte(cfg.JWTSecret),
	}
}

// Login validates the professor passcode and returns a session token.
func (s *AuthService) Login(passcode string) (*model.LoginResponse, error) {
	if passcode != s.professorPasscode {
		return nil, ErrInvalidPasscode
	}

	claims := &model.ProfessorClaims{
		ProfessorID: "prof_" + uuid.New().String()[:8],
		Role:        model.RoleProfessor,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token: tokenString,
		Role:  model.RoleProfessor,
	}, nil
}

// ValidateToken validates a professor JWT and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*model.ProfessorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.ProfessorClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.ProfessorClaims)
	if !ok || !token.Valid || claims.Role != model.RoleProfessor {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
