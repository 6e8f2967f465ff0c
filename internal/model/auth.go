package model

import "github.com/golang-jwt/jwt/v5"

// Role distinguishes professor sessions from anonymous student traffic.
type Role string

const (
	RoleProfessor Role = "professor"
)

// LoginRequest is the request body for passcode login
type LoginRequest struct {
	Passcode string `json:"passcode"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}

// ProfessorClaims are the JWT claims for a professor session
type ProfessorClaims struct {
	ProfessorID string `json:"professorId"`
	Role        Role   `json:"role"`
	jwt.RegisteredClaims
}
