package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codexam/internal/config"
	"codexam/internal/model"
)

func testAuthService() *AuthService {
	return NewAuthService(&config.Config{
		JWTSecret:         "test-secret",
		ProfessorPasscode: "422025",
	})
}

func TestLoginValidPasscode(t *testing.T) {
	svc := testAuthService()

	resp, err := svc.Login("422025")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleProfessor, resp.Role)
}

func TestLoginInvalidPasscode(t *testing.T) {
	svc := testAuthService()

	_, err := svc.Login("000000")
	assert.ErrorIs(t, err, ErrInvalidPasscode)

	_, err = svc.Login("")
	assert.ErrorIs(t, err, ErrInvalidPasscode)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	svc := testAuthService()

	resp, err := svc.Login("422025")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleProfessor, claims.Role)
	assert.True(t, strings.HasPrefix(claims.ProfessorID, "prof_"))
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := testAuthService()

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	resp, err := testAuthService().Login("422025")
	require.NoError(t, err)

	other := NewAuthService(&config.Config{
		JWTSecret:         "different-secret",
		ProfessorPasscode: "422025",
	})
	_, err = other.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
