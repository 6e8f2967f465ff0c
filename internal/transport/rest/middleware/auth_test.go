package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codexam/internal/config"
	"codexam/internal/service"
)

func testMiddleware() (*AuthMiddleware, *service.AuthService) {
	authSvc := service.NewAuthService(&config.Config{
		JWTSecret:         "test-secret",
		ProfessorPasscode: "422025",
	})
	return NewAuthMiddleware(authSvc), authSvc
}

func TestRequireProfessorAllowsValidToken(t *testing.T) {
	mw, authSvc := testMiddleware()

	resp, err := authSvc.Login("422025")
	require.NoError(t, err)

	var gotID string
	handler := mw.RequireProfessor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetProfessorID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, gotID)
}

func TestRequireProfessorRejections(t *testing.T) {
	mw, _ := testMiddleware()

	handler := mw.RequireProfessor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestGetProfessorIDMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetProfessorID(req.Context()))
}
