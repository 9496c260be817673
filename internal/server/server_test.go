package server

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vicky-2409/mern-survey-app/internal/auth"
	commonhttp "github.com/Vicky-2409/mern-survey-app/internal/interfaces/http/common"
)

func newAuthTestServer() (*Server, *auth.Issuer) {
	issuer := auth.NewIssuer([]byte("test-secret"), "Admin", "Admin@123")
	return &Server{
		logger: log.New(io.Discard, "", 0),
		issuer: issuer,
	}, issuer
}

func TestAuthMiddlewareRejections(t *testing.T) {
	srv, _ := newAuthTestServer()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run for rejected requests")
	})
	protected := srv.authMiddleware(next)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic QWRtaW46QWRtaW4="},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/submissions", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddlewarePassesValidToken(t *testing.T) {
	srv, issuer := newAuthTestServer()

	token, err := issuer.Authenticate("Admin", "Admin@123")
	require.NoError(t, err)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		user, ok := commonhttp.UserFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "admin", user.Username)
	})

	req := httptest.NewRequest(http.MethodGet, "/submissions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.authMiddleware(next).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSpaFallback(t *testing.T) {
	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<!doctype html><title>app</title>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "asset.txt"), []byte("asset-body"), 0o644))

	handler := spaFallback(staticDir)

	req := httptest.NewRequest(http.MethodGet, "/asset.txt", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "asset-body", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/some/client/route", nil)
	rec = httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>app</title>")
}
