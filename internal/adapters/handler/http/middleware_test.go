package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warriorcenter/cms-api/internal/core/ports"
)

type stubTokenManager struct {
	identity ports.Identity
	err      error
}

func (s *stubTokenManager) Issue(identity ports.Identity) (string, error) {
	return "stub-token", nil
}

func (s *stubTokenManager) Verify(token string) (ports.Identity, error) {
	return s.identity, s.err
}

func TestAuthenticateMissingHeader(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/events", nil)

	authenticate(&stubTokenManager{})(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called, "downstream handler must not run without a token")
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/events", nil)
	req.Header.Set("Authorization", "token-without-scheme")

	authenticate(&stubTokenManager{})(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/events", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	authenticate(&stubTokenManager{err: errors.New("bad token")})(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticateAttachesIdentity(t *testing.T) {
	identity := ports.Identity{Email: "pastor@example.com", UserID: uuid.New()}

	var got ports.Identity
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = identityFrom(r.Context())
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/events", nil)
	req.Header.Set("Authorization", "Bearer valid")

	authenticate(&stubTokenManager{identity: identity})(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, identity, got)
}
