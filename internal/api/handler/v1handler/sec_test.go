package v1handler_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"urlshot/internal/api/handler/v1handler"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func generateKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	return key, string(publicPEM)
}

func signToken(t *testing.T, key *rsa.PrivateKey, subject string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)

	return signed
}

func TestSecHandler_Middleware(t *testing.T) {
	key, publicPEM := generateKeyPair(t)

	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: publicPEM})
	require.NoError(t, err)

	var gotSubject string
	protected := sec.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject = v1handler.SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/captures", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing bearer prefix", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/captures", nil)
		req.Header.Set("Authorization", signToken(t, key, "tester"))

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with wrong key", func(t *testing.T) {
		otherKey, _ := generateKeyPair(t)
		req := httptest.NewRequest(http.MethodGet, "/v1/captures", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, otherKey, "tester"))

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
			Subject:   "tester",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		})
		signed, err := token.SignedString(key)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/captures", nil)
		req.Header.Set("Authorization", "Bearer "+signed)

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/captures", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, key, "tester"))

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "tester", gotSubject)
	})
}

func TestSecHandler_NoKeyAdmitsAll(t *testing.T) {
	sec, err := v1handler.NewSecHandler(nil)
	require.NoError(t, err)

	handler := sec.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/captures", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSecHandler_RejectsMalformedKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}
