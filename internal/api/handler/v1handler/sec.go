package v1handler

import (
	"context"
	"crypto/rsa"
	"net/http"
	"strings"

	"urlshot/internal/config"
	"urlshot/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
)

// SecHandlerOptions configure bearer-token authentication for the v1 API.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key used to verify tokens.
	// Empty disables authentication.
	PublicKey string
}

// NewSecHandlerOptions maps the application configuration onto SecHandlerOptions.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies RS256 bearer tokens and attaches the token subject to
// the request context.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler constructs a SecHandler. With no public key configured, the
// returned handler admits every request.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not parse RSA public key")
	}

	return &SecHandler{publicKey: key}, nil
}

// subjectKey is an unexported context key type for the authenticated subject.
type subjectKey struct{}

// SubjectFromContext returns the authenticated token subject, if any.
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(subjectKey{}).(string)

	return subject
}

// Middleware wraps next with bearer-token verification.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	if s.publicKey == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" || raw == r.Header.Get("Authorization") {
			writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			return s.publicKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
		if err != nil || !token.Valid {
			writeError(ctx, w, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid bearer token"))

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, subjectKey{}, claims.Subject)))
	})
}
