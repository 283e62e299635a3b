package auth

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "approvaldash/pkg/domain"
	"approvaldash/pkg/platform/httputil"
	"approvaldash/pkg/requestcontext"
	"approvaldash/pkg/testutil"
)

type stubValidator struct {
	claims *JWTClaims
	err    error
	seen   string
}

func (s *stubValidator) ValidateToken(token string) (*JWTClaims, error) {
	s.seen = token
	return s.claims, s.err
}

func protected(t *testing.T, validator JWTValidator, reached *id.UserID) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = requestcontext.UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	return RequireAuth(validator, nil)(next)
}

func TestRequireAuth(t *testing.T) {
	t.Run("valid token stores user id", func(t *testing.T) {
		validator := &stubValidator{claims: &JWTClaims{UserID: "42"}}
		var reached id.UserID
		rr := testutil.DoRequest(protected(t, validator, &reached),
			testutil.NewAuthedRequest(t, http.MethodGet, "/api/dashboard/statistics", "tok"))

		require.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, id.UserID(42), reached)
		assert.Equal(t, "tok", validator.seen)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		var reached id.UserID
		rr := testutil.DoRequest(protected(t, &stubValidator{}, &reached),
			testutil.NewRequest(t, http.MethodGet, "/api/dashboard/statistics"))

		testutil.AssertStatusAndError(t, rr, http.StatusUnauthorized, httputil.CodeUnauthorized)
		assert.True(t, reached.IsNil())
	})

	t.Run("non bearer scheme is rejected", func(t *testing.T) {
		var reached id.UserID
		req := testutil.NewRequest(t, http.MethodGet, "/api/dashboard/statistics")
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rr := testutil.DoRequest(protected(t, &stubValidator{}, &reached), req)

		testutil.AssertStatusAndError(t, rr, http.StatusUnauthorized, httputil.CodeUnauthorized)
	})

	t.Run("validator error is rejected", func(t *testing.T) {
		var reached id.UserID
		validator := &stubValidator{err: errors.New("signature mismatch")}
		rr := testutil.DoRequest(protected(t, validator, &reached),
			testutil.NewAuthedRequest(t, http.MethodGet, "/api/dashboard/statistics", "tok"))

		testutil.AssertStatusAndError(t, rr, http.StatusUnauthorized, httputil.CodeUnauthorized)
		assert.True(t, reached.IsNil())
	})

	t.Run("non numeric subject is rejected", func(t *testing.T) {
		var reached id.UserID
		validator := &stubValidator{claims: &JWTClaims{UserID: "alice"}}
		rr := testutil.DoRequest(protected(t, validator, &reached),
			testutil.NewAuthedRequest(t, http.MethodGet, "/api/dashboard/statistics", "tok"))

		testutil.AssertStatusAndError(t, rr, http.StatusUnauthorized, httputil.CodeUnauthorized)
		assert.True(t, reached.IsNil())
	})
}
