package helpers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ksugita/tenrankai/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeVerifier struct {
	claims *TokenClaims
	err    error
}

func (v *fakeVerifier) Verify(ctx context.Context, token string) (*TokenClaims, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

func newAuthRouter(verifier TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", Authenticate(verifier), func(ctx *gin.Context) {
		claims := GetClaims(ctx)
		ctx.JSON(http.StatusOK, gin.H{"uid": claims.UID})
	})
	return r
}

func TestAuthenticate(t *testing.T) {
	r := newAuthRouter(&fakeVerifier{claims: &TokenClaims{UID: "user-1"}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"uid":"user-1"}`, w.Body.String())
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	r := newAuthRouter(&fakeVerifier{claims: &TokenClaims{UID: "user-1"}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	r := newAuthRouter(&fakeVerifier{claims: &TokenClaims{UID: "user-1"}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	r := newAuthRouter(&fakeVerifier{err: entity.NewUnauthorizedError("expired")})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}
