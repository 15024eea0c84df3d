package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	setClaims := func(ctx *gin.Context) {
		if uid := ctx.GetHeader("X-Test-UID"); uid != "" {
			ctx.Set(claimsContextKey, &TokenClaims{UID: uid})
		}
	}
	r.POST("/toggle", setClaims, rl.Limit(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	r.GET("/list", setClaims, func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, method, path, uid string) int {
	req := httptest.NewRequest(method, path, nil)
	if uid != "" {
		req.Header.Set("X-Test-UID", uid)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_Limit(t *testing.T) {
	r := newLimitedRouter(NewRateLimiter(1))

	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/toggle", "u1"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, http.MethodPost, "/toggle", "u1"))
}

func TestRateLimiter_Limit_PerUser(t *testing.T) {
	r := newLimitedRouter(NewRateLimiter(1))

	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/toggle", "u1"))
	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/toggle", "u2"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, http.MethodPost, "/toggle", "u1"))
}

func TestRateLimiter_DoesNotThrottleUnlimitedRoutes(t *testing.T) {
	r := newLimitedRouter(NewRateLimiter(1))

	// Reads share the router but not the limiter.
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doRequest(r, http.MethodGet, "/list", "u1"))
	}
}
