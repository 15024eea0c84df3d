package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Handlers on protected routes must answer 401, not panic, when a route is
// wired without the auth middleware and no claims are on the context.
func TestProtectedHandlers_MissingClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)

	favorite := &FavoriteController{}
	bookmark := &BookmarkController{}
	user := &UserController{}

	r := gin.New()
	r.POST("/favorites", favorite.Toggle)
	r.GET("/favorites", favorite.List)
	r.POST("/bookmarks", bookmark.Toggle)
	r.GET("/bookmarks", bookmark.List)
	r.GET("/auth/user", user.Me)
	r.PATCH("/auth/user", user.Update)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/favorites"},
		{http.MethodGet, "/favorites"},
		{http.MethodPost, "/bookmarks"},
		{http.MethodGet, "/bookmarks"},
		{http.MethodGet, "/auth/user"},
		{http.MethodPatch, "/auth/user"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, strings.NewReader("{}"))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "Unauthorized")
		})
	}
}
