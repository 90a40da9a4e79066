package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authhandler "devconnector_backend/internal/feature/auth/transport/handler"
	postshandler "devconnector_backend/internal/feature/posts/transport/handler"
	profilehandler "devconnector_backend/internal/feature/profile/transport/handler"
	platformhandler "devconnector_backend/internal/platform/http/handler"
	jwtmw "devconnector_backend/internal/platform/jwt"
	"devconnector_backend/internal/shared/ratelimiter"
)

// newTestRouter はユースケースを持たないハンドラーでルーターを組み立てます。
// 認証やレート制限で止まるリクエストのみを検証するため、ユースケースには到達しません。
func newTestRouter(opts Options) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if opts.Verifier == nil {
		opts.Verifier = jwtmw.NewVerifier("router-test-secret")
	}
	return NewRouter(Handlers{
		Auth:    authhandler.NewAuthHandler(nil),
		Profile: profilehandler.NewProfileHandler(nil),
		Posts:   postshandler.NewPostsHandler(nil),
		Health:  platformhandler.NewHealthHandler(nil),
	}, opts)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(Options{})

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/auth"},
		{http.MethodGet, "/api/profile/me"},
		{http.MethodPost, "/api/profile"},
		{http.MethodDelete, "/api/profile"},
		{http.MethodPut, "/api/profile/xp"},
		{http.MethodDelete, "/api/profile/xp/abc"},
		{http.MethodPut, "/api/profile/edu"},
		{http.MethodDelete, "/api/profile/edu/abc"},
		{http.MethodGet, "/api/posts"},
		{http.MethodPost, "/api/posts"},
		{http.MethodGet, "/api/posts/1"},
		{http.MethodDelete, "/api/posts/1"},
		{http.MethodPut, "/api/posts/like/1"},
		{http.MethodPut, "/api/posts/unlike/1"},
		{http.MethodPost, "/api/posts/comment/1"},
		{http.MethodDelete, "/api/posts/comment/1/abc"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(rt.method, rt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRouter_Healthz(t *testing.T) {
	r := newTestRouter(Options{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_CredentialRoutesAreRateLimited(t *testing.T) {
	r := newTestRouter(Options{AuthLimiter: ratelimiter.NewPerClient(2)})

	send := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w.Code
	}

	// 空のボディはバリデーションで弾かれ、ユースケースには到達しない
	assert.Equal(t, http.StatusBadRequest, send())
	assert.Equal(t, http.StatusBadRequest, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

func TestRouter_CORS(t *testing.T) {
	t.Run("preflight allows auth token header", func(t *testing.T) {
		r := newTestRouter(Options{CORSOrigins: []string{"http://localhost:3000"}})

		req := httptest.NewRequest(http.MethodOptions, "/api/posts", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "x-auth-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Allow-Headers")), "x-auth-token")
	})

	t.Run("unknown origin is rejected", func(t *testing.T) {
		r := newTestRouter(Options{CORSOrigins: []string{"http://localhost:3000"}})

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		r := newTestRouter(Options{CORSOrigins: []string{"*"}})

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "http://anywhere.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
