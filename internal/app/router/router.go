// Package router はHTTPルーティングを定義します。
package router

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "devconnector_backend/internal/feature/auth/transport/handler"
	postshandler "devconnector_backend/internal/feature/posts/transport/handler"
	profilehandler "devconnector_backend/internal/feature/profile/transport/handler"
	platformhandler "devconnector_backend/internal/platform/http/handler"
	"devconnector_backend/internal/platform/http/middleware"
	jwtmw "devconnector_backend/internal/platform/jwt"
	"devconnector_backend/internal/shared/ratelimiter"
)

// Handlers groups the feature handlers mounted by NewRouter.
type Handlers struct {
	Auth    *authhandler.AuthHandler
	Profile *profilehandler.ProfileHandler
	Posts   *postshandler.PostsHandler
	Health  *platformhandler.HealthHandler
}

// Options configures the cross-cutting middlewares.
type Options struct {
	Verifier    *jwtmw.Verifier
	AuthLimiter *ratelimiter.PerClient // nil disables limiting on credential routes
	CORSOrigins []string
}

// NewRouter builds the gin engine with every route.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery(), cors.New(corsConfig(opts.CORSOrigins)))

	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)

	authRequired := jwtmw.AuthRequired(opts.Verifier)
	limit := func(c *gin.Context) { c.Next() }
	if opts.AuthLimiter != nil {
		limit = opts.AuthLimiter.Middleware()
	}

	api := r.Group("/api")

	// 新規ユーザー登録 / ログイン（JWT 発行）
	api.POST("/users", limit, h.Auth.Register)
	api.POST("/auth", limit, h.Auth.Login)
	api.GET("/auth", authRequired, h.Auth.CurrentUser)

	profile := api.Group("/profile")
	{
		// 認証不要
		profile.GET("", h.Profile.List)
		profile.GET("/user/:user_id", h.Profile.ByUser)
		profile.GET("/github/:username", h.Profile.GitHubRepos)

		// 認証必須
		profile.GET("/me", authRequired, h.Profile.Me)
		profile.POST("", authRequired, h.Profile.Upsert)
		profile.DELETE("", authRequired, h.Profile.DeleteAccount)
		profile.PUT("/xp", authRequired, h.Profile.AddExperience)
		profile.DELETE("/xp/:exp_id", authRequired, h.Profile.DeleteExperience)
		profile.PUT("/edu", authRequired, h.Profile.AddEducation)
		profile.DELETE("/edu/:edu_id", authRequired, h.Profile.DeleteEducation)
	}

	// 投稿はすべて認証必須
	posts := api.Group("/posts", authRequired)
	{
		posts.GET("", h.Posts.List)
		posts.POST("", h.Posts.Create)
		posts.GET("/:id", h.Posts.Get)
		posts.DELETE("/:id", h.Posts.Delete)
		posts.PUT("/like/:id", h.Posts.Like)
		posts.PUT("/unlike/:id", h.Posts.Unlike)
		posts.POST("/comment/:id", h.Posts.AddComment)
		posts.DELETE("/comment/:id/:comment_id", h.Posts.DeleteComment)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", jwtmw.HeaderAuthToken},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
