package di

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"devconnector_backend/internal/app/router"
	authadapters "devconnector_backend/internal/feature/auth/adapters"
	authentity "devconnector_backend/internal/feature/auth/domain/entity"
	authhandler "devconnector_backend/internal/feature/auth/transport/handler"
	authusecase "devconnector_backend/internal/feature/auth/usecase"
	postsadapters "devconnector_backend/internal/feature/posts/adapters"
	postshandler "devconnector_backend/internal/feature/posts/transport/handler"
	postsusecase "devconnector_backend/internal/feature/posts/usecase"
	profileadapters "devconnector_backend/internal/feature/profile/adapters"
	profilehandler "devconnector_backend/internal/feature/profile/transport/handler"
	profileusecase "devconnector_backend/internal/feature/profile/usecase"
	"devconnector_backend/internal/platform/config"
	platformhandler "devconnector_backend/internal/platform/http/handler"
	jwtmw "devconnector_backend/internal/platform/jwt"
	"devconnector_backend/internal/shared/ratelimiter"
)

// Models lists the gorm models whose tables the service needs.
func Models() []any {
	return []any{
		&authentity.User{},
		&profileadapters.ProfileModel{},
		&postsadapters.PostModel{},
	}
}

// NewRouter wires repositories, usecases and handlers into a ready engine.
// fetcher overrides the GitHub client when non-nil.
func NewRouter(cfg *config.Config, db *gorm.DB, rdb *redis.Client, fetcher profileusecase.RepoFetcher) (*gin.Engine, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if fetcher == nil {
		fetcher = NewRepoFetcher(cfg, rdb)
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	profileRepo := profileadapters.NewProfileRepository(db)
	postRepo := postsadapters.NewPostRepository(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiresIn))
	profileUC := profileusecase.NewProfileUsecase(
		profileRepo,
		profileadapters.NewOwnerLookup(db),
		profileadapters.NewAccountDeleter(db),
		fetcher,
	)
	postsUC := postsusecase.NewPostsUsecase(postRepo, postsadapters.NewAuthorLookup(db))

	// Handler
	handlers := router.Handlers{
		Auth:    authhandler.NewAuthHandler(authUC),
		Profile: profilehandler.NewProfileHandler(profileUC),
		Posts:   postshandler.NewPostsHandler(postsUC),
		Health:  platformhandler.NewHealthHandler(sqlDB),
	}

	return router.NewRouter(handlers, router.Options{
		Verifier:    jwtmw.NewVerifier(cfg.JWTSecret),
		AuthLimiter: ratelimiter.NewPerClient(cfg.AuthRateLimitRPM),
		CORSOrigins: cfg.CORSOrigins,
	}), nil
}
