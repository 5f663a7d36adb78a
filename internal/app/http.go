package app

import (
	"context"

	"github.com/buntagonalprism/firebase-auth-utils/internal/audit"
	"github.com/buntagonalprism/firebase-auth-utils/internal/auth/backend/identitykit"
	"github.com/buntagonalprism/firebase-auth-utils/internal/auth/handler"
	"github.com/buntagonalprism/firebase-auth-utils/internal/auth/provider"
	"github.com/buntagonalprism/firebase-auth-utils/internal/auth/provider/facebook"
	"github.com/buntagonalprism/firebase-auth-utils/internal/auth/provider/google"
	"github.com/buntagonalprism/firebase-auth-utils/internal/auth/signin"
	"github.com/buntagonalprism/firebase-auth-utils/internal/config"
	"github.com/buntagonalprism/firebase-auth-utils/internal/middleware"
	"github.com/buntagonalprism/firebase-auth-utils/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	identityBackend, err := identitykit.New(cfg.IdentityAPIURL, cfg.IdentityAPIKey)
	if err != nil {
		return nil, nil, err
	}

	googleProvider, err := google.New(
		ctx,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
	)
	if err != nil {
		return nil, nil, err
	}

	facebookProvider, err := facebook.New(
		cfg.FacebookClientID,
		cfg.FacebookClientSecret,
		cfg.FacebookRedirectURL,
	)
	if err != nil {
		return nil, nil, err
	}

	registry := provider.NewRegistry(
		googleProvider,
		facebookProvider,
	)

	service := signin.NewService(identityBackend, registry)

	var recorder audit.Recorder = audit.NewNopRecorder()
	if infra.DB != nil {
		recorder = audit.NewDBRecorder(infra.DB)
	}

	var limiter ratelimit.Limiter = ratelimit.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	if infra.Redis != nil {
		limiter = ratelimit.NewRedisLimiter(infra.Redis.Client, "rl:", cfg.RateLimitMax, cfg.RateLimitWindow)
	}

	authHandler := handler.NewHandler(service, recorder)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	authHandler.RegisterRoutes(router, limiter)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router, infra.Close, nil
}
