package handler

import (
	"github.com/buntagonalprism/firebase-auth-utils/internal/audit"
	"github.com/buntagonalprism/firebase-auth-utils/internal/auth/signin"
	"github.com/buntagonalprism/firebase-auth-utils/internal/middleware"
	"github.com/buntagonalprism/firebase-auth-utils/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the sign-in normalizer over HTTP. It owns no auth
// logic; it binds requests, calls the service, and writes outcomes.
type Handler struct {
	service *signin.Service
	audit   audit.Recorder
}

func NewHandler(service *signin.Service, recorder audit.Recorder) *Handler {
	return &Handler{
		service: service,
		audit:   recorder,
	}
}

// RegisterRoutes mounts the auth endpoints. Email credential endpoints
// sit behind the rate limiter; the social redirect endpoints do not, the
// provider's own consent screen is the bottleneck there.
func (h *Handler) RegisterRoutes(r *gin.Engine, limiter ratelimit.Limiter) {
	limited := r.Group("/auth")
	limited.Use(middleware.RateLimit(limiter))
	limited.POST("/signup", h.SignUp)
	limited.POST("/signin", h.SignIn)

	r.GET("/auth/social/:provider/start", h.SocialStart)
	r.GET("/auth/social/:provider/callback", h.SocialCallback)
	r.GET("/auth/token", h.Token)
	r.POST("/auth/signout", h.SignOutAll)
	r.DELETE("/auth/signout/:provider", h.SignOutProvider)
}
