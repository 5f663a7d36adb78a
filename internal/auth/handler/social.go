package handler

import (
	"net/http"

	"github.com/buntagonalprism/firebase-auth-utils/internal/audit"
	"github.com/buntagonalprism/firebase-auth-utils/internal/auth/provider"
	"github.com/buntagonalprism/firebase-auth-utils/internal/logger"
	"github.com/buntagonalprism/firebase-auth-utils/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SocialStart(c *gin.Context) {
	providerName := c.Param("provider")

	state := generateState(c)
	_, codeChallenge := generatePKCE(c)

	authURL, err := h.service.StartSocialSignIn(
		c.Request.Context(),
		providerName,
		state,
		codeChallenge,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown social provider"})
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

func (h *Handler) SocialCallback(c *gin.Context) {
	providerName := c.Param("provider")

	if !validateState(c) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid state"})
		return
	}

	cb := provider.Callback{
		Code:     c.Query("code"),
		State:    c.Query("state"),
		Verifier: getPKCEVerifier(c),
		Err:      c.Query("error"),
	}

	outcome, err := h.service.CompleteSocialSignIn(c.Request.Context(), providerName, cb)
	if err != nil {
		logger.Error("social sign in failed unexpectedly", map[string]any{
			"request_id": middleware.RequestIDFrom(c),
			"provider":   providerName,
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadGateway, gin.H{"error": "authentication service failure"})
		return
	}

	h.audit.Record(c.Request.Context(), audit.Event{
		RequestID:   middleware.RequestIDFrom(c),
		Operation:   "social_sign_in",
		Provider:    providerName,
		Status:      string(outcome.Status),
		HadIdentity: outcome.Succeeded(),
	})

	code := http.StatusOK
	if !outcome.Succeeded() {
		// cancellation is the only non-success status here
		code = http.StatusAccepted
	}
	c.JSON(code, outcome)
}
