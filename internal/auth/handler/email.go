package handler

import (
	"net/http"

	"github.com/buntagonalprism/firebase-auth-utils/internal/audit"
	"github.com/buntagonalprism/firebase-auth-utils/internal/logger"
	"github.com/buntagonalprism/firebase-auth-utils/internal/middleware"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) SignUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	outcome, err := h.service.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Error("sign up failed unexpectedly", map[string]any{
			"request_id": middleware.RequestIDFrom(c),
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadGateway, gin.H{"error": "authentication service failure"})
		return
	}

	h.audit.Record(c.Request.Context(), audit.Event{
		RequestID:   middleware.RequestIDFrom(c),
		Operation:   "sign_up",
		Status:      string(outcome.Status),
		HadIdentity: outcome.Succeeded(),
	})

	code := http.StatusCreated
	if !outcome.Succeeded() {
		code = http.StatusUnprocessableEntity
	}
	c.JSON(code, outcome)
}

func (h *Handler) SignIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	outcome, err := h.service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Error("sign in failed unexpectedly", map[string]any{
			"request_id": middleware.RequestIDFrom(c),
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadGateway, gin.H{"error": "authentication service failure"})
		return
	}

	h.audit.Record(c.Request.Context(), audit.Event{
		RequestID:   middleware.RequestIDFrom(c),
		Operation:   "sign_in",
		Status:      string(outcome.Status),
		HadIdentity: outcome.Succeeded(),
	})

	code := http.StatusOK
	if !outcome.Succeeded() {
		code = http.StatusUnauthorized
	}
	c.JSON(code, outcome)
}

func (h *Handler) Token(c *gin.Context) {
	token, ok := h.service.IdentityToken(c.Request.Context())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no user signed in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id_token": token})
}

func (h *Handler) SignOutAll(c *gin.Context) {
	if err := h.service.SignOutAll(c.Request.Context()); err != nil {
		logger.Error("sign out failed", map[string]any{
			"request_id": middleware.RequestIDFrom(c),
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadGateway, gin.H{"error": "sign out failure"})
		return
	}

	h.audit.Record(c.Request.Context(), audit.Event{
		RequestID: middleware.RequestIDFrom(c),
		Operation: "sign_out",
		Status:    "signed_out",
	})

	c.Status(http.StatusNoContent)
}

func (h *Handler) SignOutProvider(c *gin.Context) {
	name := c.Param("provider")
	if err := h.service.SignOutProvider(c.Request.Context(), name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
