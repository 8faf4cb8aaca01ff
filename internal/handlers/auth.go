package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawfam_front_end/internal/backend"
	"pawfam_front_end/internal/cache"
)

//
// 🟢 POST /api/auth/login
//
func (h *Handler) Login(c *gin.Context) {
	h.loginFlow(c, h.Backend.Login)
}

//
// 🟢 POST /api/auth/vendor/login
//
func (h *Handler) VendorLogin(c *gin.Context) {
	h.loginFlow(c, h.Backend.VendorLogin)
}

func (h *Handler) loginFlow(c *gin.Context, call func(ctx context.Context, req backend.LoginRequest) (*backend.AuthResponse, error)) {
	var req backend.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
		return
	}

	auth, err := call(c.Request.Context(), req)
	if err != nil {
		h.respondBackendError(c, err)
		return
	}

	sessionID := c.GetString("session_id")
	if err := cache.StoreSession(sessionID, auth.Token, auth.User); err != nil {
		log.Printf("❌ Erreur stockage session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur d'ouverture de session"})
		return
	}

	log.Printf("✅ Connexion réussie: %s (%s)", auth.User.Email, auth.User.Role)
	c.JSON(http.StatusOK, gin.H{"user": auth.User})
}

//
// 🟢 POST /api/auth/register
//
func (h *Handler) Register(c *gin.Context) {
	h.registerFlow(c, h.Backend.Register)
}

//
// 🟢 POST /api/auth/vendor/register
//
func (h *Handler) VendorRegister(c *gin.Context) {
	h.registerFlow(c, h.Backend.VendorRegister)
}

func (h *Handler) registerFlow(c *gin.Context, call func(ctx context.Context, req backend.RegisterRequest) (*backend.AuthResponse, error)) {
	var req backend.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données d'inscription invalides"})
		return
	}

	auth, err := call(c.Request.Context(), req)
	if err != nil {
		h.respondBackendError(c, err)
		return
	}

	sessionID := c.GetString("session_id")
	if err := cache.StoreSession(sessionID, auth.Token, auth.User); err != nil {
		log.Printf("❌ Erreur stockage session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur d'ouverture de session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": auth.User})
}

//
// 🟢 GET /api/auth/me — revalide le token stocké contre le backend
//
func (h *Handler) Me(c *gin.Context) {
	token := c.GetString("token")

	user, err := h.Backend.Me(c.Request.Context(), token)
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

//
// 🟢 POST /api/auth/logout — purge credentials + panier de la session
//
func (h *Handler) Logout(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if err := cache.DeleteSession(sessionID); err != nil {
		log.Printf("⚠️ Erreur purge session: %v", err)
	}
	h.Carts.Drop(sessionID)
	h.resets.drop(sessionID)
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}
