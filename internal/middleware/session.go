package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"pawfam_front_end/internal/backend"
	"pawfam_front_end/internal/cache"
)

const SessionCookieName = "pawfam_session"

var cookieStore *sessions.CookieStore

// InitSessionStore configure le store de cookies de session
func InitSessionStore(secret string) {
	cookieStore = sessions.NewCookieStore([]byte(secret))
	cookieStore.MaxAge(86400 * 30)
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	log.Println("✅ Store de sessions initialisé")
}

// Session attache un identifiant de session au contexte, créé à la première
// visite. C'est la clé du panier et des credentials stockés.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := cookieStore.Get(c.Request, SessionCookieName)

		sessionID, ok := session.Values["session_id"].(string)
		if !ok || sessionID == "" {
			sessionID = uuid.NewString()
			session.Values["session_id"] = sessionID
			if err := session.Save(c.Request, c.Writer); err != nil {
				log.Printf("⚠️ Erreur sauvegarde cookie de session: %v", err)
			}
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}

// AuthRequired vérifie que la session porte un token valide. Un token absent
// ou expiré purge les credentials et renvoie 401 — l'UI redemande un login.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
			c.Abort()
			return
		}

		token, user, err := cache.GetSession(sessionID)
		if err != nil || token == "" || user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
			c.Abort()
			return
		}

		// Vérification locale de l'expiration, sans aller-retour backend
		if backend.TokenExpired(token, time.Now()) {
			log.Printf("⚠️ Token expiré pour la session %s — credentials purgés", sessionID)
			_ = cache.DeleteSession(sessionID)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expirée"})
			c.Abort()
			return
		}

		c.Set("token", token)
		c.Set("user_id", user.ID)
		c.Set("email", user.Email)
		c.Set("role", user.Role)
		c.Next()
	}
}

// VendorRequired restreint une route aux comptes vendeur
func VendorRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != "vendor" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Réservé aux vendeurs"})
			c.Abort()
			return
		}
		c.Next()
	}
}
