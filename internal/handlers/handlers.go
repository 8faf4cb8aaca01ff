package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pawfam_front_end/internal/backend"
	"pawfam_front_end/internal/cache"
	"pawfam_front_end/internal/cart"
)

// Handler porte les collaborateurs injectés : le client de l'API PawFam et le
// registre des paniers. Pas de singleton ambiant — tout passe par ici.
type Handler struct {
	Backend *backend.Client
	Carts   *cart.Registry
	Now     func() time.Time // horloge injectable pour les tests

	resets *resetRegistry
}

func New(client *backend.Client, carts *cart.Registry) *Handler {
	return &Handler{
		Backend: client,
		Carts:   carts,
		Now:     time.Now,
		resets:  newResetRegistry(),
	}
}

// respondBackendError résout une erreur d'appel backend selon la taxonomie :
// 401 → purge des credentials, erreur applicative → message (+ erreurs par
// champ le cas échéant), sinon erreur transport générique. Rien ne remonte
// au-delà du handler.
func (h *Handler) respondBackendError(c *gin.Context, err error) {
	sessionID := c.GetString("session_id")

	if errors.Is(err, backend.ErrUnauthorized) {
		// Le panier est conservé : seuls les credentials sont purgés,
		// l'utilisateur peut se reconnecter et re-soumettre
		if sessionID != "" {
			_ = cache.DeleteSession(sessionID)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session invalide, veuillez vous reconnecter"})
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status == 0 {
			status = http.StatusBadGateway
		}
		if len(apiErr.Errors) > 0 {
			c.JSON(status, gin.H{"errors": apiErr.FieldErrors(), "error": apiErr.Error()})
			return
		}
		c.JSON(status, gin.H{"error": apiErr.Error()})
		return
	}

	// Pas de réponse du tout → erreur réseau
	log.Printf("❌ Erreur réseau vers le backend: %v", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "Impossible de joindre le serveur. Vérifiez que le backend est démarré"})
}

// today retourne la date du jour en heure locale, format AAAA-MM-JJ
func (h *Handler) today() string {
	return h.Now().Format("2006-01-02")
}

// sessionToken retourne le token de la session s'il existe — pour les routes
// publiques (listes) qui portent le bearer quand l'utilisateur est connecté
func (h *Handler) sessionToken(c *gin.Context) string {
	if token := c.GetString("token"); token != "" {
		return token
	}
	token, _, _ := cache.GetSession(c.GetString("session_id"))
	return token
}
