package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pawfam_front_end/internal/cache"
)

const (
	LoginMaxAttempts = 5
	APIMaxRequests   = 100 // par minute pour les endpoints généraux
	CartMaxAdds      = 20  // ajouts panier par minute

	LoginCooldown = 15 * time.Minute
	APICooldown   = 1 * time.Minute
)

// LoginRateLimit limite les tentatives de connexion par email
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Lire le body sans le consommer
		bodyBytes, _ := io.ReadAll(c.Request.Body)

		var input struct {
			Email string `json:"email"`
		}

		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			c.Next()
			return
		}

		// Remettre le body pour les handlers suivants
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		key := "login_attempts:" + input.Email
		attempts, _ := cache.RedisClient.Get(c.Request.Context(), key).Int()
		if attempts >= LoginMaxAttempts {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives échouées. Réessayez dans %d minutes", int(LoginCooldown.Minutes())),
				"retry_after": int(LoginCooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		// Login échoué → incrémenter, réussi → réinitialiser
		if c.Writer.Status() == http.StatusUnauthorized {
			cache.IncrementRateLimit(key, LoginCooldown)
		} else if c.Writer.Status() == http.StatusOK {
			cache.RedisClient.Del(c.Request.Context(), key)
		}
	}
}

// APIRateLimit limite le nombre de requêtes par IP (général)
func APIRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "api_requests:" + c.ClientIP()

		requests, _ := cache.RedisClient.Get(c.Request.Context(), key).Int()
		if requests >= APIMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop de requêtes. Réessayez dans 1 minute",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		cache.IncrementRateLimit(key, APICooldown)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", APIMaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", APIMaxRequests-requests-1))
		c.Next()
	}
}

// CartRateLimit limite les ajouts au panier (anti-spam)
func CartRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if sessionID == "" {
			c.Next()
			return
		}

		key := "cart_add:" + sessionID
		requests, _ := cache.RedisClient.Get(c.Request.Context(), key).Int()
		if requests >= CartMaxAdds {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop d'ajouts au panier. Ralentissez un peu",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		cache.IncrementRateLimit(key, 1*time.Minute)
		c.Next()
	}
}
