package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pawfam_front_end/internal/models"
)

//
// 🟢 GET /api/cart
//
func (h *Handler) GetCart(c *gin.Context) {
	store := h.Carts.ForSession(c.GetString("session_id"))
	c.JSON(http.StatusOK, gin.H{
		"items":     store.Lines(),
		"total":     store.Total(),
		"itemCount": store.ItemCount(),
		"toast":     store.Toast(),
	})
}

//
// 🟢 POST /api/cart/add — le produit vient de la page (liste déjà normalisée)
//
func (h *Handler) AddToCart(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil || product.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit invalide"})
		return
	}

	store := h.Carts.ForSession(c.GetString("session_id"))
	store.AddItem(product)

	c.JSON(http.StatusOK, gin.H{
		"items":     store.Lines(),
		"itemCount": store.ItemCount(),
		"toast":     store.Toast(),
	})
}

//
// 🟢 PATCH /api/cart/items/:productId — quantité ≤ 0 = suppression
//
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	store := h.Carts.ForSession(c.GetString("session_id"))
	store.SetQuantity(c.Param("productId"), input.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"items":     store.Lines(),
		"total":     store.Total(),
		"itemCount": store.ItemCount(),
	})
}

//
// 🟢 DELETE /api/cart/items/:productId — idempotent si la ligne est absente
//
func (h *Handler) RemoveFromCart(c *gin.Context) {
	store := h.Carts.ForSession(c.GetString("session_id"))
	store.RemoveItem(c.Param("productId"))

	c.JSON(http.StatusOK, gin.H{
		"items":     store.Lines(),
		"total":     store.Total(),
		"itemCount": store.ItemCount(),
	})
}

//
// 🟢 DELETE /api/cart
//
func (h *Handler) ClearCart(c *gin.Context) {
	store := h.Carts.ForSession(c.GetString("session_id"))
	store.Clear()
	c.JSON(http.StatusOK, gin.H{"items": []models.CartLine{}, "total": 0, "itemCount": 0})
}

//
// 🟢 POST /api/cart/toast/dismiss — fermeture manuelle de la notification
//
func (h *Handler) DismissToast(c *gin.Context) {
	store := h.Carts.ForSession(c.GetString("session_id"))
	store.DismissToast()
	c.JSON(http.StatusOK, gin.H{"toast": store.Toast()})
}
