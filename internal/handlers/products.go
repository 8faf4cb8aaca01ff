package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pawfam_front_end/internal/checkout"
	"pawfam_front_end/internal/models"
	"pawfam_front_end/internal/normalize"
)

//
// 🟢 GET /api/products — liste des accessoires publiés par les vendeurs,
// coercée en forme canonique pour l'affichage
//
func (h *Handler) ListProducts(c *gin.Context) {
	raw, err := h.Backend.GetProducts(c.Request.Context(), h.sessionToken(c))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": normalize.Products(raw)})
}

//
// 🟢 GET /api/orders — historique des commandes, triable par date ou montant
// (?sortBy=date|totalAmount&order=asc|desc)
//
func (h *Handler) ListOrders(c *gin.Context) {
	raw, err := h.Backend.GetOrders(c.Request.Context(), c.GetString("token"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	orders := normalize.ExtractList(raw, normalize.KnownListKeys)
	orders = normalize.SortList(orders, c.Query("sortBy"), c.Query("order"))
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

//
// 🟢 PUT /api/orders/:id/address — modification de l'adresse de livraison
//
func (h *Handler) UpdateOrderAddress(c *gin.Context) {
	var address models.ShippingAddress
	if err := c.ShouldBindJSON(&address); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adresse invalide"})
		return
	}

	// mêmes règles que le checkout
	errs := models.ErrorMap{}
	fields := map[string]string{
		"fullName": address.FullName,
		"email":    address.Email,
		"address":  address.Address,
		"city":     address.City,
		"state":    address.State,
		"zipCode":  address.ZipCode,
	}
	for name, value := range fields {
		if msg := checkout.ValidateField(name, value, h.Now()); msg != "" {
			errs[name] = msg
		}
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	raw, err := h.Backend.UpdateOrderAddress(c.Request.Context(), c.GetString("token"), c.Param("id"), address)
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}

//
// 🟢 PATCH /api/orders/:id/cancel
//
func (h *Handler) CancelOrder(c *gin.Context) {
	raw, err := h.Backend.CancelOrder(c.Request.Context(), c.GetString("token"), c.Param("id"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}

//
// 🟢 DELETE /api/orders/:id
//
func (h *Handler) DeleteOrder(c *gin.Context) {
	raw, err := h.Backend.DeleteOrder(c.Request.Context(), c.GetString("token"), c.Param("id"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}
