package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawfam_front_end/internal/normalize"
)

// Proxies vendeur : CRUD des annonces (centres, produits, animaux) et
// transitions de statut sur les réservations/commandes/demandes reçues.

func (h *Handler) bindPayload(c *gin.Context) (map[string]interface{}, bool) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return nil, false
	}
	return payload, true
}

func (h *Handler) proxyResponse(c *gin.Context, raw json.RawMessage, err error) {
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}

// --- Garderie ---

func (h *Handler) VendorListMyCenters(c *gin.Context) {
	raw, err := h.Backend.GetMyCenters(c.Request.Context(), c.GetString("token"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"centers": normalize.Centers(raw)})
}

func (h *Handler) VendorListBookings(c *gin.Context) {
	raw, err := h.Backend.GetVendorBookings(c.Request.Context(), c.GetString("token"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": normalize.ExtractList(raw, normalize.KnownListKeys)})
}

func (h *Handler) VendorCreateCenter(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}
	raw, err := h.Backend.CreateCenter(c.Request.Context(), c.GetString("token"), payload)
	h.proxyResponse(c, raw, err)
}

func (h *Handler) VendorUpdateCenter(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}
	raw, err := h.Backend.UpdateCenter(c.Request.Context(), c.GetString("token"), c.Param("id"), payload)
	h.proxyResponse(c, raw, err)
}

func (h *Handler) VendorDeleteCenter(c *gin.Context) {
	raw, err := h.Backend.DeleteCenter(c.Request.Context(), c.GetString("token"), c.Param("id"))
	h.proxyResponse(c, raw, err)
}

func (h *Handler) VendorUpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut requis"})
		return
	}
	raw, err := h.Backend.UpdateBookingStatus(c.Request.Context(), c.GetString("token"), c.Param("id"), input.Status)
	h.proxyResponse(c, raw, err)
}

// --- Accessoires ---

func (h *Handler) VendorListMyProducts(c *gin.Context) {
	raw, err := h.Backend.GetMyProducts(c.Request.Context(), c.GetString("token"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": normalize.Products(raw)})
}

func (h *Handler) VendorListOrders(c *gin.Context) {
	raw, err := h.Backend.GetVendorOrders(c.Request.Context(), c.GetString("token"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": normalize.ExtractList(raw, normalize.KnownListKeys)})
}

func (h *Handler) VendorCreateProduct(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}
	raw, err := h.Backend.CreateProduct(c.Request.Context(), c.GetString("token"), payload)
	h.proxyResponse(c, raw, err)
}

func (h *Handler) VendorUpdateProduct(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}
	raw, err := h.Backend.UpdateProduct(c.Request.Context(), c.GetString("token"), c.Param("id"), payload)
	h.proxyResponse(c, raw, err)
}

func (h *Handler) VendorDeleteProduct(c *gin.Context) {
	raw, err := h.Backend.DeleteProduct(c.Request.Context(), c.GetString("token"), c.Param("id"))
	h.proxyResponse(c, raw, err)
}

func (h *Handler) VendorUpdateOrderStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut requis"})
		return
	}
	raw, err := h.Backend.UpdateOrderStatus(c.Request.Context(), c.GetString("token"), c.Param("id"), input.Status)
	h.proxyResponse(c, raw, err)
}

// --- Adoption ---

func (h *Handler) VendorListMyPets(c *gin.Context) {
	raw, err := h.Backend.GetMyPets(c.Request.Context(), c.GetString("token"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pets": normalize.Pets(raw)})
}

func (h *Handler) VendorListApplications(c *gin.Context) {
	raw, err := h.Backend.GetVendorApplications(c.Request.Context(), c.GetString("token"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": normalize.ExtractList(raw, normalize.KnownListKeys)})
}

func (h *Handler) VendorCreatePet(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}
	raw, err := h.Backend.CreatePet(c.Request.Context(), c.GetString("token"), payload)
	h.proxyResponse(c, raw, err)
}

func (h *Handler) VendorUpdatePet(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}
	raw, err := h.Backend.UpdatePet(c.Request.Context(), c.GetString("token"), c.Param("id"), payload)
	h.proxyResponse(c, raw, err)
}

func (h *Handler) VendorDeletePet(c *gin.Context) {
	raw, err := h.Backend.DeletePet(c.Request.Context(), c.GetString("token"), c.Param("id"))
	h.proxyResponse(c, raw, err)
}

func (h *Handler) VendorUpdateApplicationStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut requis"})
		return
	}
	raw, err := h.Backend.UpdateApplicationStatus(c.Request.Context(), c.GetString("token"), c.Param("id"), input.Status)
	h.proxyResponse(c, raw, err)
}
