package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pawfam_front_end/internal/models"
)

//
// 🟢 GET /api/profile
//
func (h *Handler) GetProfile(c *gin.Context) {
	raw, err := h.Backend.GetProfile(c.Request.Context(), c.GetString("token"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}

//
// 🟢 POST /api/profile
//
func (h *Handler) CreateProfile(c *gin.Context) {
	var profile models.CustomerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if len(strings.TrimSpace(profile.ResidentialAddress)) < 10 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"residentialAddress": "L'adresse doit contenir au moins 10 caractères"}})
		return
	}

	raw, err := h.Backend.CreateProfile(c.Request.Context(), c.GetString("token"), profile)
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, raw)
}

//
// 🟢 PUT /api/profile
//
func (h *Handler) UpdateProfile(c *gin.Context) {
	var profile models.CustomerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if len(strings.TrimSpace(profile.ResidentialAddress)) < 10 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"residentialAddress": "L'adresse doit contenir au moins 10 caractères"}})
		return
	}

	raw, err := h.Backend.UpdateProfile(c.Request.Context(), c.GetString("token"), profile)
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}

//
// 🟢 DELETE /api/profile
//
func (h *Handler) DeleteProfile(c *gin.Context) {
	raw, err := h.Backend.DeleteProfile(c.Request.Context(), c.GetString("token"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}

// --- Profil vendeur (adresse de correspondance) ---

//
// 🟢 GET /api/vendor-profile
//
func (h *Handler) GetVendorProfile(c *gin.Context) {
	raw, err := h.Backend.GetVendorProfile(c.Request.Context(), c.GetString("token"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}

//
// 🟢 POST /api/vendor-profile
//
func (h *Handler) CreateVendorProfile(c *gin.Context) {
	var profile models.VendorProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if len(strings.TrimSpace(profile.CommunicationAddress)) < 10 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"communicationAddress": "L'adresse doit contenir au moins 10 caractères"}})
		return
	}

	raw, err := h.Backend.CreateVendorProfile(c.Request.Context(), c.GetString("token"), profile)
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, raw)
}

//
// 🟢 PUT /api/vendor-profile
//
func (h *Handler) UpdateVendorProfile(c *gin.Context) {
	var profile models.VendorProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if len(strings.TrimSpace(profile.CommunicationAddress)) < 10 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"communicationAddress": "L'adresse doit contenir au moins 10 caractères"}})
		return
	}

	raw, err := h.Backend.UpdateVendorProfile(c.Request.Context(), c.GetString("token"), profile)
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}

//
// 🟢 DELETE /api/vendor-profile
//
func (h *Handler) DeleteVendorProfile(c *gin.Context) {
	raw, err := h.Backend.DeleteVendorProfile(c.Request.Context(), c.GetString("token"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}
