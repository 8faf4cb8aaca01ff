package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pawfam_front_end/internal/booking"
	"pawfam_front_end/internal/models"
	"pawfam_front_end/internal/normalize"
)

//
// 🟢 GET /api/daycare/centers — centres de garderie, forme canonique
//
func (h *Handler) ListCenters(c *gin.Context) {
	raw, err := h.Backend.GetCenters(c.Request.Context(), h.sessionToken(c))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"centers": normalize.Centers(raw)})
}

//
// 🟢 POST /api/daycare/bookings/mode — bascule du formulaire entre animal du
// profil et saisie manuelle. Passer en manuel efface le descripteur d'animal ;
// choisir un animal préremplit nom, type et âge.
//
func (h *Handler) SelectBookingMode(c *gin.Context) {
	var input struct {
		Mode string             `json:"mode" binding:"required"`
		Form models.BookingForm `json:"form"`
		Pet  struct {
			Name string `json:"name"`
			Type string `json:"type"`
			Age  string `json:"age"`
		} `json:"pet"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	mode := booking.Mode(input.Mode)
	if mode != booking.ModeManual && mode != booking.ModeExistingPet {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mode de saisie inconnu"})
		return
	}

	form := booking.SelectMode(input.Form, mode)
	if mode == booking.ModeExistingPet && input.Pet.Name != "" {
		form = booking.ApplyPetSelection(form, input.Pet.Name, input.Pet.Type, input.Pet.Age)
	}
	if form.Email == "" {
		form.Email = c.GetString("email")
	}

	c.JSON(http.StatusOK, gin.H{"mode": mode, "form": form})
}

//
// 🟢 POST /api/daycare/bookings — validation, calcul du montant, envoi
//
func (h *Handler) CreateBooking(c *gin.Context) {
	var input struct {
		CenterID string             `json:"centerId" binding:"required"`
		Form     models.BookingForm `json:"form"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if errs := booking.ValidateForm(input.Form, h.Now()); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	// Le centre est relu depuis le backend : le tarif journalier affiché
	// peut être périmé, celui du backend fait foi pour le calcul
	raw, err := h.Backend.GetCenters(c.Request.Context(), c.GetString("token"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	var center *models.DaycareCenter
	for _, candidate := range normalize.Centers(raw) {
		if candidate.ID == input.CenterID {
			center = &candidate
			break
		}
	}
	if center == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Centre introuvable"})
		return
	}

	start, _ := time.Parse("2006-01-02", input.Form.StartDate)
	end, _ := time.Parse("2006-01-02", input.Form.EndDate)
	totalAmount := booking.ComputeBookingTotal(start, end, center.PricePerDay)

	request := booking.BuildBookingRequest(*center, input.Form, totalAmount)
	if _, err := h.Backend.CreateBooking(c.Request.Context(), c.GetString("token"), request); err != nil {
		h.respondBackendError(c, err)
		return
	}

	log.Printf("✅ Réservation créée: %s du %s au %s (%.2f)", center.Name, input.Form.StartDate, input.Form.EndDate, totalAmount)
	c.JSON(http.StatusOK, gin.H{
		"message":     "Réservation de garderie créée avec succès !",
		"totalAmount": totalAmount,
	})
}

//
// 🟢 GET /api/daycare/bookings — historique, mot-clé de recherche transmis
// en query param au backend, tri local par date ou montant
//
func (h *Handler) ListBookings(c *gin.Context) {
	raw, err := h.Backend.GetBookings(c.Request.Context(), c.GetString("token"), c.Query("search"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	bookings := normalize.ExtractList(raw, normalize.KnownListKeys)
	bookings = normalize.SortList(bookings, c.Query("sortBy"), c.Query("order"))
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

//
// 🟢 PUT /api/daycare/bookings/:id
//
func (h *Handler) UpdateBooking(c *gin.Context) {
	var request models.BookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	raw, err := h.Backend.UpdateBooking(c.Request.Context(), c.GetString("token"), c.Param("id"), request)
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}

//
// 🟢 PATCH /api/daycare/bookings/:id/cancel
//
func (h *Handler) CancelBooking(c *gin.Context) {
	raw, err := h.Backend.CancelBooking(c.Request.Context(), c.GetString("token"), c.Param("id"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}

//
// 🟢 DELETE /api/daycare/bookings/:id
//
func (h *Handler) DeleteBooking(c *gin.Context) {
	raw, err := h.Backend.DeleteBooking(c.Request.Context(), c.GetString("token"), c.Param("id"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}
