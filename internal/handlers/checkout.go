package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawfam_front_end/internal/checkout"
	"pawfam_front_end/internal/models"
	"pawfam_front_end/internal/utils"
)

//
// 🟢 POST /api/checkout/open — préremplissage depuis le profil.
// L'échec du fetch profil est non-fatal : le checkout s'ouvre quand même.
//
func (h *Handler) OpenCheckout(c *gin.Context) {
	token := c.GetString("token")

	form := models.CheckoutForm{
		PaymentMethod: "card",
		DeliveryDate:  h.today(),
		DeliveryTime:  "17:30",
		// jamais de préremplissage des champs sensibles (carte, cvv, upi)
	}
	form.Email = c.GetString("email")

	if raw, err := h.Backend.GetProfile(c.Request.Context(), token); err == nil {
		var resp struct {
			Profile *models.CustomerProfile `json:"profile"`
		}
		profile := &models.CustomerProfile{}
		if json.Unmarshal(raw, &resp) == nil && resp.Profile != nil {
			profile = resp.Profile
		} else {
			_ = json.Unmarshal(raw, profile)
		}
		if profile.Name != "" {
			form.FullName = profile.Name
		}
		if profile.ResidentialAddress != "" {
			form.Address = profile.ResidentialAddress
		}
		if profile.City != "" {
			form.City = profile.City
		}
		if profile.State != "" {
			form.State = profile.State
		}
		if profile.ZipCode != "" {
			form.ZipCode = profile.ZipCode
		}
		if profile.Email != "" {
			form.Email = profile.Email
		}
	} else {
		// on ouvre le checkout avec les valeurs par défaut
		log.Printf("⚠️ Profil indisponible pour le préremplissage: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"form": form})
}

//
// 🟢 POST /api/checkout/validate-field — validation inline champ par champ
//
func (h *Handler) ValidateCheckoutField(c *gin.Context) {
	var input struct {
		Name  string `json:"name" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champ invalide"})
		return
	}

	if msg := checkout.ValidateField(input.Name, input.Value, h.Now()); msg != "" {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

//
// 🟢 POST /api/checkout — validation complète, construction du payload,
// envoi au backend, vidage du panier en cas de succès
//
func (h *Handler) SubmitCheckout(c *gin.Context) {
	var form models.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	store := h.Carts.ForSession(c.GetString("session_id"))
	if store.ItemCount() == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}

	// Re-validation complète au submit, champs jamais touchés compris —
	// aucun appel réseau tant qu'il reste une erreur
	if errs := checkout.ValidateAll(form, h.Now()); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	total := store.Total()
	order := checkout.BuildOrderRequest(store.Lines(), form, total)

	// Log masqué : 4 derniers chiffres de la carte, jamais le CVV
	if masked, err := json.Marshal(checkout.MaskForLog(order)); err == nil {
		log.Printf("🛒 Commande préparée: %s", masked)
	}

	if _, err := h.Backend.CreateOrder(c.Request.Context(), c.GetString("token"), order); err != nil {
		// le panier et le formulaire restent intacts pour un nouvel essai
		h.respondBackendError(c, err)
		return
	}

	store.Clear()
	log.Printf("✅ Commande passée: %.2f (%d articles)", total, len(order.Items))

	response := gin.H{
		"message":     "Commande passée avec succès. Merci pour votre achat !",
		"totalAmount": total,
	}
	if form.PaymentMethod == "upi" {
		if qr, err := utils.GenerateUPIQR(form.UpiID, total); err == nil {
			response["upiQr"] = qr
		} else {
			log.Printf("⚠️ QR UPI non généré: %v", err)
		}
	}
	c.JSON(http.StatusOK, response)
}
