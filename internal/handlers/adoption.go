package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pawfam_front_end/internal/models"
	"pawfam_front_end/internal/normalize"
)

var (
	adoptionEmailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	adoptionPhoneRe = regexp.MustCompile(`^\d{10}$`)
)

//
// 🟢 GET /api/adoption/pets — animaux publiés par les vendeurs
//
func (h *Handler) ListAdoptablePets(c *gin.Context) {
	raw, err := h.Backend.GetPets(c.Request.Context(), h.sessionToken(c))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pets": normalize.Pets(raw)})
}

// validateAdoptionForm vérifie la demande avant envoi. `today` injecté.
func validateAdoptionForm(form models.AdoptionForm, consent, care bool, today time.Time) models.ErrorMap {
	errs := models.ErrorMap{}

	if strings.TrimSpace(form.FullName) == "" {
		errs["fullName"] = "Le nom complet est requis"
	}
	if strings.TrimSpace(form.Email) == "" {
		errs["email"] = "L'email est requis"
	} else if !adoptionEmailRe.MatchString(form.Email) {
		errs["email"] = "Format d'email invalide"
	}
	if strings.TrimSpace(form.Phone) == "" {
		errs["phone"] = "Le numéro de téléphone est requis"
	} else if !adoptionPhoneRe.MatchString(form.Phone) {
		errs["phone"] = "Le numéro de téléphone doit contenir 10 chiffres"
	}
	if len(strings.TrimSpace(form.Address)) < 10 {
		errs["address"] = "L'adresse doit contenir au moins 10 caractères"
	}
	if strings.TrimSpace(form.AdoptionReason) == "" {
		errs["adoptionReason"] = "La motivation d'adoption est requise"
	}

	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if strings.TrimSpace(form.VisitDate) == "" {
		errs["visitDate"] = "La date de visite est requise"
	} else if visit, err := time.Parse("2006-01-02", form.VisitDate); err != nil {
		errs["visitDate"] = "Date de visite invalide"
	} else if visit.Before(startOfToday) {
		errs["visitDate"] = "La date de visite ne peut pas être dans le passé"
	}
	if strings.TrimSpace(form.VisitTime) == "" {
		errs["visitTime"] = "L'heure de visite est requise"
	}

	if !consent {
		errs["termsAcceptedConsent"] = "Vous devez accepter les conditions d'adoption"
	}
	if !care {
		errs["termsAcceptedCare"] = "Vous devez vous engager à prendre soin de l'animal"
	}

	return errs
}

//
// 🟢 POST /api/adoption/applications
//
func (h *Handler) SubmitApplication(c *gin.Context) {
	var input struct {
		PetID                string              `json:"petId" binding:"required"`
		Pet                  models.AdoptablePet `json:"pet"`
		Form                 models.AdoptionForm `json:"form"`
		TermsAcceptedConsent bool                `json:"termsAcceptedConsent"`
		TermsAcceptedCare    bool                `json:"termsAcceptedCare"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if errs := validateAdoptionForm(input.Form, input.TermsAcceptedConsent, input.TermsAcceptedCare, h.Now()); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	application := models.AdoptionApplication{
		PetID:                input.PetID,
		Pet:                  input.Pet,
		Applicant:            input.Form,
		TermsAcceptedConsent: input.TermsAcceptedConsent,
		TermsAcceptedCare:    input.TermsAcceptedCare,
	}
	if _, err := h.Backend.CreateApplication(c.Request.Context(), c.GetString("token"), application); err != nil {
		h.respondBackendError(c, err)
		return
	}

	log.Printf("✅ Demande d'adoption envoyée pour %s", input.Pet.Name)
	c.JSON(http.StatusOK, gin.H{"message": "Demande d'adoption envoyée avec succès !"})
}

//
// 🟢 GET /api/adoption/applications/prefill — autofill depuis le profil,
// échec silencieux
//
func (h *Handler) PrefillApplication(c *gin.Context) {
	form := models.AdoptionForm{Email: c.GetString("email")}

	if raw, err := h.Backend.GetProfile(c.Request.Context(), c.GetString("token")); err == nil {
		var resp struct {
			HasProfile bool                    `json:"hasProfile"`
			Profile    *models.CustomerProfile `json:"profile"`
		}
		if json.Unmarshal(raw, &resp) == nil && resp.Profile != nil {
			form.FullName = resp.Profile.Name
			form.Phone = resp.Profile.MobileNumber
			form.Address = resp.Profile.ResidentialAddress
			if resp.Profile.Email != "" {
				form.Email = resp.Profile.Email
			}
		}
	} else {
		log.Printf("⚠️ Profil indisponible pour l'autofill adoption: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"form": form})
}

//
// 🟢 GET /api/adoption/applications
//
func (h *Handler) ListApplications(c *gin.Context) {
	raw, err := h.Backend.GetApplications(c.Request.Context(), c.GetString("token"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	applications := normalize.ExtractList(raw, normalize.KnownListKeys)
	applications = normalize.SortList(applications, c.Query("sortBy"), c.Query("order"))
	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

//
// 🟢 PUT /api/adoption/applications/:id — correction d'une demande en attente
//
func (h *Handler) UpdateApplication(c *gin.Context) {
	var input struct {
		PetID                string              `json:"petId" binding:"required"`
		Pet                  models.AdoptablePet `json:"pet"`
		Form                 models.AdoptionForm `json:"form"`
		TermsAcceptedConsent bool                `json:"termsAcceptedConsent"`
		TermsAcceptedCare    bool                `json:"termsAcceptedCare"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if errs := validateAdoptionForm(input.Form, input.TermsAcceptedConsent, input.TermsAcceptedCare, h.Now()); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	application := models.AdoptionApplication{
		PetID:                input.PetID,
		Pet:                  input.Pet,
		Applicant:            input.Form,
		TermsAcceptedConsent: input.TermsAcceptedConsent,
		TermsAcceptedCare:    input.TermsAcceptedCare,
	}
	raw, err := h.Backend.UpdateApplication(c.Request.Context(), c.GetString("token"), c.Param("id"), application)
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}

//
// 🟢 PATCH /api/adoption/applications/:id/revoke
//
func (h *Handler) RevokeApplication(c *gin.Context) {
	raw, err := h.Backend.RevokeApplication(c.Request.Context(), c.GetString("token"), c.Param("id"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}

//
// 🟢 DELETE /api/adoption/applications/:id
//
func (h *Handler) DeleteApplication(c *gin.Context) {
	raw, err := h.Backend.DeleteApplication(c.Request.Context(), c.GetString("token"), c.Param("id"))
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, raw)
}
