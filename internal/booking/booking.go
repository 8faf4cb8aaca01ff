package booking

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pawfam_front_end/internal/models"
)

var (
	alphaSpaceRe = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobileRe     = regexp.MustCompile(`^\d{10}$`)
)

// ComputeBookingTotal calcule le montant d'une réservation :
// jours = ceil((fin - début) / 1 jour), montant = jours × tarif journalier.
// Même jour ⇒ ceil(0) = 0 ⇒ montant 0.
// TODO: confirmer avec le produit si une réservation le jour même doit
// facturer au moins une journée.
// Une date de fin antérieure au début est une violation de précondition de
// l'appelant (l'UI efface la date de fin invalide) — pas de défense ici.
func ComputeBookingTotal(startDate, endDate time.Time, dailyRate float64) float64 {
	days := math.Ceil(endDate.Sub(startDate).Hours() / 24)
	return days * dailyRate
}

// BuildBookingRequest assemble le corps envoyé à POST /daycare/bookings.
// Le centre est dénormalisé dans la requête comme le fait le client web.
func BuildBookingRequest(center models.DaycareCenter, form models.BookingForm, totalAmount float64) models.BookingRequest {
	return models.BookingRequest{
		DaycareCenterID: center.ID,
		DaycareCenter: models.DaycareCenterRef{
			Name:        center.Name,
			Location:    center.Location,
			PricePerDay: center.PricePerDay,
		},
		PetName:             form.PetName,
		PetType:             form.PetType,
		PetAge:              form.PetAge,
		Email:               form.Email,
		MobileNumber:        form.MobileNumber,
		StartDate:           form.StartDate,
		EndDate:             form.EndDate,
		SpecialInstructions: form.SpecialInstructions,
		TotalAmount:         totalAmount,
	}
}

// ValidateForm vérifie le formulaire de réservation avant envoi.
// `today` est injecté pour rester testable.
func ValidateForm(form models.BookingForm, today time.Time) models.ErrorMap {
	errors := models.ErrorMap{}

	if strings.TrimSpace(form.PetName) == "" {
		errors["petName"] = "Le nom de l'animal est requis"
	} else if !alphaSpaceRe.MatchString(form.PetName) {
		errors["petName"] = "Le nom de l'animal ne doit contenir que des lettres et des espaces"
	}

	if strings.TrimSpace(form.PetType) == "" {
		errors["petType"] = "Le type d'animal est requis"
	}

	if strings.TrimSpace(form.PetAge) == "" {
		errors["petAge"] = "L'âge de l'animal est requis"
	} else if age, err := strconv.Atoi(strings.TrimSpace(form.PetAge)); err != nil || age < 0 || age > 30 {
		errors["petAge"] = "L'âge doit être un nombre entre 0 et 30"
	}

	if strings.TrimSpace(form.Email) == "" {
		errors["email"] = "L'email est requis"
	} else if !emailRe.MatchString(form.Email) {
		errors["email"] = "Format d'email invalide"
	}

	if strings.TrimSpace(form.MobileNumber) == "" {
		errors["mobileNumber"] = "Le numéro de mobile est requis"
	} else if !mobileRe.MatchString(form.MobileNumber) {
		errors["mobileNumber"] = "Le numéro de mobile doit contenir 10 chiffres"
	}

	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	start, startErr := time.Parse("2006-01-02", form.StartDate)
	if strings.TrimSpace(form.StartDate) == "" {
		errors["startDate"] = "La date de début est requise"
	} else if startErr != nil {
		errors["startDate"] = "Date de début invalide"
	} else if start.Before(startOfToday) {
		errors["startDate"] = "La date de début ne peut pas être dans le passé"
	}

	end, endErr := time.Parse("2006-01-02", form.EndDate)
	if strings.TrimSpace(form.EndDate) == "" {
		errors["endDate"] = "La date de fin est requise"
	} else if endErr != nil {
		errors["endDate"] = "Date de fin invalide"
	} else if startErr == nil && end.Before(start) {
		errors["endDate"] = "La date de fin doit être après la date de début"
	}

	return errors
}
