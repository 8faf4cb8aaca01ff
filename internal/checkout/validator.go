package checkout

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"pawfam_front_end/internal/models"
)

// Fenêtre de livraison en soirée (bornes incluses)
const (
	DeliveryTimeMin = "17:00"
	DeliveryTimeMax = "19:00"
)

// Mêmes règles que le backend — ne pas les assouplir côté client
var (
	alphaSpaceRe = regexp.MustCompile(`^[A-Za-z\s]+$`)
	zipCodeRe    = regexp.MustCompile(`^\d{6}$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	cardRe       = regexp.MustCompile(`^\d{14,16}$`)
	expiryRe     = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3}$`)
	upiRe        = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,256}@[a-zA-Z][a-zA-Z]{2,64}$`)
	nonDigitRe   = regexp.MustCompile(`\D`)
)

// DigitsOnly supprime tout ce qui n'est pas un chiffre (numéro de carte, cvv)
func DigitsOnly(s string) string {
	return nonDigitRe.ReplaceAllString(s, "")
}

// ValidateField valide un seul champ et retourne un message d'erreur,
// ou "" si le champ est valide. `today` est injecté par l'appelant pour
// rester testable.
func ValidateField(name, value string, today time.Time) string {
	trimmed := strings.TrimSpace(value)

	switch name {
	case "fullName":
		if trimmed == "" {
			return "Le nom complet est requis"
		}
		if !alphaSpaceRe.MatchString(value) {
			return "Le nom complet ne doit contenir que des lettres et des espaces"
		}
	case "city":
		if trimmed == "" {
			return "La ville est requise"
		}
		if !alphaSpaceRe.MatchString(value) {
			return "La ville ne doit contenir que des lettres et des espaces"
		}
	case "state":
		if trimmed == "" {
			return "L'état est requis"
		}
		if !alphaSpaceRe.MatchString(value) {
			return "L'état ne doit contenir que des lettres et des espaces"
		}
	case "address":
		if trimmed == "" {
			return "L'adresse est requise"
		}
	case "zipCode":
		if trimmed == "" {
			return "Le code postal est requis"
		}
		if !zipCodeRe.MatchString(value) {
			return "Le code postal doit contenir exactement 6 chiffres"
		}
	case "email":
		if trimmed == "" {
			return "L'email est requis"
		}
		if !emailRe.MatchString(value) {
			return "Format d'email invalide"
		}
	case "cardNumber":
		digits := DigitsOnly(value)
		if digits == "" {
			return "Le numéro de carte est requis"
		}
		if !cardRe.MatchString(digits) {
			return "Le numéro de carte doit contenir 14 à 16 chiffres"
		}
	case "expiryDate":
		if trimmed == "" {
			return "La date d'expiration est requise"
		}
		if !expiryRe.MatchString(value) {
			return "La date d'expiration doit être au format MM/YY"
		}
		mm := strings.Split(value, "/")[0]
		month, err := strconv.Atoi(mm)
		if err != nil || month < 1 || month > 12 {
			return "Le mois d'expiration doit être entre 01 et 12"
		}
	case "cvv":
		digits := DigitsOnly(value)
		if digits == "" {
			return "Le CVV est requis"
		}
		if !cvvRe.MatchString(digits) {
			return "Le CVV doit contenir exactement 3 chiffres"
		}
	case "upiId":
		if trimmed == "" {
			return "L'identifiant UPI est requis"
		}
		if !upiRe.MatchString(value) {
			return "Format UPI invalide. Exemple : utilisateur@banque"
		}
	case "deliveryDate":
		if trimmed == "" {
			return "La date de livraison est requise"
		}
		date, err := time.Parse("2006-01-02", value)
		if err != nil {
			return "Date de livraison invalide"
		}
		startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
		if date.Before(startOfToday) {
			return "La date de livraison ne peut pas être dans le passé"
		}
	case "deliveryTime":
		if trimmed == "" {
			return "L'heure de livraison est requise"
		}
		t, err := time.Parse("15:04", value)
		if err != nil {
			return "Heure de livraison invalide"
		}
		minT, _ := time.Parse("15:04", DeliveryTimeMin)
		maxT, _ := time.Parse("15:04", DeliveryTimeMax)
		if t.Before(minT) || t.After(maxT) {
			return "La livraison se fait entre " + DeliveryTimeMin + " et " + DeliveryTimeMax
		}
	}
	return ""
}

// fieldValue retrouve la valeur d'un champ du formulaire par son nom
func fieldValue(form models.CheckoutForm, name string) string {
	switch name {
	case "fullName":
		return form.FullName
	case "email":
		return form.Email
	case "address":
		return form.Address
	case "city":
		return form.City
	case "state":
		return form.State
	case "zipCode":
		return form.ZipCode
	case "cardNumber":
		return form.CardNumber
	case "expiryDate":
		return form.ExpiryDate
	case "cvv":
		return form.Cvv
	case "upiId":
		return form.UpiID
	case "deliveryDate":
		return form.DeliveryDate
	case "deliveryTime":
		return form.DeliveryTime
	}
	return ""
}

// ValidateAll rejoue toutes les règles au moment du submit, y compris sur les
// champs jamais touchés (défense contre les erreurs effacées côté client).
// Les champs de paiement requis dépendent de la méthode choisie.
func ValidateAll(form models.CheckoutForm, today time.Time) models.ErrorMap {
	errors := models.ErrorMap{}

	fields := []string{"fullName", "email", "address", "city", "state", "zipCode", "deliveryDate", "deliveryTime"}
	switch form.PaymentMethod {
	case "card":
		fields = append(fields, "cardNumber", "expiryDate", "cvv")
	case "upi":
		fields = append(fields, "upiId")
	}

	for _, name := range fields {
		if msg := ValidateField(name, fieldValue(form, name), today); msg != "" {
			errors[name] = msg
		}
	}
	return errors
}
