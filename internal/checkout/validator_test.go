package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pawfam_front_end/internal/models"
)

// date fixe injectée dans tous les tests
var today = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func TestValidateFieldFullName(t *testing.T) {
	assert.NotEmpty(t, ValidateField("fullName", "", today))
	assert.NotEmpty(t, ValidateField("fullName", "   ", today))
	assert.NotEmpty(t, ValidateField("fullName", "Jean123", today))
	assert.NotEmpty(t, ValidateField("fullName", "Jean-Pierre", today))
	assert.Empty(t, ValidateField("fullName", "Jean Dupont", today))
}

func TestValidateFieldZipCode(t *testing.T) {
	assert.NotEmpty(t, ValidateField("zipCode", "", today))
	assert.NotEmpty(t, ValidateField("zipCode", "12345", today), "5 chiffres insuffisants")
	assert.NotEmpty(t, ValidateField("zipCode", "1234567", today))
	assert.NotEmpty(t, ValidateField("zipCode", "12a456", today))
	assert.Empty(t, ValidateField("zipCode", "560001", today))
}

func TestValidateFieldEmail(t *testing.T) {
	assert.NotEmpty(t, ValidateField("email", "", today))
	assert.NotEmpty(t, ValidateField("email", "pas-un-email", today))
	assert.NotEmpty(t, ValidateField("email", "a@b", today))
	assert.NotEmpty(t, ValidateField("email", "a b@c.fr", today))
	assert.Empty(t, ValidateField("email", "jean@exemple.fr", today))
}

func TestValidateFieldCardNumber(t *testing.T) {
	assert.NotEmpty(t, ValidateField("cardNumber", "", today))
	assert.NotEmpty(t, ValidateField("cardNumber", "1234567890123", today), "13 chiffres = trop court")
	assert.NotEmpty(t, ValidateField("cardNumber", "12345678901234567", today), "17 chiffres = trop long")
	assert.Empty(t, ValidateField("cardNumber", "12345678901234", today))
	assert.Empty(t, ValidateField("cardNumber", "1234567890123456", today))
	// les espaces et tirets de saisie sont ignorés
	assert.Empty(t, ValidateField("cardNumber", "1234 5678 9012 3456", today))
	assert.Empty(t, ValidateField("cardNumber", "1234-5678-9012-3456", today))
}

func TestValidateFieldExpiryDate(t *testing.T) {
	assert.NotEmpty(t, ValidateField("expiryDate", "", today))
	assert.NotEmpty(t, ValidateField("expiryDate", "1225", today))
	assert.NotEmpty(t, ValidateField("expiryDate", "1/25", today))
	assert.NotEmpty(t, ValidateField("expiryDate", "00/25", today), "mois 00 invalide")
	assert.NotEmpty(t, ValidateField("expiryDate", "13/25", today), "mois 13 invalide")
	assert.Empty(t, ValidateField("expiryDate", "01/25", today))
	assert.Empty(t, ValidateField("expiryDate", "12/25", today))
}

func TestValidateFieldCvv(t *testing.T) {
	assert.NotEmpty(t, ValidateField("cvv", "", today))
	assert.NotEmpty(t, ValidateField("cvv", "12", today))
	assert.NotEmpty(t, ValidateField("cvv", "1234", today))
	assert.Empty(t, ValidateField("cvv", "123", today))
}

func TestValidateFieldUpiID(t *testing.T) {
	assert.NotEmpty(t, ValidateField("upiId", "", today))
	assert.NotEmpty(t, ValidateField("upiId", "sansarobase", today))
	assert.NotEmpty(t, ValidateField("upiId", "abc@xy", today), "fournisseur trop court")
	assert.NotEmpty(t, ValidateField("upiId", "abc@1bank", today), "le fournisseur commence par une lettre")
	assert.Empty(t, ValidateField("upiId", "abc@xyz", today))
	assert.Empty(t, ValidateField("upiId", "jean.dupont-01@okbank", today))
}

func TestValidateFieldDeliveryDate(t *testing.T) {
	assert.NotEmpty(t, ValidateField("deliveryDate", "", today))
	assert.NotEmpty(t, ValidateField("deliveryDate", "15/06/2025", today))
	assert.NotEmpty(t, ValidateField("deliveryDate", "2025-06-14", today), "hier = refusé")
	assert.Empty(t, ValidateField("deliveryDate", "2025-06-15", today), "aujourd'hui = accepté")
	assert.Empty(t, ValidateField("deliveryDate", "2025-06-20", today))
}

func TestValidateFieldDeliveryTime(t *testing.T) {
	assert.NotEmpty(t, ValidateField("deliveryTime", "", today))
	assert.NotEmpty(t, ValidateField("deliveryTime", "16:59", today))
	assert.NotEmpty(t, ValidateField("deliveryTime", "19:01", today))
	// bornes incluses
	assert.Empty(t, ValidateField("deliveryTime", "17:00", today))
	assert.Empty(t, ValidateField("deliveryTime", "17:30", today))
	assert.Empty(t, ValidateField("deliveryTime", "19:00", today))
}

func TestValidateFieldNomInconnu(t *testing.T) {
	assert.Empty(t, ValidateField("champInconnu", "", today))
}

func formulaireValide() models.CheckoutForm {
	return models.CheckoutForm{
		FullName:      "Jean Dupont",
		Email:         "jean@exemple.fr",
		Address:       "12 rue des Lilas, appartement 3",
		City:          "Lyon",
		State:         "Rhone",
		ZipCode:       "690001",
		PaymentMethod: "card",
		CardNumber:    "1234567890123456",
		ExpiryDate:    "12/27",
		Cvv:           "123",
		DeliveryDate:  "2025-06-20",
		DeliveryTime:  "17:30",
	}
}

func TestValidateAllFormulaireValide(t *testing.T) {
	assert.Empty(t, ValidateAll(formulaireValide(), today))
}

func TestValidateAllChampsJamaisTouches(t *testing.T) {
	// un formulaire vide doit remonter toutes les erreurs requises,
	// champs jamais touchés compris
	errs := ValidateAll(models.CheckoutForm{PaymentMethod: "card"}, today)

	for _, name := range []string{"fullName", "email", "address", "city", "state", "zipCode", "deliveryDate", "deliveryTime", "cardNumber", "expiryDate", "cvv"} {
		assert.Contains(t, errs, name)
	}
}

func TestValidateAllChampsPaiementSelonMethode(t *testing.T) {
	form := formulaireValide()

	// upi : les champs carte ne sont plus requis, upiId le devient
	form.PaymentMethod = "upi"
	form.CardNumber = ""
	form.ExpiryDate = ""
	form.Cvv = ""
	errs := ValidateAll(form, today)
	assert.Contains(t, errs, "upiId")
	assert.NotContains(t, errs, "cardNumber")
	assert.NotContains(t, errs, "cvv")

	form.UpiID = "jean@okbank"
	assert.Empty(t, ValidateAll(form, today))

	// cod : aucun champ de paiement requis
	form.PaymentMethod = "cod"
	form.UpiID = ""
	assert.Empty(t, ValidateAll(form, today))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "1234567890123456", DigitsOnly("1234 5678 9012 3456"))
	assert.Equal(t, "123", DigitsOnly("1-2-3"))
	assert.Equal(t, "", DigitsOnly("abc"))
}
