package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pawfam_front_end/internal/models"
)

var today = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func jour(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeBookingTotal(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		dailyRate float64
		want      float64
	}{
		{"deux jours", "2025-06-15", "2025-06-17", 500, 1000},
		{"un jour", "2025-06-15", "2025-06-16", 500, 500},
		{"meme jour", "2025-06-15", "2025-06-15", 500, 0},
		{"semaine", "2025-06-01", "2025-06-08", 120, 840},
		{"tarif nul", "2025-06-15", "2025-06-17", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBookingTotal(jour(tt.start), jour(tt.end), tt.dailyRate)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildBookingRequestDenormaliseLeCentre(t *testing.T) {
	center := models.DaycareCenter{
		ID:          "c1",
		Name:        "Happy Paws",
		Location:    "Lyon",
		PricePerDay: 500,
	}
	form := models.BookingForm{
		PetName:             "Rex",
		PetType:             "Dog",
		PetAge:              "3",
		Email:               "jean@exemple.fr",
		MobileNumber:        "0612345678",
		StartDate:           "2025-06-15",
		EndDate:             "2025-06-17",
		SpecialInstructions: "Croquettes sans céréales",
	}

	request := BuildBookingRequest(center, form, 1000)

	assert.Equal(t, "c1", request.DaycareCenterID)
	assert.Equal(t, "Happy Paws", request.DaycareCenter.Name)
	assert.Equal(t, "Lyon", request.DaycareCenter.Location)
	assert.Equal(t, 500.0, request.DaycareCenter.PricePerDay)
	assert.Equal(t, "Rex", request.PetName)
	assert.Equal(t, 1000.0, request.TotalAmount)
	assert.Equal(t, "Croquettes sans céréales", request.SpecialInstructions)
}

func formulaireValide() models.BookingForm {
	return models.BookingForm{
		PetName:      "Rex",
		PetType:      "Dog",
		PetAge:       "3",
		Email:        "jean@exemple.fr",
		MobileNumber: "0612345678",
		StartDate:    "2025-06-16",
		EndDate:      "2025-06-18",
	}
}

func TestValidateFormValide(t *testing.T) {
	assert.Empty(t, ValidateForm(formulaireValide(), today))
}

func TestValidateFormFormulaireVide(t *testing.T) {
	errs := ValidateForm(models.BookingForm{}, today)
	for _, name := range []string{"petName", "petType", "petAge", "email", "mobileNumber", "startDate", "endDate"} {
		assert.Contains(t, errs, name)
	}
}

func TestValidateFormPetName(t *testing.T) {
	form := formulaireValide()
	form.PetName = "Rex3000"
	assert.Contains(t, ValidateForm(form, today), "petName")
}

func TestValidateFormPetAge(t *testing.T) {
	form := formulaireValide()

	form.PetAge = "abc"
	assert.Contains(t, ValidateForm(form, today), "petAge")

	form.PetAge = "-1"
	assert.Contains(t, ValidateForm(form, today), "petAge")

	form.PetAge = "31"
	assert.Contains(t, ValidateForm(form, today), "petAge")

	form.PetAge = "0"
	assert.NotContains(t, ValidateForm(form, today), "petAge")

	form.PetAge = "30"
	assert.NotContains(t, ValidateForm(form, today), "petAge")
}

func TestValidateFormMobile(t *testing.T) {
	form := formulaireValide()
	form.MobileNumber = "12345"
	assert.Contains(t, ValidateForm(form, today), "mobileNumber")

	form.MobileNumber = "06 12 34 56 78"
	assert.Contains(t, ValidateForm(form, today), "mobileNumber")

	form.MobileNumber = "0612345678"
	assert.NotContains(t, ValidateForm(form, today), "mobileNumber")
}

func TestValidateFormDates(t *testing.T) {
	form := formulaireValide()

	// début dans le passé
	form.StartDate = "2025-06-14"
	assert.Contains(t, ValidateForm(form, today), "startDate")

	// début aujourd'hui = accepté
	form.StartDate = "2025-06-15"
	assert.NotContains(t, ValidateForm(form, today), "startDate")

	// fin avant le début
	form.StartDate = "2025-06-18"
	form.EndDate = "2025-06-16"
	assert.Contains(t, ValidateForm(form, today), "endDate")

	// fin = début est accepté (réservation le jour même)
	form.EndDate = "2025-06-18"
	assert.NotContains(t, ValidateForm(form, today), "endDate")
}
