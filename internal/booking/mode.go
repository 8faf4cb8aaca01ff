package booking

import "pawfam_front_end/internal/models"

// Mode de remplissage du formulaire de réservation : choisir un animal déjà
// enregistré dans le profil, ou saisie manuelle.
type Mode string

const (
	ModeExistingPet Mode = "existing"
	ModeManual      Mode = "manual"
)

// SelectMode applique le changement de mode. Passer en saisie manuelle efface
// le descripteur d'animal mais conserve contact, dates et instructions.
func SelectMode(form models.BookingForm, mode Mode) models.BookingForm {
	if mode == ModeManual {
		form.PetName = ""
		form.PetType = ""
		form.PetAge = ""
	}
	return form
}

// ApplyPetSelection préremplit le descripteur d'animal depuis le profil
func ApplyPetSelection(form models.BookingForm, petName, petType, petAge string) models.BookingForm {
	form.PetName = petName
	form.PetType = petType
	form.PetAge = petAge
	return form
}
