package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectModeManuelEffaceLAnimal(t *testing.T) {
	form := formulaireValide()
	form = ApplyPetSelection(form, "Rex", "Dog", "3")

	form = SelectMode(form, ModeManual)

	assert.Empty(t, form.PetName)
	assert.Empty(t, form.PetType)
	assert.Empty(t, form.PetAge)
	// contact et dates conservés
	assert.Equal(t, "jean@exemple.fr", form.Email)
	assert.Equal(t, "0612345678", form.MobileNumber)
	assert.Equal(t, "2025-06-16", form.StartDate)
	assert.Equal(t, "2025-06-18", form.EndDate)
}

func TestSelectModeExistingNeTouchePasAuFormulaire(t *testing.T) {
	form := formulaireValide()
	assert.Equal(t, form, SelectMode(form, ModeExistingPet))
}

func TestApplyPetSelection(t *testing.T) {
	form := SelectMode(formulaireValide(), ModeManual)
	form = ApplyPetSelection(form, "Mimi", "Cat", "5")

	assert.Equal(t, "Mimi", form.PetName)
	assert.Equal(t, "Cat", form.PetType)
	assert.Equal(t, "5", form.PetAge)
}
