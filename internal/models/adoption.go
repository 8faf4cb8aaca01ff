package models

// AdoptionForm regroupe les champs du formulaire de demande d'adoption
type AdoptionForm struct {
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	Experience        string `json:"experience"`
	ExperienceDetails string `json:"experienceDetails,omitempty"`
	VisitDate         string `json:"visitDate"`
	VisitTime         string `json:"visitTime"`
	AdoptionReason    string `json:"adoptionReason"`
	OtherPets         string `json:"otherPets"`
	OtherPetsDetails  string `json:"otherPetsDetails,omitempty"`
}

// AdoptionApplication est le corps envoyé à POST /adoption/applications
type AdoptionApplication struct {
	PetID                string       `json:"petId"`
	Pet                  AdoptablePet `json:"pet"`
	Applicant            AdoptionForm `json:"applicant"`
	TermsAcceptedConsent bool         `json:"termsAcceptedConsent"`
	TermsAcceptedCare    bool         `json:"termsAcceptedCare"`
}

// AdoptablePet est la forme canonique d'un animal à adopter après normalisation
type AdoptablePet struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Breed       string `json:"breed,omitempty"`
	Age         string `json:"age,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Size        string `json:"size,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image"`
	Status      string `json:"status"`
	Shelter     string `json:"shelter"`
}
