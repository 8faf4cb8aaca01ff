package models

// BookingForm regroupe les champs du formulaire de réservation de garderie
type BookingForm struct {
	PetName             string `json:"petName"`
	PetType             string `json:"petType"`
	PetAge              string `json:"petAge"`
	Email               string `json:"email"`
	MobileNumber        string `json:"mobileNumber"`
	StartDate           string `json:"startDate"`
	EndDate             string `json:"endDate"`
	SpecialInstructions string `json:"specialInstructions"`
}

// DaycareCenterRef est le sous-objet dénormalisé envoyé avec la réservation
type DaycareCenterRef struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	PricePerDay float64 `json:"pricePerDay"`
}

// BookingRequest est le corps envoyé à POST /daycare/bookings
type BookingRequest struct {
	DaycareCenterID     string           `json:"daycareCenterId"`
	DaycareCenter       DaycareCenterRef `json:"daycareCenter"`
	PetName             string           `json:"petName"`
	PetType             string           `json:"petType"`
	PetAge              string           `json:"petAge"`
	Email               string           `json:"email"`
	MobileNumber        string           `json:"mobileNumber"`
	StartDate           string           `json:"startDate"`
	EndDate             string           `json:"endDate"`
	SpecialInstructions string           `json:"specialInstructions"`
	TotalAmount         float64          `json:"totalAmount"`
}

// DaycareCenter est la forme canonique d'un centre après normalisation
type DaycareCenter struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	City           string   `json:"city,omitempty"`
	Description    string   `json:"description,omitempty"`
	PricePerDay    float64  `json:"pricePerDay"`
	Rating         float64  `json:"rating"`
	Image          string   `json:"image"`
	Services       []string `json:"services,omitempty"`
	OperatingHours struct {
		OpenTime  string `json:"openTime,omitempty"`
		CloseTime string `json:"closeTime,omitempty"`
	} `json:"operatingHours"`
}
