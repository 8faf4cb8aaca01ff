package models

// User est l'enregistrement utilisateur renvoyé par le backend au login
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"` // customer | vendor
}

// CustomerProfile — fiche client (adresse résidentielle)
type CustomerProfile struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	MobileNumber       string `json:"mobileNumber"`
	City               string `json:"city"`
	State              string `json:"state"`
	ZipCode            string `json:"zipCode"`
	ResidentialAddress string `json:"residentialAddress"`
}

// VendorProfile — fiche vendeur (adresse de correspondance, jeu de champs distinct)
type VendorProfile struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	MobileNumber         string `json:"mobileNumber"`
	ShopName             string `json:"shopName"`
	CommunicationAddress string `json:"communicationAddress"`
}
