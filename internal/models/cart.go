package models

// CartLine représente une ligne du panier (identité = ProductID)
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	ImageRef  string  `json:"imageRef"`
}

// CartToast est la notification transitoire "article ajouté"
type CartToast struct {
	Visible bool   `json:"visible"`
	Message string `json:"message"`
}
