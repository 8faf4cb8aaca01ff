package models

// CheckoutForm regroupe les champs saisis dans le formulaire de commande.
// CardNumber et Cvv ne sont jamais persistés au-delà de la requête.
type CheckoutForm struct {
	FullName         string         `json:"fullName"`
	Email            string         `json:"email"`
	Address          string         `json:"address"`
	City             string         `json:"city"`
	State            string         `json:"state"`
	ZipCode          string         `json:"zipCode"`
	PaymentMethod    string         `json:"paymentMethod"` // card | upi | cod
	CardNumber       string         `json:"cardNumber,omitempty"`
	ExpiryDate       string         `json:"expiryDate,omitempty"`
	Cvv              string         `json:"cvv,omitempty"`
	UpiID            string         `json:"upiId,omitempty"`
	DeliveryDate     string         `json:"deliveryDate"`
	DeliveryTime     string         `json:"deliveryTime"`
	Extras           ExtrasOptions  `json:"extras"`
	PriorityDelivery bool           `json:"priorityDelivery"`
}

type ExtrasOptions struct {
	GiftWrap       bool `json:"giftWrap"`
	IncludeReceipt bool `json:"includeReceipt"`
}

// ErrorMap associe un nom de champ à un message lisible.
// L'absence d'une clé signifie que le champ est valide.
type ErrorMap map[string]string

type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

type ShippingAddress struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

type DeliveryPreferences struct {
	Date             string        `json:"date"`
	Time             string        `json:"time"`
	Extras           ExtrasOptions `json:"extras"`
	PriorityDelivery bool          `json:"priorityDelivery"`
}

// PaymentInfo prend une forme différente selon la méthode : les champs carte
// sont absents du JSON pour upi et cod (omitempty)
type PaymentInfo struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	Cvv        string `json:"cvv,omitempty"`
	UpiID      string `json:"upiId,omitempty"`
}

// OrderRequest est le corps envoyé à POST /products/orders
type OrderRequest struct {
	Items               []OrderItem         `json:"items"`
	ShippingAddress     ShippingAddress     `json:"shippingAddress"`
	DeliveryPreferences DeliveryPreferences `json:"deliveryPreferences"`
	PaymentInfo         PaymentInfo         `json:"paymentInfo"`
	TotalAmount         float64             `json:"totalAmount"`
}
