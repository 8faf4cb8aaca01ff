package checkout

import (
	"pawfam_front_end/internal/models"
)

// BuildOrderRequest assemble le corps de commande à partir des lignes du
// panier et du formulaire validé. Transformation pure : le total est celui
// calculé par l'appelant (source de vérité unique = Store.Total()), jamais
// recalculé ici. Les champs carte sont nettoyés en chiffres seuls juste avant
// inclusion ; les méthodes non-carte ne portent aucun champ carte.
func BuildOrderRequest(lines []models.CartLine, form models.CheckoutForm, computedTotal float64) models.OrderRequest {
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.UnitPrice,
			Quantity:  line.Quantity,
			Image:     line.ImageRef,
		})
	}

	var payment models.PaymentInfo
	switch form.PaymentMethod {
	case "card":
		payment = models.PaymentInfo{
			Method:     "card",
			CardNumber: DigitsOnly(form.CardNumber),
			ExpiryDate: form.ExpiryDate,
			Cvv:        DigitsOnly(form.Cvv),
		}
	case "upi":
		payment = models.PaymentInfo{
			Method: "upi",
			UpiID:  form.UpiID,
		}
	default:
		payment = models.PaymentInfo{Method: form.PaymentMethod}
	}

	return models.OrderRequest{
		Items: items,
		ShippingAddress: models.ShippingAddress{
			FullName: form.FullName,
			Email:    form.Email,
			Address:  form.Address,
			City:     form.City,
			State:    form.State,
			ZipCode:  form.ZipCode,
		},
		DeliveryPreferences: models.DeliveryPreferences{
			Date:             form.DeliveryDate,
			Time:             form.DeliveryTime,
			Extras:           form.Extras,
			PriorityDelivery: form.PriorityDelivery,
		},
		PaymentInfo: payment,
		TotalAmount: computedTotal,
	}
}

// MaskForLog retourne une copie de la commande où le numéro de carte est
// réduit aux 4 derniers chiffres et le CVV masqué. Le CVV n'apparaît jamais
// en clair dans les logs.
func MaskForLog(order models.OrderRequest) models.OrderRequest {
	masked := order
	if masked.PaymentInfo.CardNumber != "" {
		digits := masked.PaymentInfo.CardNumber
		last4 := digits
		if len(digits) > 4 {
			last4 = digits[len(digits)-4:]
		}
		masked.PaymentInfo.CardNumber = "****" + last4
	}
	if masked.PaymentInfo.Cvv != "" {
		masked.PaymentInfo.Cvv = "***"
	}
	return masked
}
