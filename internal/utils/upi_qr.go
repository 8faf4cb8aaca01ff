package utils

import (
	"encoding/base64"
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateUPIQR encode le lien de paiement UPI d'une commande en QR code PNG
// (base64) affiché sur la confirmation quand la méthode est upi
func GenerateUPIQR(upiID string, amount float64) (string, error) {
	params := url.Values{}
	params.Set("pa", upiID)
	params.Set("pn", "PawFam")
	params.Set("am", fmt.Sprintf("%.2f", amount))
	params.Set("cu", "INR")

	payload := "upi://pay?" + params.Encode()

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("impossible de générer le QR UPI: %v", err)
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
