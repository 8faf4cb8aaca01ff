package backend

import (
	"context"
	"encoding/json"
	"net/url"

	"pawfam_front_end/internal/models"
)

// --- Réservations de garderie (côté client) ---

func (c *Client) CreateBooking(ctx context.Context, token string, booking models.BookingRequest) (json.RawMessage, error) {
	return c.post(ctx, "/daycare/bookings", token, booking)
}

func (c *Client) GetBookings(ctx context.Context, token, search string) (json.RawMessage, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	return c.get(ctx, "/daycare/bookings", token, query)
}

func (c *Client) UpdateBooking(ctx context.Context, token, bookingID string, booking models.BookingRequest) (json.RawMessage, error) {
	return c.put(ctx, "/daycare/bookings/"+bookingID, token, booking)
}

func (c *Client) CancelBooking(ctx context.Context, token, bookingID string) (json.RawMessage, error) {
	return c.patch(ctx, "/daycare/bookings/"+bookingID+"/cancel", token, nil)
}

func (c *Client) DeleteBooking(ctx context.Context, token, bookingID string) (json.RawMessage, error) {
	return c.delete(ctx, "/daycare/bookings/"+bookingID, token)
}

// --- Variantes vendeur : centres et transitions de statut ---

func (c *Client) GetCenters(ctx context.Context, token string) (json.RawMessage, error) {
	return c.get(ctx, "/vendor/daycare/centers", token, nil)
}

func (c *Client) GetMyCenters(ctx context.Context, token string) (json.RawMessage, error) {
	return c.get(ctx, "/vendor/daycare/my-centers", token, nil)
}

func (c *Client) GetVendorBookings(ctx context.Context, token string) (json.RawMessage, error) {
	return c.get(ctx, "/vendor/daycare/bookings", token, nil)
}

func (c *Client) CreateCenter(ctx context.Context, token string, center interface{}) (json.RawMessage, error) {
	return c.post(ctx, "/vendor/daycare/centers", token, center)
}

func (c *Client) UpdateCenter(ctx context.Context, token, centerID string, center interface{}) (json.RawMessage, error) {
	return c.put(ctx, "/vendor/daycare/centers/"+centerID, token, center)
}

func (c *Client) DeleteCenter(ctx context.Context, token, centerID string) (json.RawMessage, error) {
	return c.delete(ctx, "/vendor/daycare/centers/"+centerID, token)
}

func (c *Client) UpdateBookingStatus(ctx context.Context, token, bookingID, status string) (json.RawMessage, error) {
	return c.patch(ctx, "/daycare/bookings/"+bookingID+"/status", token, map[string]string{"status": status})
}
