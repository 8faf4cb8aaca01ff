package backend

import (
	"context"
	"encoding/json"

	"pawfam_front_end/internal/models"
)

// --- Profil client (adresse résidentielle) ---

func (c *Client) GetProfile(ctx context.Context, token string) (json.RawMessage, error) {
	return c.get(ctx, "/profile", token, nil)
}

func (c *Client) CreateProfile(ctx context.Context, token string, profile models.CustomerProfile) (json.RawMessage, error) {
	return c.post(ctx, "/profile", token, profile)
}

func (c *Client) UpdateProfile(ctx context.Context, token string, profile models.CustomerProfile) (json.RawMessage, error) {
	return c.put(ctx, "/profile", token, profile)
}

func (c *Client) DeleteProfile(ctx context.Context, token string) (json.RawMessage, error) {
	return c.delete(ctx, "/profile", token)
}

// --- Profil vendeur (adresse de correspondance, champs distincts) ---

func (c *Client) GetVendorProfile(ctx context.Context, token string) (json.RawMessage, error) {
	return c.get(ctx, "/vendor-profile", token, nil)
}

func (c *Client) CreateVendorProfile(ctx context.Context, token string, profile models.VendorProfile) (json.RawMessage, error) {
	return c.post(ctx, "/vendor-profile", token, profile)
}

func (c *Client) UpdateVendorProfile(ctx context.Context, token string, profile models.VendorProfile) (json.RawMessage, error) {
	return c.put(ctx, "/vendor-profile", token, profile)
}

func (c *Client) DeleteVendorProfile(ctx context.Context, token string) (json.RawMessage, error) {
	return c.delete(ctx, "/vendor-profile", token)
}
