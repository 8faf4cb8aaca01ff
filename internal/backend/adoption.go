package backend

import (
	"context"
	"encoding/json"

	"pawfam_front_end/internal/models"
)

// --- Demandes d'adoption (côté client) ---

func (c *Client) CreateApplication(ctx context.Context, token string, application models.AdoptionApplication) (json.RawMessage, error) {
	return c.post(ctx, "/adoption/applications", token, application)
}

func (c *Client) GetApplications(ctx context.Context, token string) (json.RawMessage, error) {
	return c.get(ctx, "/adoption/applications", token, nil)
}

func (c *Client) UpdateApplication(ctx context.Context, token, applicationID string, application models.AdoptionApplication) (json.RawMessage, error) {
	return c.put(ctx, "/adoption/applications/"+applicationID, token, application)
}

func (c *Client) RevokeApplication(ctx context.Context, token, applicationID string) (json.RawMessage, error) {
	return c.patch(ctx, "/adoption/applications/"+applicationID+"/revoke", token, nil)
}

func (c *Client) DeleteApplication(ctx context.Context, token, applicationID string) (json.RawMessage, error) {
	return c.delete(ctx, "/adoption/applications/"+applicationID, token)
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, token, applicationID, status string) (json.RawMessage, error) {
	return c.patch(ctx, "/adoption/applications/"+applicationID+"/status", token, map[string]string{"status": status})
}

// --- Variantes vendeur : CRUD animaux à adopter ---

func (c *Client) GetPets(ctx context.Context, token string) (json.RawMessage, error) {
	return c.get(ctx, "/vendor/adoption/pets", token, nil)
}

func (c *Client) GetMyPets(ctx context.Context, token string) (json.RawMessage, error) {
	return c.get(ctx, "/vendor/adoption/my-pets", token, nil)
}

func (c *Client) GetVendorApplications(ctx context.Context, token string) (json.RawMessage, error) {
	return c.get(ctx, "/vendor/adoption/applications", token, nil)
}

func (c *Client) CreatePet(ctx context.Context, token string, pet interface{}) (json.RawMessage, error) {
	return c.post(ctx, "/vendor/adoption/pets", token, pet)
}

func (c *Client) UpdatePet(ctx context.Context, token, petID string, pet interface{}) (json.RawMessage, error) {
	return c.put(ctx, "/vendor/adoption/pets/"+petID, token, pet)
}

func (c *Client) DeletePet(ctx context.Context, token, petID string) (json.RawMessage, error) {
	return c.delete(ctx, "/vendor/adoption/pets/"+petID, token)
}
