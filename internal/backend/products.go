package backend

import (
	"context"
	"encoding/json"

	"pawfam_front_end/internal/models"
)

// --- Commandes d'accessoires (côté client) ---

func (c *Client) CreateOrder(ctx context.Context, token string, order models.OrderRequest) (json.RawMessage, error) {
	return c.post(ctx, "/products/orders", token, order)
}

func (c *Client) GetOrders(ctx context.Context, token string) (json.RawMessage, error) {
	return c.get(ctx, "/products/orders", token, nil)
}

func (c *Client) UpdateOrderAddress(ctx context.Context, token, orderID string, address models.ShippingAddress) (json.RawMessage, error) {
	return c.put(ctx, "/products/orders/"+orderID+"/address", token, map[string]interface{}{"shippingAddress": address})
}

func (c *Client) CancelOrder(ctx context.Context, token, orderID string) (json.RawMessage, error) {
	return c.patch(ctx, "/products/orders/"+orderID+"/cancel", token, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, token, orderID string) (json.RawMessage, error) {
	return c.delete(ctx, "/products/orders/"+orderID, token)
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID, status string) (json.RawMessage, error) {
	return c.patch(ctx, "/products/orders/"+orderID+"/status", token, map[string]string{"status": status})
}

// --- Variantes vendeur : CRUD produits ---

func (c *Client) GetProducts(ctx context.Context, token string) (json.RawMessage, error) {
	return c.get(ctx, "/vendor/accessories/products", token, nil)
}

func (c *Client) GetMyProducts(ctx context.Context, token string) (json.RawMessage, error) {
	return c.get(ctx, "/vendor/accessories/my-products", token, nil)
}

func (c *Client) GetVendorOrders(ctx context.Context, token string) (json.RawMessage, error) {
	return c.get(ctx, "/vendor/accessories/orders", token, nil)
}

func (c *Client) CreateProduct(ctx context.Context, token string, product interface{}) (json.RawMessage, error) {
	return c.post(ctx, "/vendor/accessories/products", token, product)
}

func (c *Client) UpdateProduct(ctx context.Context, token, productID string, product interface{}) (json.RawMessage, error) {
	return c.put(ctx, "/vendor/accessories/products/"+productID, token, product)
}

func (c *Client) DeleteProduct(ctx context.Context, token, productID string) (json.RawMessage, error) {
	return c.delete(ctx, "/vendor/accessories/products/"+productID, token)
}
