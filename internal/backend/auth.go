package backend

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pawfam_front_end/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse — token bearer + enregistrement utilisateur renvoyés au login
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return c.authCall(ctx, "/auth/register", req)
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	return c.authCall(ctx, "/auth/login", req)
}

func (c *Client) VendorRegister(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return c.authCall(ctx, "/auth/vendor/register", req)
}

func (c *Client) VendorLogin(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	return c.authCall(ctx, "/auth/vendor/login", req)
}

func (c *Client) authCall(ctx context.Context, path string, body interface{}) (*AuthResponse, error) {
	data, err := c.post(ctx, path, "", body)
	if err != nil {
		return nil, err
	}
	var auth AuthResponse
	if err := json.Unmarshal(data, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Me valide le token stocké contre le backend ("who am I")
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	data, err := c.get(ctx, "/auth/me", token, nil)
	if err != nil {
		return nil, err
	}
	// le backend renvoie soit l'utilisateur directement soit { user: {...} }
	var wrapped struct {
		User *models.User `json:"user"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.User != nil {
		return wrapped.User, nil
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) SendPasswordResetOTP(ctx context.Context, email string) error {
	_, err := c.post(ctx, "/auth/send-reset-otp", "", map[string]string{"email": email})
	return err
}

func (c *Client) VerifyPasswordResetOTP(ctx context.Context, email, otp string) (bool, error) {
	data, err := c.post(ctx, "/auth/verify-reset-otp", "", map[string]string{"email": email, "otp": otp})
	if err != nil {
		return false, err
	}
	var resp struct {
		Verified bool `json:"verified"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return false, err
	}
	return resp.Verified, nil
}

func (c *Client) ResetPassword(ctx context.Context, email, otp, newPassword string) (bool, string, error) {
	data, err := c.post(ctx, "/auth/reset-password", "", map[string]string{
		"email":       email,
		"otp":         otp,
		"newPassword": newPassword,
	})
	if err != nil {
		return false, "", err
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return false, "", err
	}
	return resp.Success, resp.Message, nil
}

// TokenExpired lit la claim exp du token sans vérifier la signature (le
// secret appartient au backend) pour purger une session expirée sans
// aller-retour réseau. Un token illisible est traité comme expiré.
func TokenExpired(token string, now time.Time) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return true
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return true
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		// pas de claim exp : on laisse le backend trancher
		return false
	}
	return now.Unix() > int64(exp)
}
