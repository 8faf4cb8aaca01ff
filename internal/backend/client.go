package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"pawfam_front_end/internal/models"
)

// ErrUnauthorized — le backend a répondu 401 : la session est invalide,
// l'appelant doit purger le token et l'utilisateur stockés
var ErrUnauthorized = errors.New("session invalide")

// FieldError est une erreur de validation renvoyée par le backend
// (express-validator : { errors: [ { param, msg } ] })
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

// APIError est une réponse d'erreur structurée du backend
type APIError struct {
	Status  int          `json:"-"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("erreur backend (HTTP %d)", e.Status)
}

// FieldErrors remappe les erreurs serveur sur l'ErrorMap avec les mêmes clés
// que la validation locale : "shippingAddress.fullName" → "fullName"
func (e *APIError) FieldErrors() models.ErrorMap {
	mapped := models.ErrorMap{}
	for _, fieldErr := range e.Errors {
		if fieldErr.Param == "" {
			continue
		}
		parts := strings.Split(fieldErr.Param, ".")
		mapped[parts[len(parts)-1]] = fieldErr.Msg
	}
	return mapped
}

// Client parle à l'API PawFam distante. Un seul essai par appel : pas de
// retry ni de backoff, l'échec remonte tel quel à l'UI.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// do exécute une requête : Authorization Bearer si un token est présent,
// 401 → ErrUnauthorized, ≥400 → *APIError, erreur réseau → erreur transport
func (c *Client) do(ctx context.Context, method, path, token string, body interface{}, query url.Values) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("impossible de joindre le serveur: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("impossible de lire la réponse: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		_ = json.Unmarshal(data, apiErr)
		return nil, apiErr
	}

	return data, nil
}

func (c *Client) get(ctx context.Context, path, token string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, token, nil, query)
}

func (c *Client) post(ctx context.Context, path, token string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, token, body, nil)
}

func (c *Client) put(ctx context.Context, path, token string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, token, body, nil)
}

func (c *Client) patch(ctx context.Context, path, token string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, path, token, body, nil)
}

func (c *Client) delete(ctx context.Context, path, token string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
