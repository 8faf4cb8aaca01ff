package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawfam_front_end/internal/backend"
	"pawfam_front_end/internal/cart"
	"pawfam_front_end/internal/models"
)

// date fixe injectée dans tous les tests handlers
var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// newTestRouter monte les routes de checkout derrière un middleware de session
// factice : pas de Redis ni de cookies, la session et le token sont posés
// directement dans le contexte.
func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("session_id", "session-test")
		c.Set("token", "token-test")
		c.Set("email", "jean@exemple.fr")
		c.Next()
	})

	api := r.Group("/api")
	api.POST("/checkout/open", h.OpenCheckout)
	api.POST("/checkout/validate-field", h.ValidateCheckoutField)
	api.POST("/checkout", h.SubmitCheckout)
	api.GET("/cart", h.GetCart)
	return r
}

func newTestHandler(t *testing.T, fake http.HandlerFunc) *Handler {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	h := New(backend.NewClient(server.URL), cart.NewRegistry())
	h.Now = func() time.Time { return testNow }
	return h
}

func remplirPanier(h *Handler) *cart.Store {
	store := h.Carts.ForSession("session-test")
	store.AddItem(models.Product{ID: "a", Name: "Croquettes", Price: 100})
	store.AddItem(models.Product{ID: "a", Name: "Croquettes", Price: 100})
	store.AddItem(models.Product{ID: "b", Name: "Laisse", Price: 50})
	return store
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func formulaireCommande() models.CheckoutForm {
	return models.CheckoutForm{
		FullName:      "Jean Dupont",
		Email:         "jean@exemple.fr",
		Address:       "12 rue des Lilas",
		City:          "Lyon",
		State:         "Rhone",
		ZipCode:       "690001",
		PaymentMethod: "card",
		CardNumber:    "1234 5678 9012 3456",
		ExpiryDate:    "12/27",
		Cvv:           "123",
		DeliveryDate:  "2025-06-20",
		DeliveryTime:  "17:30",
	}
}

func TestSubmitCheckoutEnvoieLaCommandeEtVideLePanier(t *testing.T) {
	var received models.OrderRequest
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/orders", r.URL.Path)
		require.Equal(t, "Bearer token-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"success":true}`))
	})
	store := remplirPanier(h)
	r := newTestRouter(h)

	w := postJSON(r, "/api/checkout", formulaireCommande())

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// le total est celui du panier : 2×100 + 1×50
	assert.Equal(t, 250.0, received.TotalAmount)
	require.Len(t, received.Items, 2)
	assert.Equal(t, "1234567890123456", received.PaymentInfo.CardNumber)

	// panier vidé après succès
	assert.Equal(t, 0, store.ItemCount())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 250.0, resp["totalAmount"])
	assert.NotContains(t, resp, "upiQr")
}

func TestSubmitCheckoutPanierVide(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("aucun appel backend attendu")
	})
	r := newTestRouter(h)

	w := postJSON(r, "/api/checkout", formulaireCommande())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Panier vide")
}

func TestSubmitCheckoutUpiInvalideBloqueLEnvoi(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("aucun appel backend attendu tant que la validation échoue")
	})
	store := remplirPanier(h)
	r := newTestRouter(h)

	form := formulaireCommande()
	form.PaymentMethod = "upi"
	form.UpiID = "abc@xy" // fournisseur trop court

	w := postJSON(r, "/api/checkout", form)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "upiId")

	// le panier reste intact pour un nouvel essai
	assert.Equal(t, 3, store.ItemCount())
}

func TestSubmitCheckoutUpiValideRenvoieLeQR(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	})
	remplirPanier(h)
	r := newTestRouter(h)

	form := formulaireCommande()
	form.PaymentMethod = "upi"
	form.UpiID = "jean@okbank"
	form.CardNumber = ""
	form.ExpiryDate = ""
	form.Cvv = ""

	w := postJSON(r, "/api/checkout", form)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["upiQr"])
}

func TestSubmitCheckoutEchecBackendConserveLePanier(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Stock insuffisant"}`))
	})
	store := remplirPanier(h)
	r := newTestRouter(h)

	w := postJSON(r, "/api/checkout", formulaireCommande())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Stock insuffisant")
	assert.Equal(t, 3, store.ItemCount(), "le panier reste intact après un échec")
}

func TestSubmitCheckoutErreursServeurRemappees(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Validation failed","errors":[{"param":"shippingAddress.zipCode","msg":"Code postal inconnu"}]}`))
	})
	remplirPanier(h)
	r := newTestRouter(h)

	w := postJSON(r, "/api/checkout", formulaireCommande())

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Code postal inconnu", resp.Errors["zipCode"])
}

func TestOpenCheckoutValeursParDefaut(t *testing.T) {
	// profil indisponible : le checkout s'ouvre quand même avec les défauts
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no profile"}`))
	})
	r := newTestRouter(h)

	w := postJSON(r, "/api/checkout/open", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Form models.CheckoutForm `json:"form"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "card", resp.Form.PaymentMethod)
	assert.Equal(t, "2025-06-15", resp.Form.DeliveryDate)
	assert.Equal(t, "17:30", resp.Form.DeliveryTime)
	assert.Equal(t, "jean@exemple.fr", resp.Form.Email)
	assert.Empty(t, resp.Form.CardNumber, "jamais de préremplissage des champs sensibles")
}

func TestOpenCheckoutPreremplitDepuisLeProfil(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"profile":{"name":"Jean Dupont","residentialAddress":"12 rue des Lilas","city":"Lyon","state":"Rhone","zipCode":"690001"}}`))
	})
	r := newTestRouter(h)

	w := postJSON(r, "/api/checkout/open", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Form models.CheckoutForm `json:"form"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Jean Dupont", resp.Form.FullName)
	assert.Equal(t, "12 rue des Lilas", resp.Form.Address)
	assert.Equal(t, "690001", resp.Form.ZipCode)
}

func TestValidateCheckoutField(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {})
	r := newTestRouter(h)

	w := postJSON(r, "/api/checkout/validate-field", gin.H{"name": "zipCode", "value": "12345"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Valid bool   `json:"valid"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.NotEmpty(t, resp.Error)

	w = postJSON(r, "/api/checkout/validate-field", gin.H{"name": "zipCode", "value": "560001"})
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
}
