package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawfam_front_end/internal/models"
)

func newDaycareRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("session_id", "session-test")
		c.Set("token", "token-test")
		c.Set("email", "jean@exemple.fr")
		c.Next()
	})
	r.POST("/api/daycare/bookings/mode", h.SelectBookingMode)
	r.POST("/api/daycare/bookings", h.CreateBooking)
	return r
}

func formulaireReservation() models.BookingForm {
	return models.BookingForm{
		PetName:      "Rex",
		PetType:      "Dog",
		PetAge:       "3",
		Email:        "jean@exemple.fr",
		MobileNumber: "0612345678",
		StartDate:    "2025-06-16",
		EndDate:      "2025-06-18",
	}
}

func TestCreateBookingCalculeLeMontantAvecLeTarifBackend(t *testing.T) {
	var received models.BookingRequest
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/vendor/daycare/centers":
			// le tarif affiché côté client (450) est périmé : ici 500
			w.Write([]byte(`{"data":[{"_id":"c1","name":"Happy Paws","location":"Lyon","pricePerDay":500}]}`))
		case "/daycare/bookings":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.Write([]byte(`{"success":true}`))
		default:
			t.Fatalf("chemin inattendu: %s", r.URL.Path)
		}
	})
	r := newDaycareRouter(h)

	w := postJSON(r, "/api/daycare/bookings", gin.H{
		"centerId": "c1",
		"form":     formulaireReservation(),
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 2 jours × 500, avec le tarif relu depuis le backend
	assert.Equal(t, 1000.0, received.TotalAmount)
	assert.Equal(t, "c1", received.DaycareCenterID)
	assert.Equal(t, "Happy Paws", received.DaycareCenter.Name)
	assert.Equal(t, 500.0, received.DaycareCenter.PricePerDay)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1000.0, resp["totalAmount"])
}

func TestSelectBookingModeManuelEffaceLAnimal(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {})
	r := newDaycareRouter(h)

	form := formulaireReservation()
	w := postJSON(r, "/api/daycare/bookings/mode", gin.H{"mode": "manual", "form": form})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Mode string             `json:"mode"`
		Form models.BookingForm `json:"form"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "manual", resp.Mode)
	assert.Empty(t, resp.Form.PetName)
	assert.Empty(t, resp.Form.PetType)
	assert.Empty(t, resp.Form.PetAge)
	// contact et dates conservés
	assert.Equal(t, "jean@exemple.fr", resp.Form.Email)
	assert.Equal(t, "2025-06-16", resp.Form.StartDate)
	assert.Equal(t, "2025-06-18", resp.Form.EndDate)
}

func TestSelectBookingModeAnimalDuProfil(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {})
	r := newDaycareRouter(h)

	w := postJSON(r, "/api/daycare/bookings/mode", gin.H{
		"mode": "existing",
		"form": gin.H{"startDate": "2025-06-16", "endDate": "2025-06-18"},
		"pet":  gin.H{"name": "Mimi", "type": "Cat", "age": "5"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Form models.BookingForm `json:"form"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Mimi", resp.Form.PetName)
	assert.Equal(t, "Cat", resp.Form.PetType)
	assert.Equal(t, "5", resp.Form.PetAge)
	// email par défaut depuis la session
	assert.Equal(t, "jean@exemple.fr", resp.Form.Email)
	assert.Equal(t, "2025-06-16", resp.Form.StartDate)
}

func TestSelectBookingModeInconnuRefuse(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {})
	r := newDaycareRouter(h)

	w := postJSON(r, "/api/daycare/bookings/mode", gin.H{"mode": "autre"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingCentreIntrouvable(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"_id":"autre","name":"Autre Centre"}]}`))
	})
	r := newDaycareRouter(h)

	w := postJSON(r, "/api/daycare/bookings", gin.H{
		"centerId": "c1",
		"form":     formulaireReservation(),
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Centre introuvable")
}

func TestCreateBookingFormulaireInvalideBloqueLEnvoi(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("aucun appel backend attendu tant que la validation échoue")
	})
	r := newDaycareRouter(h)

	form := formulaireReservation()
	form.MobileNumber = "12345"
	form.EndDate = "2025-06-10" // avant le début

	w := postJSON(r, "/api/daycare/bookings", gin.H{"centerId": "c1", "form": form})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "mobileNumber")
	assert.Contains(t, resp.Errors, "endDate")
}
