package handlers

import (
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Machine à états du flux "mot de passe oublié" :
// EmailEntry → OtpPending → PasswordEntry → Done.
// Chaque transition est une fonction nommée ; le seul retour arrière permis
// est d'un pas, et le renvoi d'OTP ne fait que relancer le compte à rebours.
type ResetState string

const (
	StateEmailEntry    ResetState = "email_entry"
	StateOtpPending    ResetState = "otp_pending"
	StatePasswordEntry ResetState = "password_entry"
	StateDone          ResetState = "done"
)

// OtpCountdown — validité affichée de l'OTP (le backend fait foi)
const OtpCountdown = 10 * time.Minute

var (
	otpRe       = regexp.MustCompile(`^\d{6}$`)
	pwUpperRe   = regexp.MustCompile(`[A-Z]`)
	pwLowerRe   = regexp.MustCompile(`[a-z]`)
	pwDigitRe   = regexp.MustCompile(`[0-9]`)
	pwSpecialRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// resetFlow est l'état partagé du flux d'une session. Les handlers tournent
// sur plusieurs goroutines : chaque lecture et chaque transition se fait sous
// le mutex du flux, tenu sur toute la durée de la transition pour que deux
// requêtes concurrentes de la même session soient sérialisées.
type resetFlow struct {
	mu           sync.Mutex
	State        ResetState
	Email        string
	Otp          string
	CountdownEnd time.Time
}

type resetRegistry struct {
	mu    sync.Mutex
	flows map[string]*resetFlow
}

func newResetRegistry() *resetRegistry {
	return &resetRegistry{flows: make(map[string]*resetFlow)}
}

func (r *resetRegistry) forSession(sessionID string) *resetFlow {
	r.mu.Lock()
	defer r.mu.Unlock()
	flow, ok := r.flows[sessionID]
	if !ok {
		flow = &resetFlow{State: StateEmailEntry}
		r.flows[sessionID] = flow
	}
	return flow
}

func (r *resetRegistry) drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.flows, sessionID)
}

// passwordStrong vérifie les 5 critères : ≥8 caractères, majuscule,
// minuscule, chiffre, caractère spécial
func passwordStrong(pw string) bool {
	return len(pw) >= 8 &&
		pwUpperRe.MatchString(pw) &&
		pwLowerRe.MatchString(pw) &&
		pwDigitRe.MatchString(pw) &&
		pwSpecialRe.MatchString(pw)
}

// countdownRemaining — appelé avec flow.mu tenu
func (h *Handler) countdownRemaining(flow *resetFlow) int {
	remaining := int(flow.CountdownEnd.Sub(h.Now()).Seconds())
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

//
// 🟢 GET /api/password-reset — état courant du flux
//
func (h *Handler) ResetStatus(c *gin.Context) {
	flow := h.resets.forSession(c.GetString("session_id"))
	flow.mu.Lock()
	defer flow.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"state":     flow.State,
		"countdown": h.countdownRemaining(flow),
	})
}

//
// 🟢 POST /api/password-reset/send-otp — EmailEntry → OtpPending
//
func (h *Handler) ResetSendOTP(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !adoptionEmailRe.MatchString(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"email": "Veuillez saisir une adresse email valide"}})
		return
	}

	flow := h.resets.forSession(c.GetString("session_id"))
	flow.mu.Lock()
	defer flow.mu.Unlock()

	if flow.State != StateEmailEntry {
		c.JSON(http.StatusConflict, gin.H{"error": "Étape invalide", "state": flow.State})
		return
	}

	if err := h.Backend.SendPasswordResetOTP(c.Request.Context(), input.Email); err != nil {
		h.respondBackendError(c, err)
		return
	}

	flow.State = StateOtpPending
	flow.Email = input.Email
	flow.CountdownEnd = h.Now().Add(OtpCountdown)

	c.JSON(http.StatusOK, gin.H{
		"state":     flow.State,
		"countdown": h.countdownRemaining(flow),
		"message":   "Un code à 6 chiffres a été envoyé à votre adresse email. Il expire dans 10 minutes.",
	})
}

//
// 🟢 POST /api/password-reset/resend — OtpPending uniquement, relance le
// compte à rebours
//
func (h *Handler) ResetResendOTP(c *gin.Context) {
	flow := h.resets.forSession(c.GetString("session_id"))
	flow.mu.Lock()
	defer flow.mu.Unlock()

	if flow.State != StateOtpPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Étape invalide", "state": flow.State})
		return
	}

	if err := h.Backend.SendPasswordResetOTP(c.Request.Context(), flow.Email); err != nil {
		h.respondBackendError(c, err)
		return
	}

	flow.CountdownEnd = h.Now().Add(OtpCountdown)
	c.JSON(http.StatusOK, gin.H{
		"state":     flow.State,
		"countdown": h.countdownRemaining(flow),
		"message":   "Un nouveau code a été envoyé à votre adresse email.",
	})
}

//
// 🟢 POST /api/password-reset/verify — OtpPending → PasswordEntry
//
func (h *Handler) ResetVerifyOTP(c *gin.Context) {
	var input struct {
		Otp string `json:"otp"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !otpRe.MatchString(input.Otp) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"otp": "Veuillez saisir un code valide à 6 chiffres"}})
		return
	}

	flow := h.resets.forSession(c.GetString("session_id"))
	flow.mu.Lock()
	defer flow.mu.Unlock()

	if flow.State != StateOtpPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Étape invalide", "state": flow.State})
		return
	}

	verified, err := h.Backend.VerifyPasswordResetOTP(c.Request.Context(), flow.Email, input.Otp)
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	if !verified {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"otp": "Code invalide ou expiré. Veuillez réessayer."}})
		return
	}

	flow.State = StatePasswordEntry
	flow.Otp = input.Otp
	c.JSON(http.StatusOK, gin.H{"state": flow.State, "message": "Code vérifié ! Saisissez votre nouveau mot de passe."})
}

//
// 🟢 POST /api/password-reset/reset — PasswordEntry → Done
//
func (h *Handler) ResetPassword(c *gin.Context) {
	var input struct {
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	flow := h.resets.forSession(c.GetString("session_id"))
	flow.mu.Lock()
	defer flow.mu.Unlock()

	if flow.State != StatePasswordEntry {
		c.JSON(http.StatusConflict, gin.H{"error": "Étape invalide", "state": flow.State})
		return
	}

	if !passwordStrong(input.NewPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"password": "Le mot de passe doit respecter tous les critères"}})
		return
	}
	if input.NewPassword != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"confirmPassword": "Les mots de passe ne correspondent pas"}})
		return
	}

	success, message, err := h.Backend.ResetPassword(c.Request.Context(), flow.Email, flow.Otp, input.NewPassword)
	if err != nil {
		h.respondBackendError(c, err)
		return
	}
	if !success {
		if message == "" {
			message = "Échec de la réinitialisation. Veuillez réessayer."
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	flow.State = StateDone
	flow.Otp = ""
	c.JSON(http.StatusOK, gin.H{"state": flow.State, "message": "Mot de passe réinitialisé avec succès."})
}

//
// 🟢 POST /api/password-reset/back — retour d'un seul pas
//
func (h *Handler) ResetBack(c *gin.Context) {
	flow := h.resets.forSession(c.GetString("session_id"))
	flow.mu.Lock()
	defer flow.mu.Unlock()

	switch flow.State {
	case StateOtpPending:
		flow.State = StateEmailEntry
		flow.Email = ""
		flow.CountdownEnd = time.Time{}
	case StatePasswordEntry:
		flow.State = StateOtpPending
		flow.Otp = ""
	default:
		c.JSON(http.StatusConflict, gin.H{"error": "Retour impossible depuis cette étape", "state": flow.State})
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": flow.State, "countdown": h.countdownRemaining(flow)})
}
