package cart

import (
	"sync"
	"time"

	"pawfam_front_end/internal/models"
)

// ToastDuration — durée d'affichage de la notification "ajouté au panier"
const ToastDuration = 3 * time.Second

// Store est le panier en mémoire d'une session. Aucune persistance : l'état
// est perdu à la fermeture de la session. Toutes les mutations passent par le
// mutex car les handlers HTTP tournent sur plusieurs goroutines.
type Store struct {
	mu         sync.Mutex
	lines      []models.CartLine
	toast      models.CartToast
	toastTimer *time.Timer
	toastTTL   time.Duration
}

func NewStore() *Store {
	return &Store{toastTTL: ToastDuration}
}

// AddItem ajoute un produit au panier : +1 si la ligne existe déjà, sinon
// nouvelle ligne avec quantité 1. Affiche le toast (au plus un visible,
// un nouvel ajout relance le minuteur).
func (s *Store) AddItem(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.lines = append(s.lines, models.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  1,
			ImageRef:  p.Image,
		})
	}

	// 🔔 Toast "article ajouté" — remplace le précédent et relance le minuteur
	if s.toastTimer != nil {
		s.toastTimer.Stop()
	}
	s.toast = models.CartToast{Visible: true, Message: p.Name + " ajouté au panier"}
	s.toastTimer = time.AfterFunc(s.toastTTL, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.toast = models.CartToast{}
		s.toastTimer = nil
	})
}

// RemoveItem supprime la ligne sans condition (idempotent si absente)
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

func (s *Store) removeLocked(productID string) {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity remplace la quantité d'une ligne ; quantité ≤ 0 = suppression
func (s *Store) SetQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// Total = Σ(prix unitaire × quantité), 0 pour un panier vide
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, line := range s.lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// ItemCount = Σ(quantités), 0 pour un panier vide
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Clear vide le panier (appelé après une commande réussie)
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines retourne une copie des lignes du panier
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Toast retourne l'état courant de la notification
func (s *Store) Toast() models.CartToast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toast
}

// DismissToast ferme la notification avant son expiration
func (s *Store) DismissToast() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.toastTimer != nil {
		s.toastTimer.Stop()
		s.toastTimer = nil
	}
	s.toast = models.CartToast{}
}
