package cart

import "sync"

// Registry associe chaque session à son panier. Le panier est passé
// explicitement aux handlers qui en ont besoin — pas de singleton ambiant.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// ForSession retourne le panier de la session, créé à la demande
func (r *Registry) ForSession(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, ok := r.stores[sessionID]
	if !ok {
		store = NewStore()
		r.stores[sessionID] = store
	}
	return store
}

// Drop supprime le panier d'une session (logout ou session invalidée)
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, sessionID)
}
