package normalize

import (
	"encoding/json"
	"sort"
)

// Clés de tri des vues d'historique
const (
	SortByDate   = "date"
	SortByAmount = "totalAmount"
)

// SortList trie les items d'un historique par date ou par montant, croissant
// par défaut, `order=desc` pour l'inverse. Une clé inconnue laisse l'ordre du
// backend. Le tri est stable dans les deux sens : les items à valeur égale
// gardent l'ordre du backend.
func SortList(items []json.RawMessage, sortBy, order string) []json.RawMessage {
	var less func(a, b json.RawMessage) bool
	switch sortBy {
	case SortByDate:
		less = func(a, b json.RawMessage) bool {
			// les dates ISO (AAAA-MM-JJ) se comparent lexicographiquement
			return itemDate(a) < itemDate(b)
		}
	case SortByAmount:
		less = func(a, b json.RawMessage) bool {
			return itemAmount(a) < itemAmount(b)
		}
	default:
		return items
	}

	if order == "desc" {
		asc := less
		less = func(a, b json.RawMessage) bool { return asc(b, a) }
	}

	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
	return items
}

func itemDate(raw json.RawMessage) string {
	return looseItem(raw).str("createdAt", "startDate", "visitDate", "date")
}

func itemAmount(raw json.RawMessage) float64 {
	return looseItem(raw).num("totalAmount", "amount", "total")
}
