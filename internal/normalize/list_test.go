package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractListTableauDirect(t *testing.T) {
	items := ExtractList(json.RawMessage(`[{"a":1},{"a":2}]`), KnownListKeys)
	require.Len(t, items, 2)
	assert.JSONEq(t, `{"a":1}`, string(items[0]))
}

func TestExtractListCleConnue(t *testing.T) {
	raw := json.RawMessage(`{"success":true,"applications":[{"id":"x"}]}`)
	items := ExtractList(raw, KnownListKeys)
	require.Len(t, items, 1)
	assert.JSONEq(t, `{"id":"x"}`, string(items[0]))
}

func TestExtractListEnveloppeEquivalenteAuTableauNu(t *testing.T) {
	// {"applications":[...]} et [...] donnent le même résultat
	wrapped := ExtractList(json.RawMessage(`{"applications":[{"id":"x"},{"id":"y"}]}`), KnownListKeys)
	bare := ExtractList(json.RawMessage(`[{"id":"x"},{"id":"y"}]`), KnownListKeys)
	assert.Equal(t, bare, wrapped)
}

func TestExtractListPrioriteDesClesConnues(t *testing.T) {
	// "data" prime sur "orders" même si "orders" apparaît en premier
	raw := json.RawMessage(`{"orders":[{"o":1}],"data":[{"d":1}]}`)
	items := ExtractList(raw, KnownListKeys)
	require.Len(t, items, 1)
	assert.JSONEq(t, `{"d":1}`, string(items[0]))
}

func TestExtractListCleConnueNonTableauIgnoree(t *testing.T) {
	// "data" est un objet → on passe à la clé connue suivante
	raw := json.RawMessage(`{"data":{"nested":true},"orders":[{"o":1}]}`)
	items := ExtractList(raw, KnownListKeys)
	require.Len(t, items, 1)
	assert.JSONEq(t, `{"o":1}`, string(items[0]))
}

func TestExtractListRepliPremierePropTableau(t *testing.T) {
	// aucune clé connue : première propriété tableau dans l'ordre du document
	raw := json.RawMessage(`{"count":2,"weird":[{"w":1}],"other":[{"x":1}]}`)
	items := ExtractList(raw, KnownListKeys)
	require.Len(t, items, 1)
	assert.JSONEq(t, `{"w":1}`, string(items[0]))
}

func TestExtractListEchoueFerme(t *testing.T) {
	// aucune forme reconnue → tableau vide, jamais d'erreur
	for _, raw := range []string{
		`{}`,
		`{"message":"ok"}`,
		`"une chaîne"`,
		`42`,
		`null`,
		``,
		`pas du json`,
	} {
		items := ExtractList(json.RawMessage(raw), KnownListKeys)
		assert.NotNil(t, items, raw)
		assert.Empty(t, items, raw)
	}
}
