package normalize

import (
	"bytes"
	"encoding/json"
)

// KnownListKeys — noms de propriétés tableau rencontrés selon les endpoints
// du backend, dans l'ordre de priorité.
var KnownListKeys = []string{"data", "results", "items", "applications", "orders", "bookings", "docs"}

// ExtractList extrait un tableau d'une réponse à la forme incohérente :
//  1. la réponse est déjà un tableau → telle quelle
//  2. objet → première clé connue à valeur tableau, dans l'ordre de priorité
//  3. objet → première propriété à valeur tableau, dans l'ordre du document
//  4. sinon → tableau vide (on ne lève jamais d'erreur, l'affichage dégrade)
func ExtractList(raw json.RawMessage, knownKeys []string) []json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []json.RawMessage{}
	}

	if trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err == nil {
			return items
		}
		return []json.RawMessage{}
	}

	if trimmed[0] != '{' {
		return []json.RawMessage{}
	}

	// Les propriétés sont relues dans l'ordre du document pour que le repli
	// "première propriété tableau" soit déterministe
	keys, values := objectFields(trimmed)

	for _, known := range knownKeys {
		if value, ok := values[known]; ok {
			if items, ok := asArray(value); ok {
				return items
			}
		}
	}

	for _, key := range keys {
		if items, ok := asArray(values[key]); ok {
			return items
		}
	}

	return []json.RawMessage{}
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, false
	}
	return items, true
}

// objectFields décode un objet JSON en conservant l'ordre des clés
func objectFields(raw []byte) ([]string, map[string]json.RawMessage) {
	keys := []string{}
	values := map[string]json.RawMessage{}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil { // '{'
		return keys, values
	}
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			break
		}
		key, ok := keyToken.(string)
		if !ok {
			break
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			break
		}
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = value
	}
	return keys, values
}
