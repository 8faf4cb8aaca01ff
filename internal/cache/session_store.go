package cache

import (
	"encoding/json"
	"time"

	"pawfam_front_end/internal/models"
)

// Le token d'authentification et l'enregistrement utilisateur sont le seul
// état durable côté client : lus à l'ouverture de session, supprimés au
// logout ou sur un 401 du backend.

const SessionTTL = 30 * 24 * time.Hour

type sessionRecord struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// StoreSession enregistre le token et l'utilisateur d'une session
func StoreSession(sessionID, token string, user models.User) error {
	data, err := json.Marshal(sessionRecord{Token: token, User: user})
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, "session:"+sessionID, data, SessionTTL).Err()
}

// GetSession récupère le token et l'utilisateur d'une session.
// Retourne ("", nil, nil) si la session n'a pas de credentials.
func GetSession(sessionID string) (string, *models.User, error) {
	data, err := RedisClient.Get(ctx, "session:"+sessionID).Result()
	if err != nil || data == "" {
		return "", nil, nil
	}
	var record sessionRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return "", nil, err
	}
	return record.Token, &record.User, nil
}

// DeleteSession purge les credentials d'une session (logout ou 401)
func DeleteSession(sessionID string) error {
	return RedisClient.Del(ctx, "session:"+sessionID).Err()
}
