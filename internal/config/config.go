package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// BackendURL retourne l'URL de base de l'API PawFam distante
func BackendURL() string {
	url := os.Getenv("BACKEND_API_URL")
	if url == "" {
		url = "https://paw-fam-backend.vercel.app/api"
	}
	return url
}

// FrontendOrigin retourne l'origine autorisée pour le CORS
func FrontendOrigin() string {
	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	return origin
}

// SessionSecret retourne le secret utilisé pour signer les cookies de session
func SessionSecret() string {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return secret
}
