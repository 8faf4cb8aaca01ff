package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pawfam_front_end/internal/backend"
	"pawfam_front_end/internal/cache"
	"pawfam_front_end/internal/cart"
	"pawfam_front_end/internal/config"
	"pawfam_front_end/internal/handlers"
	"pawfam_front_end/internal/middleware"
	"pawfam_front_end/internal/routes"
)

func main() {
	config.Load()

	if err := cache.InitRedis(); err != nil {
		log.Fatal("❌ Impossible d'initialiser Redis : ", err)
	}
	defer cache.CloseRedis()

	middleware.InitSessionStore(config.SessionSecret())

	client := backend.NewClient(config.BackendURL())
	log.Println("✅ Client API PawFam initialisé:", config.BackendURL())

	h := handlers.New(client, cart.NewRegistry())

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.FrontendOrigin()},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur PawFam lancé sur le port", port)
	r.Run(":" + port)
}
