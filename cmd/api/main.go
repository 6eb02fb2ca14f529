package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goldinkstudio/tattoo-booking-api/internal/config"
	dbpkg "github.com/goldinkstudio/tattoo-booking-api/internal/db"
	"github.com/goldinkstudio/tattoo-booking-api/internal/middleware"
	"github.com/goldinkstudio/tattoo-booking-api/internal/routes"
	"github.com/goldinkstudio/tattoo-booking-api/internal/storage"
	"github.com/goldinkstudio/tattoo-booking-api/internal/tokens"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	objectStore := storage.NewS3Store(cfg)

	denylist, err := tokens.NewRedisDenylist(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, objectStore, denylist)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
