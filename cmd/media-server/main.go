package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"clubhub/internal/config"
	"clubhub/internal/dbmongo"
	"clubhub/internal/media"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.LoadConfig()

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Close(context.Background())

	mediaServer := media.NewHTTPServer(mongoClient)

	port := os.Getenv("MEDIA_PORT")
	if port == "" {
		port = "8081"
	}

	log.Printf("🚀 Media HTTP Server starting on port %s", port)
	log.Printf("📂 Serving files at: http://localhost:%s/media/{fileId}", port)

	if err := http.ListenAndServe(":"+port, mediaServer); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
