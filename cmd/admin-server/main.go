package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"clubhub/internal/common"
	"clubhub/internal/di"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize application with dependency injection
	log.Println("Initializing application...")
	app, err := di.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Mongo.Close(context.Background())

	router := setupRouter(app)

	server := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", app.Config.Server.Host, app.Config.Server.Port),
		Handler:        router,
		ReadTimeout:    time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(app.Config.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	go func() {
		log.Printf("🚀 Admin API starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// setupRouter configures HTTP routes
func setupRouter(app *di.Application) *mux.Router {
	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(loggingMiddleware)

	api := router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", healthCheckHandler).Methods("GET")

	// Public: contact form, job applications, admin login
	app.SubmissionHandler.RegisterPublicRoutes(api)
	app.AuthHandler.RegisterRoutes(api)

	// Everything under /api/admin requires a valid token
	adminAPI := api.PathPrefix("/admin").Subrouter()
	adminAPI.Use(common.AuthMiddleware)

	// Submission routes go first: the content handler ends with a
	// /{resource} catch-all that would otherwise swallow them.
	app.SubmissionHandler.RegisterAdminRoutes(adminAPI)
	app.ContentHandler.RegisterRoutes(adminAPI)

	return router
}

// corsMiddleware adds CORS headers
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Confirm-Delete, X-Upload-ID")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// healthCheckHandler provides basic health check
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"clubhub-admin"}`))
}
