package media

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"clubhub/internal/dbmongo"
)

// HTTPServer streams stored media bytes. Asset URLs generated by the admin
// API all point here.
type HTTPServer struct {
	store *dbmongo.AssetStore
}

func NewHTTPServer(mongoClient *dbmongo.MongoClient) *HTTPServer {
	return &HTTPServer{
		store: dbmongo.NewAssetStore(mongoClient),
	}
}

func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	router := mux.NewRouter()

	// Main endpoint: GET /media/{fileId}
	router.HandleFunc("/media/{fileId}", s.serveFile).Methods("GET")

	// Health check
	router.HandleFunc("/health", s.health).Methods("GET")

	router.ServeHTTP(w, r)
}

func (s *HTTPServer) serveFile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fileID := vars["fileId"]

	reader, stored, err := s.store.Open(r.Context(), fileID)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	contentType := stored.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", stored.Size))

	// Stream file directly to response
	_, err = io.Copy(w, reader)
	if err != nil {
		log.Printf("Error streaming file: %v", err)
	}
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("✅ Media server is healthy"))
}
