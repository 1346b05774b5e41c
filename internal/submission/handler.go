package submission

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type Handler struct {
	service SubmissionService
}

func NewHandler(service SubmissionService) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the back-office submission endpoints on an
// authenticated subrouter.
func (h *Handler) RegisterAdminRoutes(r *mux.Router) {
	r.HandleFunc("/contact-messages", h.ListMessages).Methods("GET")
	r.HandleFunc("/contact-messages/{id}", h.ViewMessage).Methods("GET")
	r.HandleFunc("/contact-messages/{id}", h.UpdateMessage).Methods("PATCH")
	r.HandleFunc("/contact-messages/{id}", h.DeleteMessage).Methods("DELETE")

	r.HandleFunc("/applications", h.ListApplications).Methods("GET")
	r.HandleFunc("/applications/{id}", h.GetApplication).Methods("GET")
	r.HandleFunc("/applications/{id}", h.UpdateApplication).Methods("PATCH")
	r.HandleFunc("/applications/{id}", h.DeleteApplication).Methods("DELETE")
}

// RegisterPublicRoutes mounts the unauthenticated submission forms.
func (h *Handler) RegisterPublicRoutes(r *mux.Router) {
	r.HandleFunc("/contact", h.SubmitContact).Methods("POST")
	r.HandleFunc("/jobs/{id}/apply", h.Apply).Methods("POST")
}

type contactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var form contactForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.service.SubmitContact(r.Context(), form.Name, form.Email, form.Subject, form.Message)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	jobPostID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	var (
		cvName string
		cvType string
	)
	var cvReader io.Reader
	if headers := r.MultipartForm.File["cv"]; len(headers) > 0 {
		src, err := headers[0].Open()
		if err != nil {
			http.Error(w, "invalid CV upload", http.StatusBadRequest)
			return
		}
		defer src.Close()
		cvReader = src
		cvName = headers[0].Filename
		cvType = headers[0].Header.Get("Content-Type")
	}

	app, err := h.service.Apply(r.Context(), jobPostID,
		r.FormValue("name"), r.FormValue("email"), r.FormValue("phone"), r.FormValue("coverLetter"),
		cvName, cvType, cvReader)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	result, err := h.service.ListContactMessages(r.Context(), query.Get("status"), page, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) ViewMessage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	msg, err := h.service.ViewContactMessage(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

type updateForm struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

func (h *Handler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var form updateForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.service.UpdateContactMessage(r.Context(), id, form.Status, form.Notes)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if !confirmed(r) {
		h.writeError(w, ErrNotConfirmed)
		return
	}

	if err := h.service.DeleteContactMessage(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	result, err := h.service.ListApplications(r.Context(), query.Get("status"), page, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	app, err := h.service.GetApplication(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *Handler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var form updateForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	app, err := h.service.UpdateApplication(r.Context(), id, form.Status, form.Notes)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *Handler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if !confirmed(r) {
		h.writeError(w, ErrNotConfirmed)
		return
	}

	if err := h.service.DeleteApplication(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func confirmed(r *http.Request) bool {
	return r.Header.Get("X-Confirm-Delete") == "true"
}

func parseID(raw string) (uint64, error) {
	return strconv.ParseUint(raw, 10, 64)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrNotConfirmed):
		http.Error(w, err.Error(), http.StatusPreconditionFailed)
	case errors.Is(err, ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("Error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
