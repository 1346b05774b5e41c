package content

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"clubhub/internal/common"
)

// resourceSpec ties a URL resource name to its category and multipart field
// conventions. Create and update use different file field names so "add"
// can never be confused with a retained reference.
type resourceSpec struct {
	category    common.ContentCategory
	createField string // empty = JSON-only resource
	updateField string
}

var resources = map[string]resourceSpec{
	"activities":        {common.CategoryActivity, "images", "newImages"},
	"board-members":     {common.CategoryBoardMember, "image", "newImage"},
	"job-posts":         {common.CategoryJobPost, "", ""},
	"cv-templates":      {common.CategoryCVTemplate, "pdf", "newPdf"},
	"career-guidelines": {common.CategoryCareerGuideline, "image", "newImage"},
	"interview-tips":    {common.CategoryInterviewTip, "", ""},
	"success-stories":   {common.CategorySuccessStory, "image", "newImage"},
}

type Handler struct {
	service   ContentService
	uploads   *UploadRegistry
	maxMemory int64
}

func NewHandler(service ContentService) *Handler {
	return &Handler{
		service:   service,
		uploads:   NewUploadRegistry(),
		maxMemory: 32 << 20, // 32MB in memory, rest spills to disk
	}
}

// RegisterRoutes mounts the admin content endpoints on an authenticated
// subrouter.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/{resource}", h.List).Methods("GET")
	r.HandleFunc("/{resource}", h.Create).Methods("POST")
	r.HandleFunc("/{resource}/counts", h.Counts).Methods("GET")
	r.HandleFunc("/{resource}/images/{imageId}", h.DeleteImage).Methods("DELETE")
	r.HandleFunc("/{resource}/{id}", h.GetOne).Methods("GET")
	r.HandleFunc("/{resource}/{id}", h.Update).Methods("PUT")
	r.HandleFunc("/{resource}/{id}", h.Delete).Methods("DELETE")
	r.HandleFunc("/uploads/{uploadId}/progress", h.UploadProgress).Methods("GET")
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	spec, ok := resources[mux.Vars(r)["resource"]]
	if !ok {
		http.Error(w, "unknown resource", http.StatusNotFound)
		return
	}

	query := r.URL.Query()
	if query.Get("page") != "" || query.Get("limit") != "" {
		page, _ := strconv.Atoi(query.Get("page"))
		limit, _ := strconv.Atoi(query.Get("limit"))
		result, err := h.service.ListPage(r.Context(), spec.category, page, limit)
		if err != nil {
			h.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
		return
	}

	items, err := h.service.List(r.Context(), spec.category)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items, "total": len(items)})
}

func (h *Handler) Counts(w http.ResponseWriter, r *http.Request) {
	spec, ok := resources[mux.Vars(r)["resource"]]
	if !ok {
		http.Error(w, "unknown resource", http.StatusNotFound)
		return
	}

	counts, err := h.service.Counts(r.Context(), spec.category)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	entity, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	spec, ok := resources[mux.Vars(r)["resource"]]
	if !ok {
		http.Error(w, "unknown resource", http.StatusNotFound)
		return
	}

	if spec.createField == "" || !isMultipart(r) {
		h.createJSON(w, r, spec)
		return
	}

	progress := h.trackUpload(r)
	files, cmd, err := h.parseMultipartCreate(r, spec)
	if err != nil {
		h.finishUpload(r, progress, err)
		h.writeError(w, err)
		return
	}
	defer closeFiles(files)
	progress.MarkProcessing()

	entity, err := h.service.Create(r.Context(), cmd, toNewFiles(files))
	if err != nil {
		if errors.Is(err, ErrAssetIncomplete) && entity != nil {
			// Partial commit: the record exists, the asset does not.
			// The caller retries the file via update.
			progress.Fail(err.Error())
			writeJSON(w, http.StatusCreated, map[string]interface{}{
				"entity":  entity,
				"warning": err.Error(),
			})
			return
		}
		h.finishUpload(r, progress, err)
		h.writeError(w, err)
		return
	}

	progress.Succeed()
	writeJSON(w, http.StatusCreated, entity)
}

func (h *Handler) createJSON(w http.ResponseWriter, r *http.Request, spec resourceSpec) {
	cmd := CreateEntityCommand{Active: true}
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	cmd.Category = spec.category

	entity, err := h.service.Create(r.Context(), cmd, nil)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entity)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	spec, ok := resources[mux.Vars(r)["resource"]]
	if !ok {
		http.Error(w, "unknown resource", http.StatusNotFound)
		return
	}
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if spec.updateField == "" || !isMultipart(r) {
		h.updateJSON(w, r, id)
		return
	}

	progress := h.trackUpload(r)
	files, cmd, keepIDs, err := h.parseMultipartUpdate(r, spec)
	if err != nil {
		h.finishUpload(r, progress, err)
		h.writeError(w, err)
		return
	}
	defer closeFiles(files)
	progress.MarkProcessing()

	entity, err := h.service.Update(r.Context(), id, cmd, keepIDs, toNewFiles(files))
	if err != nil {
		h.finishUpload(r, progress, err)
		h.writeError(w, err)
		return
	}

	progress.Succeed()
	writeJSON(w, http.StatusOK, entity)
}

func (h *Handler) updateJSON(w http.ResponseWriter, r *http.Request, id uint64) {
	var cmd UpdateEntityCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	entity, err := h.service.Update(r.Context(), id, cmd, nil, nil)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	gate := gateFromRequest(r)
	if !gate.Confirm("delete this item and all of its media?") {
		h.writeError(w, ErrNotConfirmed)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	assetID, err := parseID(mux.Vars(r)["imageId"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	gate := gateFromRequest(r)
	if !gate.Confirm("delete this file?") {
		h.writeError(w, ErrNotConfirmed)
		return
	}

	if err := h.service.DeleteAsset(r.Context(), assetID); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func (h *Handler) UploadProgress(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.uploads.Snapshot(mux.Vars(r)["uploadId"])
	if !ok {
		http.Error(w, "unknown upload", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// trackUpload wires a ProgressChannel into the request body so byte progress
// is observable under the client-chosen X-Upload-ID while the request is in
// flight.
func (h *Handler) trackUpload(r *http.Request) *ProgressChannel {
	progress := NewProgressChannel(r.ContentLength)
	if uploadID := r.Header.Get("X-Upload-ID"); uploadID != "" {
		h.uploads.Track(uploadID, progress)
	}
	r.Body = &trackedBody{reader: NewCountingReader(r.Body, progress), closer: r.Body}
	return progress
}

// finishUpload resolves the terminal state: an aborted transport surfaces as
// cancelled, anything else as failed.
func (h *Handler) finishUpload(r *http.Request, progress *ProgressChannel, err error) {
	if r.Context().Err() != nil {
		progress.Cancel()
		return
	}
	progress.Fail(err.Error())
}

type trackedBody struct {
	reader io.Reader
	closer io.Closer
}

func (b *trackedBody) Read(p []byte) (int, error) { return b.reader.Read(p) }
func (b *trackedBody) Close() error               { return b.closer.Close() }

type openedFile struct {
	file NewFile
	src  io.Closer
}

func (h *Handler) parseMultipartCreate(r *http.Request, spec resourceSpec) ([]openedFile, CreateEntityCommand, error) {
	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		return nil, CreateEntityCommand{}, ErrValidation
	}

	cmd := CreateEntityCommand{
		Category:    spec.category,
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Subtitle:    r.FormValue("subtitle"),
		Location:    r.FormValue("location"),
		Featured:    r.FormValue("featured") == "true",
		Active:      r.FormValue("active") != "false",
	}
	if v := r.FormValue("displayOrder"); v != "" {
		cmd.DisplayOrder, _ = strconv.Atoi(v)
	}
	if v := r.FormValue("date"); v != "" {
		parsed, err := common.ParseDate(v)
		if err != nil {
			return nil, cmd, ErrValidation
		}
		cmd.EventDate = &parsed
	}

	files, err := openFormFiles(r, spec.createField)
	if err != nil {
		return nil, cmd, err
	}
	return files, cmd, nil
}

func (h *Handler) parseMultipartUpdate(r *http.Request, spec resourceSpec) ([]openedFile, UpdateEntityCommand, []uint64, error) {
	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		return nil, UpdateEntityCommand{}, nil, ErrValidation
	}

	var cmd UpdateEntityCommand
	if v, ok := formValue(r, "title"); ok {
		cmd.Title = &v
	}
	if v, ok := formValue(r, "description"); ok {
		cmd.Description = &v
	}
	if v, ok := formValue(r, "subtitle"); ok {
		cmd.Subtitle = &v
	}
	if v, ok := formValue(r, "location"); ok {
		cmd.Location = &v
	}
	if v, ok := formValue(r, "featured"); ok {
		featured := v == "true"
		cmd.Featured = &featured
	}
	if v, ok := formValue(r, "active"); ok {
		active := v != "false"
		cmd.Active = &active
	}
	if v, ok := formValue(r, "displayOrder"); ok {
		order, err := strconv.Atoi(v)
		if err != nil {
			return nil, cmd, nil, ErrValidation
		}
		cmd.DisplayOrder = &order
	}
	if v, ok := formValue(r, "date"); ok {
		parsed, err := common.ParseDate(v)
		if err != nil {
			return nil, cmd, nil, ErrValidation
		}
		cmd.EventDate = &parsed
	}

	// existingAssets lists the asset ids the form still shows. Omitted
	// assets are simply left alone; deletion is its own endpoint.
	var keepIDs []uint64
	for _, raw := range r.MultipartForm.Value["existingAssets"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := parseID(part)
			if err != nil {
				return nil, cmd, nil, ErrValidation
			}
			keepIDs = append(keepIDs, id)
		}
	}

	files, err := openFormFiles(r, spec.updateField)
	if err != nil {
		return nil, cmd, nil, err
	}
	return files, cmd, keepIDs, nil
}

func openFormFiles(r *http.Request, field string) ([]openedFile, error) {
	if r.MultipartForm == nil || field == "" {
		return nil, nil
	}

	var files []openedFile
	for _, header := range r.MultipartForm.File[field] {
		src, err := header.Open()
		if err != nil {
			closeFiles(files)
			return nil, err
		}
		files = append(files, openedFile{
			file: NewFile{
				FileName:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Content:     src,
			},
			src: src,
		})
	}
	return files, nil
}

func toNewFiles(files []openedFile) []NewFile {
	out := make([]NewFile, 0, len(files))
	for _, f := range files {
		out = append(out, f.file)
	}
	return out
}

func closeFiles(files []openedFile) {
	for _, f := range files {
		if err := f.src.Close(); err != nil {
			log.Printf("Warning: failed to close uploaded file: %v", err)
		}
	}
}

func formValue(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func gateFromRequest(r *http.Request) ConfirmGate {
	return headerGate{confirmed: r.Header.Get("X-Confirm-Delete") == "true"}
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func parseID(raw string) (uint64, error) {
	return strconv.ParseUint(raw, 10, 64)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrAssetLimit):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNotConfirmed):
		http.Error(w, err.Error(), http.StatusPreconditionFailed)
	case errors.Is(err, ErrValidation), errors.Is(err, ErrUnsupportedType):
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
