package author

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func pathID(r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// List handles GET /authors
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONInternalError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, authors)
}

// Search handles GET /authorsearch?query=
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		httpx.JSONFail(w, http.StatusBadRequest, "Search query is required")
		return
	}

	authors, err := h.service.Search(r.Context(), query)
	if err != nil {
		httpx.JSONInternalError(w)
		return
	}
	if len(authors) == 0 {
		httpx.JSONFail(w, http.StatusNotFound, "Author not found")
		return
	}
	httpx.JSON(w, http.StatusOK, authors)
}

type createAuthorReq struct {
	Name      string `json:"name" validate:"required"`
	Biography string `json:"biography" validate:"required"`
}

// Create handles POST /author (bearer token required)
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAuthorReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrors := httpx.ValidateStruct(req); len(fieldErrors) > 0 {
		httpx.JSONValidationError(w, http.StatusUnprocessableEntity, fieldErrors)
		return
	}

	if _, err := h.service.Create(r.Context(), req.Name, req.Biography); err != nil {
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSONSuccess(w, http.StatusCreated, "Author created successfully.")
}

// Show handles GET /author/{id}
func (h *HTTPHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONFail(w, http.StatusNotFound, "Author not found")
		return
	}

	a, err := h.service.Show(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, "Author not found")
			return
		}
		httpx.JSONInternalError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, a)
}

// Books handles GET /authorbooks/{id}: the author's books, not the author.
func (h *HTTPHandler) Books(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONFail(w, http.StatusNotFound, "Author not found")
		return
	}

	books, err := h.service.Books(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, "Author not found")
			return
		}
		httpx.JSONInternalError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Update handles PUT /author/{id} (bearer token required)
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req createAuthorReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrors := httpx.ValidateStruct(req); len(fieldErrors) > 0 {
		httpx.JSONValidationError(w, http.StatusUnprocessableEntity, fieldErrors)
		return
	}

	id, ok := pathID(r)
	if !ok {
		httpx.JSONFail(w, http.StatusNotFound, "Author not found")
		return
	}

	if err := h.service.Update(r.Context(), id, req.Name, req.Biography); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, "Author not found")
			return
		}
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "Author updated successfully.")
}

// Destroy handles DELETE /author/{id} (bearer token required)
func (h *HTTPHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONFail(w, http.StatusNotFound, "Author not found")
		return
	}

	if err := h.service.Destroy(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, "Author not found")
			return
		}
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "Author deleted successfully.")
}
