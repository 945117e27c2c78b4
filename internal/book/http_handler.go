package book

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

// pathID returns the {id} path value, or false when it is not a valid uuid.
// Malformed ids behave like unknown ones.
func pathID(r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// List handles GET /book
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONInternalError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Search handles GET /booksearch?query=
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		httpx.JSONFail(w, http.StatusBadRequest, "Search query is required")
		return
	}

	books, err := h.service.Search(r.Context(), query)
	if err != nil {
		httpx.JSONInternalError(w)
		return
	}
	if len(books) == 0 {
		httpx.JSONFail(w, http.StatusNotFound, "No books found")
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

type createBookReq struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// Create handles POST /book
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrors := httpx.ValidateStruct(req); len(fieldErrors) > 0 {
		httpx.JSONValidationError(w, http.StatusUnprocessableEntity, fieldErrors)
		return
	}

	if _, err := h.service.Create(r.Context(), req.Title, req.Description); err != nil {
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSONSuccess(w, http.StatusCreated, "Book created successfully.")
}

// Show handles GET /book/{id}. Every successful read bumps the view counter.
func (h *HTTPHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONFail(w, http.StatusNotFound, "Book not found")
		return
	}

	b, err := h.service.Show(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, "Book not found")
			return
		}
		httpx.JSONInternalError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

type assignAuthorsReq struct {
	// Pointer so an omitted field can be told apart from an empty list:
	// omitted is an error, an empty list clears all associations.
	AuthorIDs *[]string `json:"author_ids"`
}

// AssignAuthors handles POST /affect/{id}
func (h *HTTPHandler) AssignAuthors(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONFail(w, http.StatusNotFound, "Book not found")
		return
	}

	var req assignAuthorsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONFail(w, http.StatusBadRequest, "The author_ids field must be a list")
		return
	}
	if req.AuthorIDs == nil {
		httpx.JSONFail(w, http.StatusBadRequest, "The author_ids field must be a list")
		return
	}
	for _, authorID := range *req.AuthorIDs {
		if _, err := uuid.Parse(authorID); err != nil {
			httpx.JSONFail(w, http.StatusBadRequest, "Unknown author id")
			return
		}
	}

	if err := h.service.AssignAuthors(r.Context(), id, *req.AuthorIDs); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONFail(w, http.StatusNotFound, "Book not found")
		case errors.Is(err, ErrUnknownAuthor):
			httpx.JSONFail(w, http.StatusBadRequest, "Unknown author id")
		default:
			httpx.JSONInternalError(w)
		}
		return
	}

	httpx.JSONSuccess(w, http.StatusCreated, "Authors assigned successfully.")
}

// Leaderboard handles GET /leaderbord (path spelling kept for existing
// clients).
func (h *HTTPHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.Leaderboard(r.Context())
	if err != nil {
		httpx.JSONInternalError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Update handles PUT /book/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req createBookReq
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
		httpx.JSONFail(w, http.StatusNotFound, "Book not found")
		return
	}

	if err := h.service.Update(r.Context(), id, req.Title, req.Description); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, "Book not found")
			return
		}
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "Book updated successfully.")
}

// Destroy handles DELETE /book/{id}
func (h *HTTPHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.JSONFail(w, http.StatusNotFound, "Book not found")
		return
	}

	if err := h.service.Destroy(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, "Book not found")
			return
		}
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "Book deleted successfully.")
}
