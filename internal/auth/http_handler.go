package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type registerReq struct {
	Name                 string `json:"name" validate:"required,max=250"`
	Email                string `json:"email" validate:"required,email,max=250"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// Register handles POST /auth/register
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if fieldErrors := httpx.ValidateStruct(req); len(fieldErrors) > 0 {
		httpx.JSONValidationError(w, http.StatusForbidden, fieldErrors)
		return
	}

	if _, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			httpx.JSONValidationError(w, http.StatusForbidden, map[string][]string{
				"email": {"The email has already been taken."},
			})
			return
		}
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSONSuccess(w, http.StatusCreated, "User created successfully.")
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /auth/login
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if fieldErrors := httpx.ValidateStruct(req); len(fieldErrors) > 0 {
		httpx.JSONValidationError(w, http.StatusForbidden, fieldErrors)
		return
	}

	u, plaintext, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httpx.JSONFail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSONSuccessData(w, http.StatusOK, "Logged in successfully.", map[string]any{
		"token": plaintext,
		"user":  u,
	})
}

// CurrentUser handles GET /user (behind the bearer middleware).
func (h *HTTPHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONFail(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	u, err := h.service.CurrentUser(r.Context(), userID)
	if err != nil {
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSON(w, http.StatusOK, u)
}

// Logout handles POST /logout (behind the bearer middleware). Revokes every
// token the user holds, across all devices.
func (h *HTTPHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONFail(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	if err := h.service.Logout(r.Context(), userID); err != nil {
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "Logged out successfully.")
}
