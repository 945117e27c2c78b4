package httpx

import (
	"encoding/json"
	"net/http"
)

// Response is the message envelope used by auth and mutation endpoints.
// Read endpoints return their payload without an envelope.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes payload as-is with the given status code.
func JSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// JSONSuccess writes a {status:"success", message} envelope.
func JSONSuccess(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Response{Status: "success", Message: message})
}

// JSONSuccessData writes a {status:"success", message, data} envelope.
func JSONSuccessData(w http.ResponseWriter, statusCode int, message string, data any) {
	JSON(w, statusCode, Response{Status: "success", Message: message, Data: data})
}

// JSONFail writes a {status:"failed", message} envelope.
func JSONFail(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Response{Status: "failed", Message: message})
}

// JSONValidationError writes field-level validation errors under data,
// keyed by field name.
func JSONValidationError(w http.ResponseWriter, statusCode int, fieldErrors map[string][]string) {
	JSON(w, statusCode, Response{
		Status:  "failed",
		Message: "Validation Error!",
		Data:    fieldErrors,
	})
}

// JSONInternalError writes the generic 500 envelope.
func JSONInternalError(w http.ResponseWriter) {
	JSONFail(w, http.StatusInternalServerError, "Internal server error")
}
