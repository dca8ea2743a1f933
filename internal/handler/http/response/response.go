package response

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every CRUD endpoint answers with. The
// invitation and auth endpoints write their documented shapes directly
// via WriteJSON instead.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Count   *int        `json:"count,omitempty"`
	Message *string     `json:"message"`
	Error   *string     `json:"error"`
}

// WriteJSON writes an arbitrary payload without the envelope.
func WriteJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(Response{Success: false, Error: strPtr("Failed to encode response")})
	}
}

func Success(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

func SuccessWithMessage(w http.ResponseWriter, message string, data interface{}) {
	WriteJSON(w, http.StatusOK, Response{Success: true, Message: &message, Data: data})
}

// SuccessList sets count for collection responses.
func SuccessList(w http.ResponseWriter, data interface{}, count int) {
	WriteJSON(w, http.StatusOK, Response{Success: true, Data: data, Count: &count})
}

func Created(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusCreated, Response{Success: true, Data: data})
}

func BadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, message)
}

func ValidationFailed(w http.ResponseWriter, details map[string]string) {
	WriteJSON(w, http.StatusUnprocessableEntity, Response{
		Success: false,
		Data:    details,
		Error:   strPtr("Validation failed"),
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	writeError(w, http.StatusForbidden, message)
}

func NotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, message)
}

func Conflict(w http.ResponseWriter, message string) {
	writeError(w, http.StatusConflict, message)
}

func TooManyRequests(w http.ResponseWriter, message string) {
	writeError(w, http.StatusTooManyRequests, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, message)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, Response{Success: false, Error: &message})
}

func strPtr(s string) *string {
	return &s
}
