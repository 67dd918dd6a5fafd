package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the only shape the relay uses for failures.
type ErrorBody struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorBody{Error: message})
}

// Empty answers a preflight with no body.
func Empty(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}
