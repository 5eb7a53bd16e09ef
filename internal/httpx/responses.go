package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every 4xx/5xx response that carries content.
type ErrorResponse struct {
	Errors []string `json:"errors"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func JSONSuccess(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

func JSONSuccessCreated(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Empty writes a status code with no body.
func Empty(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}

func JSONError(w http.ResponseWriter, statusCode int, messages ...string) {
	if messages == nil {
		messages = []string{}
	}
	JSON(w, statusCode, ErrorResponse{Errors: messages})
}

func InternalError(w http.ResponseWriter) {
	JSONError(w, http.StatusInternalServerError, "internal server error")
}
