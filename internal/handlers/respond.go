package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"vidtube/internal/apierr"
)

// apiResponse is the uniform success envelope.
type apiResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// apiFailure is the uniform failure envelope. Internal error detail
// never reaches it.
type apiFailure struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func respond(w http.ResponseWriter, status int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(apiResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	}); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// fail renders any error into the failure envelope. Errors outside the
// taxonomy are logged and surfaced as an opaque 500.
func fail(w http.ResponseWriter, err error) {
	apiErr := apierr.From(err, "Resource not found")
	if apiErr.Status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	if encErr := json.NewEncoder(w).Encode(apiFailure{
		StatusCode: apiErr.Status,
		Message:    apiErr.Message,
		Success:    false,
		Errors:     []string{},
	}); encErr != nil {
		log.Printf("Error encoding failure response: %v", encErr)
	}
}
