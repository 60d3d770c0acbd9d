package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it with the given status code and an
// application/json content type. A marshaling failure is answered with 500
// and returned wrapped.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteEnvelope writes the provider's {"error": string|null} envelope with
// status 200. An empty msg is encoded as null. Provider failures travel in
// the body, never in the status line.
func WriteEnvelope(w http.ResponseWriter, msg string) (int, error) {
	envelope := struct {
		Error *string `json:"error"`
	}{}
	if msg != "" {
		envelope.Error = &msg
	}

	return WriteJSON(w, envelope, http.StatusOK)
}
