// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-micro-commerce/models"
)

// WriteJSON serialises data and writes it with statusCode and a JSON
// content type. On encoding failure it responds with 500.
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

// WriteError writes the shared error body.
func WriteError(w http.ResponseWriter, statusCode int, reason, detail string, fields ...models.FieldError) {
	_, _ = WriteJSON(w, models.ErrorResponse{
		Detail: detail,
		Reason: reason,
		Fields: fields,
	}, statusCode)
}
