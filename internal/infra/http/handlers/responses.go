package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/bigwigmedia/bigwig-backend/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

var domainStatusByCode = map[string]int{
	"VALIDATION_ERROR":   http.StatusBadRequest,
	"DUPLICATE_LEAD":     http.StatusBadRequest,
	"OTP_NOT_FOUND":      http.StatusBadRequest,
	"OTP_INVALID":        http.StatusBadRequest,
	"OTP_PENDING":        http.StatusConflict,
	"NO_RECIPIENTS":      http.StatusBadRequest,
	"ALREADY_SUBSCRIBED": http.StatusConflict,
	"NOT_FOUND":          http.StatusNotFound,
}

// writeError maps domain rejections to their status codes and collapses
// everything else into a generic 500. The underlying cause is logged,
// never echoed.
func writeError(w http.ResponseWriter, err error) {
	if derr, ok := err.(*usecase.DomainError); ok {
		status, known := domainStatusByCode[derr.Code]
		if !known {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": derr.Message})
		return
	}

	log.Printf("❌ Internal error: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
}
