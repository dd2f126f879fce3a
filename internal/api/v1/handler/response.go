package handler

import (
	"encoding/json"
	"net/http"
)

// API error codes returned in JSON { "error": "...", "code": "..." }
// for stable client handling.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeInvalidUserID  = "invalid_user_id"
	ErrCodeInvalidScore   = "invalid_score"
	ErrCodeNotFound       = "not_found"
	ErrCodeInvalidCode    = "invalid_code"
	ErrCodeUserNotFound   = "user_not_found"
	ErrCodeQuotaExceeded  = "quota_exceeded"
	ErrCodeInternal       = "internal_error"
)

// writeErr sends JSON { "error": message, "code": errCode }.
func writeErr(w http.ResponseWriter, status int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": errCode})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
