package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/examforge/examforge-backend/internal/assessment"
	"github.com/examforge/examforge-backend/internal/attempt"
	"github.com/examforge/examforge-backend/internal/bank"
	"github.com/examforge/examforge-backend/internal/cohort"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// storeError maps store sentinel errors onto HTTP statuses. Anything
// unrecognized is a 500.
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bank.ErrNotFound),
		errors.Is(err, assessment.ErrNotFound),
		errors.Is(err, attempt.ErrNotFound),
		errors.Is(err, cohort.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, attempt.ErrAlreadySubmitted),
		errors.Is(err, attempt.ErrNotSubmitted):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
