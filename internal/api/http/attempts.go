package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/examforge/examforge-backend/internal/attempt"
	"github.com/examforge/examforge-backend/internal/rbac"
	"github.com/examforge/examforge-backend/internal/scoring"
	"github.com/examforge/examforge-backend/internal/tenant"
)

// POST /attempts  { "assessment_id": "..." }
func StartAttemptHandler(store attempt.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AssessmentID string `json:"assessment_id"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.AssessmentID == "" {
			http.Error(w, "assessment_id required", http.StatusBadRequest)
			return
		}
		a, err := store.Start(r.Context(),
			tenant.FromContext(r.Context()), req.AssessmentID, rbac.SubjectFromContext(r.Context()))
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, a)
	}
}

// POST /attempts/{attemptID}/responses  { "<itemID>": {...}, ... }
func SaveResponsesHandler(store attempt.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var resp map[string]scoring.Response
		if !decodeJSON(w, r, &resp) {
			return
		}
		tid := tenant.FromContext(r.Context())
		id := chi.URLParam(r, "attemptID")
		if !ownsAttempt(w, r, store, tid, id) {
			return
		}
		a, err := store.SaveResponses(r.Context(), tid, id, resp)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// POST /attempts/{attemptID}/submit
func SubmitAttemptHandler(store attempt.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tid := tenant.FromContext(r.Context())
		id := chi.URLParam(r, "attemptID")
		if !ownsAttempt(w, r, store, tid, id) {
			return
		}
		a, err := store.Submit(r.Context(), tid, id)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// GET /attempts/{attemptID}
func GetAttemptHandler(store attempt.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := store.Get(r.Context(), tenant.FromContext(r.Context()), chi.URLParam(r, "attemptID"))
		if err != nil {
			storeError(w, err)
			return
		}
		role := rbac.RoleFromContext(r.Context())
		if !checker.Has(role, "attempt:view-all") && a.UserID != rbac.SubjectFromContext(r.Context()) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// GET /attempts?assessment_id=&user_id=&status=&limit=&offset=
// Learners are pinned to their own attempts regardless of user_id.
func ListAttemptsHandler(store attempt.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		opts := attempt.ListOpts{
			AssessmentID: q.Get("assessment_id"),
			UserID:       q.Get("user_id"),
			Status:       q.Get("status"),
		}
		opts.Limit, _ = strconv.Atoi(q.Get("limit"))
		opts.Offset, _ = strconv.Atoi(q.Get("offset"))

		role := rbac.RoleFromContext(r.Context())
		if !checker.Has(role, "attempt:view-all") {
			opts.UserID = rbac.SubjectFromContext(r.Context())
		}
		out, err := store.List(r.Context(), tenant.FromContext(r.Context()), opts)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// ownsAttempt loads the attempt and rejects writes from anyone but its
// owner (graders go through the grading endpoints instead).
func ownsAttempt(w http.ResponseWriter, r *http.Request, store attempt.Store, tenantID, id string) bool {
	a, err := store.Get(r.Context(), tenantID, id)
	if err != nil {
		storeError(w, err)
		return false
	}
	if a.UserID != rbac.SubjectFromContext(r.Context()) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}
