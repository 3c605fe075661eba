package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/examforge/examforge-backend/internal/assessment"
	"github.com/examforge/examforge-backend/internal/bank"
	"github.com/examforge/examforge-backend/internal/tenant"
)

// POST /assessments
func CreateAssessmentHandler(store assessment.Store, items bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var a assessment.Assessment
		if !decodeJSON(w, r, &a) {
			return
		}
		a.ID = ""
		a.TenantID = tenant.FromContext(r.Context())
		// every referenced item must exist in this tenant's bank
		for _, itemID := range a.ItemIDs {
			if _, err := items.GetAuthoring(r.Context(), a.TenantID, itemID); err != nil {
				http.Error(w, "unknown item: "+itemID, http.StatusBadRequest)
				return
			}
		}
		if err := store.Put(r.Context(), &a); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, a)
	}
}

// PUT /assessments/{assessmentID}
func UpdateAssessmentHandler(store assessment.Store, items bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tid := tenant.FromContext(r.Context())
		id := chi.URLParam(r, "assessmentID")
		if _, err := store.Get(r.Context(), tid, id); err != nil {
			storeError(w, err)
			return
		}
		var a assessment.Assessment
		if !decodeJSON(w, r, &a) {
			return
		}
		a.ID = id
		a.TenantID = tid
		for _, itemID := range a.ItemIDs {
			if _, err := items.GetAuthoring(r.Context(), tid, itemID); err != nil {
				http.Error(w, "unknown item: "+itemID, http.StatusBadRequest)
				return
			}
		}
		if err := store.Put(r.Context(), &a); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// GET /assessments/{assessmentID}
// Returns the assessment plus the sanitized items a client needs to
// render it, so learners fetch one payload when starting.
func GetAssessmentHandler(store assessment.Store, items bank.Store) http.HandlerFunc {
	type resp struct {
		assessment.Assessment
		Items []bank.Item `json:"items"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		tid := tenant.FromContext(r.Context())
		a, err := store.Get(r.Context(), tid, chi.URLParam(r, "assessmentID"))
		if err != nil {
			storeError(w, err)
			return
		}
		out := resp{Assessment: a, Items: make([]bank.Item, 0, len(a.ItemIDs))}
		for _, itemID := range a.ItemIDs {
			it, err := items.Get(r.Context(), tid, itemID)
			if err != nil {
				storeError(w, err)
				return
			}
			out.Items = append(out.Items, it)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /assessments?limit=&offset=
func ListAssessmentsHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		out, err := store.List(r.Context(), tenant.FromContext(r.Context()), limit, offset)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// DELETE /assessments/{assessmentID}
func DeleteAssessmentHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tid := tenant.FromContext(r.Context())
		if err := store.Delete(r.Context(), tid, chi.URLParam(r, "assessmentID")); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
