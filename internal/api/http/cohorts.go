package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/examforge/examforge-backend/internal/cohort"
	"github.com/examforge/examforge-backend/internal/rbac"
	"github.com/examforge/examforge-backend/internal/tenant"
)

// POST /cohorts  { "name": "..." }
func CreateCohortHandler(store cohort.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		c, err := store.Create(r.Context(), tenant.FromContext(r.Context()), req.Name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, c)
	}
}

// PUT /cohorts/{cohortID}  { "name": "..." }
func RenameCohortHandler(store cohort.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		err := store.Rename(r.Context(), tenant.FromContext(r.Context()), chi.URLParam(r, "cohortID"), req.Name)
		if err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /cohorts/{cohortID}
func GetCohortHandler(store cohort.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := store.Get(r.Context(), tenant.FromContext(r.Context()), chi.URLParam(r, "cohortID"))
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// GET /cohorts
func ListCohortsHandler(store cohort.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := store.List(r.Context(), tenant.FromContext(r.Context()))
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// DELETE /cohorts/{cohortID}
func DeleteCohortHandler(store cohort.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(r.Context(), tenant.FromContext(r.Context()), chi.URLParam(r, "cohortID")); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// POST /cohorts/{cohortID}/members  { "user_ids": ["..."] }
func AddCohortMembersHandler(store cohort.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserIDs []string `json:"user_ids"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		err := store.AddMembers(r.Context(), tenant.FromContext(r.Context()), chi.URLParam(r, "cohortID"), req.UserIDs)
		if err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// DELETE /cohorts/{cohortID}/members/{userID}
func RemoveCohortMemberHandler(store cohort.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := store.RemoveMember(r.Context(), tenant.FromContext(r.Context()),
			chi.URLParam(r, "cohortID"), chi.URLParam(r, "userID"))
		if err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// POST /cohorts/{cohortID}/assessments/{assessmentID}
func AssignAssessmentHandler(store cohort.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := store.AssignAssessment(r.Context(), tenant.FromContext(r.Context()),
			chi.URLParam(r, "cohortID"), chi.URLParam(r, "assessmentID"))
		if err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// DELETE /cohorts/{cohortID}/assessments/{assessmentID}
func UnassignAssessmentHandler(store cohort.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := store.UnassignAssessment(r.Context(), tenant.FromContext(r.Context()),
			chi.URLParam(r, "cohortID"), chi.URLParam(r, "assessmentID"))
		if err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /me/assessments — the assessments assigned to the caller through
// cohort membership.
func MyAssessmentsHandler(store cohort.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids, err := store.AssignedAssessments(r.Context(),
			tenant.FromContext(r.Context()), rbac.SubjectFromContext(r.Context()))
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string][]string{"assessment_ids": ids})
	}
}
