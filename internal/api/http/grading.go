package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/examforge/examforge-backend/internal/attempt"
	"github.com/examforge/examforge-backend/internal/rbac"
	"github.com/examforge/examforge-backend/internal/tenant"
)

type applyGradesReq struct {
	Items    map[string]attempt.ManualGradeInput `json:"items"` // itemID -> grade
	Finalize bool                                `json:"finalize,omitempty"`
}

// GET /attempts/{attemptID}/grading
// The grader's view: learner responses plus current results, including
// which items still await a manual grade.
func GetAttemptGradingHandler(store attempt.Store) http.HandlerFunc {
	type gradingItem struct {
		ItemID string `json:"item_id"`
		attempt.ItemResult
		Response interface{} `json:"response,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := store.Get(r.Context(), tenant.FromContext(r.Context()), chi.URLParam(r, "attemptID"))
		if err != nil {
			storeError(w, err)
			return
		}
		if a.Status == attempt.StatusInProgress {
			http.Error(w, "attempt not submitted", http.StatusConflict)
			return
		}
		out := make([]gradingItem, 0, len(a.ItemResults))
		for itemID, ir := range a.ItemResults {
			gi := gradingItem{ItemID: itemID, ItemResult: ir}
			if resp, ok := a.Responses[itemID]; ok {
				gi.Response = resp
			}
			out = append(out, gi)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// POST /attempts/{attemptID}/grading
func ApplyAttemptGradingHandler(store attempt.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req applyGradesReq
		if !decodeJSON(w, r, &req) {
			return
		}
		if len(req.Items) == 0 && !req.Finalize {
			http.Error(w, "no grades", http.StatusBadRequest)
			return
		}
		a, err := store.ApplyManualGrades(r.Context(),
			tenant.FromContext(r.Context()), chi.URLParam(r, "attemptID"),
			req.Items, rbac.SubjectFromContext(r.Context()), req.Finalize)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}
