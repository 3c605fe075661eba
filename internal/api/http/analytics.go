package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/examforge/examforge-backend/internal/analytics"
	"github.com/examforge/examforge-backend/internal/tenant"
)

// GET /analytics/assessments/{assessmentID}
func AssessmentReportHandler(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.AssessmentReport(r.Context(),
			tenant.FromContext(r.Context()), chi.URLParam(r, "assessmentID"))
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rep)
	}
}
