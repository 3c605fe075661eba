package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/examforge/examforge-backend/internal/analytics"
	api "github.com/examforge/examforge-backend/internal/api/http"
	"github.com/examforge/examforge-backend/internal/assessment"
	"github.com/examforge/examforge-backend/internal/attempt"
	auth "github.com/examforge/examforge-backend/internal/auth/middleware"
	"github.com/examforge/examforge-backend/internal/bank"
	"github.com/examforge/examforge-backend/internal/cohort"
	"github.com/examforge/examforge-backend/internal/config"
	"github.com/examforge/examforge-backend/internal/db"
	"github.com/examforge/examforge-backend/internal/eventlog"
	"github.com/examforge/examforge-backend/internal/rbac"
	"github.com/examforge/examforge-backend/internal/storage"
	"github.com/examforge/examforge-backend/internal/tenant"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	items := bank.NewSQLStore(dbh)
	assessments := assessment.NewSQLStore(dbh)
	events := eventlog.NewRepo(dbh)
	attempts := attempt.NewSQLStore(dbh, items, assessments, events)
	cohorts := cohort.NewSQLStore(dbh)
	reports := analytics.NewService(dbh)

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	resolver := tenant.NewResolver(tenant.Options{
		BaseDomain:    cfg.TenantBaseDomain,
		HostIsTenant:  cfg.TenantBaseDomain != "",
		HeaderKey:     cfg.TenantHeader,
		PathPrefix:    cfg.TenantPathPrefix,
		DefaultTenant: cfg.DefaultTenant,
	})

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", cfg.TenantHeader},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := dbh.PingContext(r.Context()); err != nil {
			http.Error(w, "db: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(200)
	})

	// Everything below is tenant-scoped.
	r.Group(func(tr chi.Router) {
		tr.Use(tenant.Middleware(resolver))

		tr.Post("/auth/login", auth.LoginHandler(authSvc, dbh))

		// Protected API (JWT → role in context → RBAC)
		tr.Group(func(pr chi.Router) {
			pr.Use(auth.JWTMiddleware(authSvc))
			pr.Use(auth.AttachRoleFromDB(dbh, cfg.Mode == config.ModeOffline))

			// Item bank (authors)
			pr.With(rbac.Require("item:create")).Post("/items", api.CreateItemHandler(items))
			pr.With(rbac.Require("item:edit")).Put("/items/{itemID}", api.UpdateItemHandler(items))
			pr.With(rbac.RequireAny("item:view", "assessment:view")).
				Get("/items/{itemID}", api.GetItemHandler(items))
			pr.With(rbac.Require("item:list")).Get("/items", api.ListItemsHandler(items))
			pr.With(rbac.Require("item:delete")).Delete("/items/{itemID}", api.DeleteItemHandler(items))

			// Assessments
			pr.With(rbac.Require("assessment:create")).
				Post("/assessments", api.CreateAssessmentHandler(assessments, items))
			pr.With(rbac.Require("assessment:edit")).
				Put("/assessments/{assessmentID}", api.UpdateAssessmentHandler(assessments, items))
			pr.With(rbac.Require("assessment:view")).
				Get("/assessments/{assessmentID}", api.GetAssessmentHandler(assessments, items))
			pr.With(rbac.Require("assessment:view")).
				Get("/assessments", api.ListAssessmentsHandler(assessments))
			pr.With(rbac.Require("assessment:delete")).
				Delete("/assessments/{assessmentID}", api.DeleteAssessmentHandler(assessments))

			// Attempt lifecycle
			pr.With(rbac.Require("attempt:create")).Post("/attempts", api.StartAttemptHandler(attempts))
			pr.With(rbac.Require("attempt:save")).
				Post("/attempts/{attemptID}/responses", api.SaveResponsesHandler(attempts))
			pr.With(rbac.Require("attempt:submit")).
				Post("/attempts/{attemptID}/submit", api.SubmitAttemptHandler(attempts))
			pr.With(rbac.RequireAny("attempt:view-own", "attempt:view-all")).
				Get("/attempts/{attemptID}", api.GetAttemptHandler(attempts))
			pr.With(rbac.RequireAny("attempt:view-own", "attempt:view-all")).
				Get("/attempts", api.ListAttemptsHandler(attempts))

			// Manual grading
			pr.With(rbac.Require("attempt:grade")).
				Get("/attempts/{attemptID}/grading", api.GetAttemptGradingHandler(attempts))
			pr.With(rbac.Require("attempt:grade")).
				Post("/attempts/{attemptID}/grading", api.ApplyAttemptGradingHandler(attempts))

			// Cohorts
			pr.With(rbac.Require("cohort:create")).Post("/cohorts", api.CreateCohortHandler(cohorts))
			pr.With(rbac.Require("cohort:edit")).
				Put("/cohorts/{cohortID}", api.RenameCohortHandler(cohorts))
			pr.With(rbac.Require("cohort:view")).Get("/cohorts/{cohortID}", api.GetCohortHandler(cohorts))
			pr.With(rbac.Require("cohort:view")).Get("/cohorts", api.ListCohortsHandler(cohorts))
			pr.With(rbac.Require("cohort:delete")).
				Delete("/cohorts/{cohortID}", api.DeleteCohortHandler(cohorts))
			pr.With(rbac.Require("cohort:edit")).
				Post("/cohorts/{cohortID}/members", api.AddCohortMembersHandler(cohorts))
			pr.With(rbac.Require("cohort:edit")).
				Delete("/cohorts/{cohortID}/members/{userID}", api.RemoveCohortMemberHandler(cohorts))
			pr.With(rbac.Require("cohort:edit")).
				Post("/cohorts/{cohortID}/assessments/{assessmentID}", api.AssignAssessmentHandler(cohorts))
			pr.With(rbac.Require("cohort:edit")).
				Delete("/cohorts/{cohortID}/assessments/{assessmentID}", api.UnassignAssessmentHandler(cohorts))
			pr.With(rbac.Require("cohort:view-own")).
				Get("/me/assessments", api.MyAssessmentsHandler(cohorts))

			// Analytics
			pr.With(rbac.Require("analytics:view")).
				Get("/analytics/assessments/{assessmentID}", api.AssessmentReportHandler(reports))

			// Users
			pr.With(rbac.Require("users:bulk_upsert")).Post("/users/bulk", api.BulkUpsertUsersHandler(dbh))
			pr.With(rbac.Require("users:list")).Get("/users", api.ListUsersHandler(dbh))
			pr.With(rbac.Require("user:change_password")).
				Post("/users/change-password", api.ChangePasswordHandler(dbh))

			// Item media
			pr.Route("/assets", func(ar chi.Router) {
				api.MountAssets(ar, bs)
			})
		})
	})

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
