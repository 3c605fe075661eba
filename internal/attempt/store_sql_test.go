package attempt_test

import (
	"context"
	"testing"

	"github.com/examforge/examforge-backend/internal/assessment"
	"github.com/examforge/examforge-backend/internal/attempt"
	"github.com/examforge/examforge-backend/internal/bank"
	"github.com/examforge/examforge-backend/internal/db"
	"github.com/examforge/examforge-backend/internal/eventlog"
	"github.com/examforge/examforge-backend/internal/scoring"
)

const testTenant = "acme"

func newStores(t *testing.T) (attempt.Store, bank.Store, assessment.Store) {
	t.Helper()
	dbh, err := db.Open(context.Background(), db.DriverSQLite, "file:"+t.TempDir()+"/test.db?_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })

	items := bank.NewSQLStore(dbh)
	assessments := assessment.NewSQLStore(dbh)
	return attempt.NewSQLStore(dbh, items, assessments, eventlog.NewRepo(dbh)), items, assessments
}

func seedAssessment(t *testing.T, items bank.Store, assessments assessment.Store) assessment.Assessment {
	t.Helper()
	ctx := context.Background()

	mcq := bank.Item{
		TenantID: testTenant,
		Title:    "capital of France",
		Kind:     scoring.KindMCQ,
		Config: scoring.Item{
			Choice: &scoring.ChoiceConfig{AnswerMode: scoring.AnswerSingle, CorrectIndexes: []int{2}},
		},
	}
	if err := items.Put(ctx, &mcq); err != nil {
		t.Fatalf("put mcq: %v", err)
	}
	essay := bank.Item{
		TenantID: testTenant,
		Title:    "explain photosynthesis",
		Kind:     scoring.KindEssay,
		Config:   scoring.Item{Points: 4},
	}
	if err := items.Put(ctx, &essay); err != nil {
		t.Fatalf("put essay: %v", err)
	}

	a := assessment.Assessment{
		TenantID: testTenant,
		Title:    "unit quiz",
		ItemIDs:  []string{mcq.ID, essay.ID},
	}
	if err := assessments.Put(ctx, &a); err != nil {
		t.Fatalf("put assessment: %v", err)
	}
	return a
}

func TestAttemptLifecycle(t *testing.T) {
	ctx := context.Background()
	store, items, assessments := newStores(t)
	asmt := seedAssessment(t, items, assessments)
	mcqID := asmt.ItemIDs[0]
	essayID := asmt.ItemIDs[1]

	a, err := store.Start(ctx, testTenant, asmt.ID, "learner-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if a.Status != attempt.StatusInProgress {
		t.Fatalf("status = %s", a.Status)
	}

	a, err = store.SaveResponses(ctx, testTenant, a.ID, map[string]scoring.Response{
		mcqID:   {SelectedIndexes: []int{2}},
		essayID: {Text: "plants make sugar from light"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(a.Responses) != 2 {
		t.Fatalf("responses = %d", len(a.Responses))
	}

	a, err = store.Submit(ctx, testTenant, a.ID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if a.Status != attempt.StatusSubmitted {
		t.Fatalf("essay pending, want submitted, got %s", a.Status)
	}
	if a.Score != 1 || a.MaxScore != 5 {
		t.Fatalf("score %v/%v, want 1/5", a.Score, a.MaxScore)
	}

	// submit again: no-op
	again, err := store.Submit(ctx, testTenant, a.ID)
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if again.Score != a.Score || again.Status != a.Status {
		t.Fatal("submit is not idempotent")
	}

	// saving after submit is rejected
	if _, err := store.SaveResponses(ctx, testTenant, a.ID, nil); err != attempt.ErrAlreadySubmitted {
		t.Fatalf("save after submit: %v", err)
	}

	// manual grade closes the attempt
	a, err = store.ApplyManualGrades(ctx, testTenant, a.ID, map[string]attempt.ManualGradeInput{
		essayID: {ManualPoints: 3, Comment: "solid"},
	}, "author-1", false)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if a.Status != attempt.StatusScored {
		t.Fatalf("status after grading = %s", a.Status)
	}
	if a.Score != 4 {
		t.Fatalf("score after grading = %v, want 4", a.Score)
	}
	if ir := a.ItemResults[essayID]; ir.GradedBy != "author-1" || ir.Comment != "solid" {
		t.Fatalf("grader metadata lost: %+v", ir)
	}
}

func TestAttemptTenantIsolation(t *testing.T) {
	ctx := context.Background()
	store, items, assessments := newStores(t)
	asmt := seedAssessment(t, items, assessments)

	a, err := store.Start(ctx, testTenant, asmt.ID, "learner-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := store.Get(ctx, "other-tenant", a.ID); err != attempt.ErrNotFound {
		t.Fatalf("cross-tenant get: %v, want ErrNotFound", err)
	}
}

func TestAttemptList(t *testing.T) {
	ctx := context.Background()
	store, items, assessments := newStores(t)
	asmt := seedAssessment(t, items, assessments)

	for _, user := range []string{"u1", "u1", "u2"} {
		if _, err := store.Start(ctx, testTenant, asmt.ID, user); err != nil {
			t.Fatalf("start: %v", err)
		}
	}
	got, err := store.List(ctx, testTenant, attempt.ListOpts{UserID: "u1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("u1 attempts = %d, want 2", len(got))
	}
	got, err = store.List(ctx, testTenant, attempt.ListOpts{Status: attempt.StatusInProgress})
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("in-progress attempts = %d, want 3", len(got))
	}
}
