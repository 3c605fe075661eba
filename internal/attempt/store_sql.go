package attempt

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/examforge/examforge-backend/internal/assessment"
	"github.com/examforge/examforge-backend/internal/bank"
	"github.com/examforge/examforge-backend/internal/eventlog"
	"github.com/examforge/examforge-backend/internal/scoring"
)

type Store interface {
	Start(ctx context.Context, tenantID, assessmentID, userID string) (Attempt, error)
	SaveResponses(ctx context.Context, tenantID, id string, resp map[string]scoring.Response) (Attempt, error)
	Submit(ctx context.Context, tenantID, id string) (Attempt, error)
	Get(ctx context.Context, tenantID, id string) (Attempt, error)
	List(ctx context.Context, tenantID string, opts ListOpts) ([]Attempt, error)
	ApplyManualGrades(ctx context.Context, tenantID, id string, updates map[string]ManualGradeInput, gradedBy string, finalize bool) (Attempt, error)
}

type SQLStore struct {
	db          *sql.DB
	items       bank.Store
	assessments assessment.Store
	events      *eventlog.Repo
}

func NewSQLStore(db *sql.DB, items bank.Store, assessments assessment.Store, events *eventlog.Repo) *SQLStore {
	return &SQLStore{db: db, items: items, assessments: assessments, events: events}
}

func (s *SQLStore) Start(ctx context.Context, tenantID, assessmentID, userID string) (Attempt, error) {
	if _, err := s.assessments.Get(ctx, tenantID, assessmentID); err != nil {
		return Attempt{}, err
	}
	a := Attempt{
		ID:           uuid.NewString(),
		TenantID:     tenantID,
		AssessmentID: assessmentID,
		UserID:       userID,
		Status:       StatusInProgress,
		Responses:    map[string]scoring.Response{},
		ItemResults:  map[string]ItemResult{},
		StartedAt:    time.Now().Unix(),
	}
	rj, _ := json.Marshal(a.Responses)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (id,tenant_id,assessment_id,user_id,status,score,max_score,responses_json,results_json,started_at)
		 VALUES ($1,$2,$3,$4,$5,0,0,$6,'{}',$7)`,
		a.ID, a.TenantID, a.AssessmentID, a.UserID, a.Status, string(rj), a.StartedAt)
	if err != nil {
		return Attempt{}, err
	}
	return a, nil
}

func (s *SQLStore) SaveResponses(ctx context.Context, tenantID, id string, resp map[string]scoring.Response) (Attempt, error) {
	a, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return Attempt{}, err
	}
	if a.Status != StatusInProgress {
		return Attempt{}, ErrAlreadySubmitted
	}
	if a.Responses == nil {
		a.Responses = map[string]scoring.Response{}
	}
	for k, v := range resp {
		a.Responses[k] = v
	}
	rj, err := json.Marshal(a.Responses)
	if err != nil {
		return Attempt{}, err
	}
	_, err = s.db.ExecContext(ctx, `UPDATE attempts SET responses_json=$1 WHERE tenant_id=$2 AND id=$3`,
		string(rj), tenantID, id)
	if err != nil {
		return Attempt{}, err
	}
	return s.Get(ctx, tenantID, id)
}

func (s *SQLStore) Submit(ctx context.Context, tenantID, id string) (Attempt, error) {
	a, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return Attempt{}, err
	}
	if a.Status != StatusInProgress {
		return a, nil // submit is idempotent
	}

	asmt, err := s.assessments.Get(ctx, tenantID, a.AssessmentID)
	if err != nil {
		return Attempt{}, err
	}
	items := make(map[string]scoring.Item, len(asmt.ItemIDs))
	for _, itemID := range asmt.ItemIDs {
		it, err := s.items.GetAuthoring(ctx, tenantID, itemID)
		if err != nil {
			return Attempt{}, fmt.Errorf("load item %s: %w", itemID, err)
		}
		cfg := it.Config
		cfg.Kind = it.Kind
		items[itemID] = cfg
	}

	results, score, max, pending := scoreAll(ctx, items, a.Responses)
	a.ItemResults = results
	a.Score = score
	a.MaxScore = max
	a.SubmittedAt = time.Now().Unix()
	if pending {
		a.Status = StatusSubmitted
	} else {
		a.Status = StatusScored
	}

	if err := s.persistResults(ctx, &a); err != nil {
		return Attempt{}, err
	}
	s.appendEvent(ctx, &a, eventlog.TypeAttemptSubmitted)
	if a.Status == StatusScored {
		s.appendEvent(ctx, &a, eventlog.TypeAttemptScored)
	}
	return s.Get(ctx, tenantID, id)
}

func (s *SQLStore) Get(ctx context.Context, tenantID, id string) (Attempt, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,tenant_id,assessment_id,user_id,status,score,max_score,responses_json,results_json,started_at,COALESCE(submitted_at,0)
		 FROM attempts WHERE tenant_id=$1 AND id=$2`, tenantID, id)
	return scanAttempt(row.Scan)
}

func (s *SQLStore) List(ctx context.Context, tenantID string, opts ListOpts) ([]Attempt, error) {
	if opts.Limit <= 0 || opts.Limit > 200 {
		opts.Limit = 50
	}
	q := `SELECT id,tenant_id,assessment_id,user_id,status,score,max_score,responses_json,results_json,started_at,COALESCE(submitted_at,0)
	      FROM attempts WHERE tenant_id=$1`
	args := []interface{}{tenantID}
	n := 2
	if opts.AssessmentID != "" {
		q += ` AND assessment_id=$` + strconv.Itoa(n)
		args = append(args, opts.AssessmentID)
		n++
	}
	if opts.UserID != "" {
		q += ` AND user_id=$` + strconv.Itoa(n)
		args = append(args, opts.UserID)
		n++
	}
	if opts.Status != "" {
		q += ` AND status=$` + strconv.Itoa(n)
		args = append(args, opts.Status)
		n++
	}
	q += ` ORDER BY started_at DESC LIMIT $` + strconv.Itoa(n) + ` OFFSET $` + strconv.Itoa(n+1)
	args = append(args, opts.Limit, opts.Offset)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Attempt{}
	for rows.Next() {
		a, err := scanAttempt(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLStore) ApplyManualGrades(ctx context.Context, tenantID, id string, updates map[string]ManualGradeInput, gradedBy string, finalize bool) (Attempt, error) {
	a, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return Attempt{}, err
	}
	if a.Status == StatusInProgress {
		return Attempt{}, ErrNotSubmitted
	}
	for itemID, in := range updates {
		ir, ok := a.ItemResults[itemID]
		if !ok {
			return Attempt{}, fmt.Errorf("no result for item %s", itemID)
		}
		p := in.ManualPoints
		ir.ManualPoints = &p
		ir.GradedBy = gradedBy
		ir.Comment = in.Comment
		a.ItemResults[itemID] = ir
	}

	total := 0.0
	pending := false
	for _, ir := range a.ItemResults {
		total += ir.Awarded()
		if ir.NeedsManual && ir.ManualPoints == nil {
			pending = true
		}
	}
	a.Score = total
	if finalize || !pending {
		a.Status = StatusScored
	}

	if err := s.persistResults(ctx, &a); err != nil {
		return Attempt{}, err
	}
	s.appendEvent(ctx, &a, eventlog.TypeManualGraded)
	return s.Get(ctx, tenantID, id)
}

func (s *SQLStore) persistResults(ctx context.Context, a *Attempt) error {
	rj, err := json.Marshal(a.Responses)
	if err != nil {
		return err
	}
	resj, err := json.Marshal(a.ItemResults)
	if err != nil {
		return err
	}
	var submitted interface{}
	if a.SubmittedAt > 0 {
		submitted = a.SubmittedAt
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE attempts SET status=$1, score=$2, max_score=$3, responses_json=$4, results_json=$5, submitted_at=$6
		 WHERE tenant_id=$7 AND id=$8`,
		a.Status, a.Score, a.MaxScore, string(rj), string(resj), submitted, a.TenantID, a.ID)
	return err
}

func (s *SQLStore) appendEvent(ctx context.Context, a *Attempt, typ string) {
	if s.events == nil {
		return
	}
	data, _ := json.Marshal(map[string]interface{}{
		"assessment_id": a.AssessmentID,
		"user_id":       a.UserID,
		"score":         a.Score,
		"max_score":     a.MaxScore,
		"status":        a.Status,
	})
	// best effort: the attempt row is the source of truth
	_ = s.events.Append(ctx, eventlog.Event{
		TenantID: a.TenantID,
		Type:     typ,
		Key:      a.ID,
		DataJSON: string(data),
	})
}

func scanAttempt(scan func(dest ...interface{}) error) (Attempt, error) {
	var a Attempt
	var rj, resj string
	err := scan(&a.ID, &a.TenantID, &a.AssessmentID, &a.UserID, &a.Status, &a.Score, &a.MaxScore, &rj, &resj, &a.StartedAt, &a.SubmittedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Attempt{}, ErrNotFound
		}
		return Attempt{}, err
	}
	if err := json.Unmarshal([]byte(rj), &a.Responses); err != nil {
		return Attempt{}, err
	}
	if err := json.Unmarshal([]byte(resj), &a.ItemResults); err != nil {
		return Attempt{}, err
	}
	return a, nil
}
