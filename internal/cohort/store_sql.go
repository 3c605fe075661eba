package cohort

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Store interface {
	Create(ctx context.Context, tenantID, name string) (Cohort, error)
	Rename(ctx context.Context, tenantID, id, name string) error
	Get(ctx context.Context, tenantID, id string) (Cohort, error)
	List(ctx context.Context, tenantID string) ([]Summary, error)
	Delete(ctx context.Context, tenantID, id string) error

	AddMembers(ctx context.Context, tenantID, id string, userIDs []string) error
	RemoveMember(ctx context.Context, tenantID, id, userID string) error

	AssignAssessment(ctx context.Context, tenantID, id, assessmentID string) error
	UnassignAssessment(ctx context.Context, tenantID, id, assessmentID string) error

	// AssignedAssessments returns the assessment IDs visible to a learner
	// through cohort membership, deduplicated.
	AssignedAssessments(ctx context.Context, tenantID, userID string) ([]string, error)
}

type SQLStore struct{ db *sql.DB }

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Create(ctx context.Context, tenantID, name string) (Cohort, error) {
	c := Cohort{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		Name:          name,
		MemberIDs:     []string{},
		AssessmentIDs: []string{},
		CreatedAt:     time.Now().Unix(),
	}
	if err := c.Validate(); err != nil {
		return Cohort{}, err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cohorts (id, tenant_id, name, created_at) VALUES ($1,$2,$3,$4)`,
		c.ID, c.TenantID, c.Name, c.CreatedAt)
	if err != nil {
		return Cohort{}, err
	}
	return c, nil
}

func (s *SQLStore) Rename(ctx context.Context, tenantID, id, name string) error {
	c := Cohort{Name: name}
	if err := c.Validate(); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE cohorts SET name=$1 WHERE tenant_id=$2 AND id=$3`, name, tenantID, id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (s *SQLStore) Get(ctx context.Context, tenantID, id string) (Cohort, error) {
	var c Cohort
	err := s.db.QueryRowContext(ctx,
		`SELECT id, tenant_id, name, created_at FROM cohorts WHERE tenant_id=$1 AND id=$2`,
		tenantID, id).Scan(&c.ID, &c.TenantID, &c.Name, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Cohort{}, ErrNotFound
	}
	if err != nil {
		return Cohort{}, err
	}
	if c.MemberIDs, err = s.collect(ctx,
		`SELECT user_id FROM cohort_members WHERE cohort_id=$1 ORDER BY user_id`, id); err != nil {
		return Cohort{}, err
	}
	if c.AssessmentIDs, err = s.collect(ctx,
		`SELECT assessment_id FROM cohort_assessments WHERE cohort_id=$1 ORDER BY assessment_id`, id); err != nil {
		return Cohort{}, err
	}
	return c, nil
}

func (s *SQLStore) List(ctx context.Context, tenantID string) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.id, c.name, c.created_at,
		        (SELECT COUNT(*) FROM cohort_members m WHERE m.cohort_id = c.id)
		 FROM cohorts c WHERE c.tenant_id=$1 ORDER BY c.name`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Summary{}
	for rows.Next() {
		var sm Summary
		if err := rows.Scan(&sm.ID, &sm.Name, &sm.CreatedAt, &sm.MemberCount); err != nil {
			return nil, err
		}
		out = append(out, sm)
	}
	return out, rows.Err()
}

func (s *SQLStore) Delete(ctx context.Context, tenantID, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM cohorts WHERE tenant_id=$1 AND id=$2`, tenantID, id)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (s *SQLStore) AddMembers(ctx context.Context, tenantID, id string, userIDs []string) error {
	if _, err := s.Get(ctx, tenantID, id); err != nil {
		return err
	}
	for _, uid := range userIDs {
		if uid == "" {
			continue
		}
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO cohort_members (cohort_id, user_id) VALUES ($1,$2)
			 ON CONFLICT (cohort_id, user_id) DO NOTHING`, id, uid)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLStore) RemoveMember(ctx context.Context, tenantID, id, userID string) error {
	if _, err := s.Get(ctx, tenantID, id); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM cohort_members WHERE cohort_id=$1 AND user_id=$2`, id, userID)
	return err
}

func (s *SQLStore) AssignAssessment(ctx context.Context, tenantID, id, assessmentID string) error {
	if _, err := s.Get(ctx, tenantID, id); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cohort_assessments (cohort_id, assessment_id) VALUES ($1,$2)
		 ON CONFLICT (cohort_id, assessment_id) DO NOTHING`, id, assessmentID)
	return err
}

func (s *SQLStore) UnassignAssessment(ctx context.Context, tenantID, id, assessmentID string) error {
	if _, err := s.Get(ctx, tenantID, id); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM cohort_assessments WHERE cohort_id=$1 AND assessment_id=$2`, id, assessmentID)
	return err
}

func (s *SQLStore) AssignedAssessments(ctx context.Context, tenantID, userID string) ([]string, error) {
	return s.collect(ctx,
		`SELECT DISTINCT ca.assessment_id
		 FROM cohort_assessments ca
		 JOIN cohort_members m ON m.cohort_id = ca.cohort_id
		 JOIN cohorts c ON c.id = ca.cohort_id
		 WHERE c.tenant_id=$1 AND m.user_id=$2
		 ORDER BY ca.assessment_id`, tenantID, userID)
}

func (s *SQLStore) collect(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func mustAffect(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
