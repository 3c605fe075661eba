package assessment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Store interface {
	Put(ctx context.Context, a *Assessment) error
	Get(ctx context.Context, tenantID, id string) (Assessment, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]Summary, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Put(ctx context.Context, a *Assessment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt == 0 {
		a.CreatedAt = time.Now().Unix()
	}
	ij, err := json.Marshal(a.ItemIDs)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO assessments (id,tenant_id,title,time_limit_sec,item_ids_json,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (id) DO UPDATE SET
		   title=EXCLUDED.title, time_limit_sec=EXCLUDED.time_limit_sec, item_ids_json=EXCLUDED.item_ids_json`,
		a.ID, a.TenantID, a.Title, a.TimeLimitSec, string(ij), a.CreatedAt)
	return err
}

func (s *SQLStore) Get(ctx context.Context, tenantID, id string) (Assessment, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,tenant_id,title,time_limit_sec,item_ids_json,created_at
		 FROM assessments WHERE tenant_id=$1 AND id=$2`, tenantID, id)
	var a Assessment
	var ij string
	if err := row.Scan(&a.ID, &a.TenantID, &a.Title, &a.TimeLimitSec, &ij, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, ErrNotFound
		}
		return Assessment{}, err
	}
	if err := json.Unmarshal([]byte(ij), &a.ItemIDs); err != nil {
		return Assessment{}, err
	}
	return a, nil
}

func (s *SQLStore) List(ctx context.Context, tenantID string, limit, offset int) ([]Summary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,title,time_limit_sec,item_ids_json,created_at
		 FROM assessments WHERE tenant_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Summary{}
	for rows.Next() {
		var sm Summary
		var ij string
		if err := rows.Scan(&sm.ID, &sm.Title, &sm.TimeLimitSec, &ij, &sm.CreatedAt); err != nil {
			return nil, err
		}
		var ids []string
		if err := json.Unmarshal([]byte(ij), &ids); err == nil {
			sm.ItemCount = len(ids)
		}
		out = append(out, sm)
	}
	return out, rows.Err()
}

func (s *SQLStore) Delete(ctx context.Context, tenantID, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assessments WHERE tenant_id=$1 AND id=$2`, tenantID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
