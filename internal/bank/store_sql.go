package bank

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/examforge/examforge-backend/internal/scoring"
)

type ListOpts struct {
	Q      string // substring match on title
	Kind   string
	Limit  int
	Offset int
}

type Store interface {
	Put(ctx context.Context, it *Item) error
	Get(ctx context.Context, tenantID, id string) (Item, error)          // learner-safe (no answer keys)
	GetAuthoring(ctx context.Context, tenantID, id string) (Item, error) // full item, for authors/scoring
	List(ctx context.Context, tenantID string, opts ListOpts) ([]ItemSummary, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Put(ctx context.Context, it *Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	cj, err := json.Marshal(it.Config)
	if err != nil {
		return err
	}
	now := time.Now().Unix()
	if it.CreatedAt == 0 {
		it.CreatedAt = now
	}
	it.UpdatedAt = now
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO items (id,tenant_id,kind,title,subject,topic,difficulty,config_json,created_at,updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 ON CONFLICT (id) DO UPDATE SET
		   title=EXCLUDED.title, subject=EXCLUDED.subject, topic=EXCLUDED.topic,
		   difficulty=EXCLUDED.difficulty, config_json=EXCLUDED.config_json, updated_at=EXCLUDED.updated_at`,
		it.ID, it.TenantID, string(it.Kind), it.Title, it.Subject, it.Topic, it.Difficulty, string(cj), it.CreatedAt, it.UpdatedAt)
	return err
}

func (s *SQLStore) Get(ctx context.Context, tenantID, id string) (Item, error) {
	it, err := s.GetAuthoring(ctx, tenantID, id)
	if err != nil {
		return Item{}, err
	}
	return it.Sanitize(), nil
}

func (s *SQLStore) GetAuthoring(ctx context.Context, tenantID, id string) (Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,tenant_id,kind,title,subject,topic,difficulty,config_json,created_at,updated_at
		 FROM items WHERE tenant_id=$1 AND id=$2`, tenantID, id)
	var it Item
	var kind, cj string
	if err := row.Scan(&it.ID, &it.TenantID, &kind, &it.Title, &it.Subject, &it.Topic, &it.Difficulty, &cj, &it.CreatedAt, &it.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	if err := json.Unmarshal([]byte(cj), &it.Config); err != nil {
		return Item{}, err
	}
	it.Kind = it.Config.Kind
	return it, nil
}

func (s *SQLStore) List(ctx context.Context, tenantID string, opts ListOpts) ([]ItemSummary, error) {
	if opts.Limit <= 0 || opts.Limit > 200 {
		opts.Limit = 50
	}
	q := `SELECT id,kind,title,subject,topic,difficulty FROM items WHERE tenant_id=$1`
	args := []interface{}{tenantID}
	n := 2
	if opts.Kind != "" {
		q += ` AND kind=$` + strconv.Itoa(n)
		args = append(args, opts.Kind)
		n++
	}
	if opts.Q != "" {
		q += ` AND title LIKE $` + strconv.Itoa(n)
		args = append(args, "%"+opts.Q+"%")
		n++
	}
	q += ` ORDER BY updated_at DESC LIMIT $` + strconv.Itoa(n) + ` OFFSET $` + strconv.Itoa(n+1)
	args = append(args, opts.Limit, opts.Offset)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []ItemSummary{}
	for rows.Next() {
		var sm ItemSummary
		var kind string
		if err := rows.Scan(&sm.ID, &kind, &sm.Title, &sm.Subject, &sm.Topic, &sm.Difficulty); err != nil {
			return nil, err
		}
		sm.Kind = scoring.Kind(kind)
		out = append(out, sm)
	}
	return out, rows.Err()
}

func (s *SQLStore) Delete(ctx context.Context, tenantID, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE tenant_id=$1 AND id=$2`, tenantID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
