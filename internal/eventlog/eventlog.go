package eventlog

import (
	"context"
	"database/sql"
	"time"
)

// Event types appended by the attempt workflow.
const (
	TypeAttemptSubmitted = "AttemptSubmitted"
	TypeAttemptScored    = "AttemptScored"
	TypeManualGraded     = "ManualGraded"
)

type Event struct {
	Offset    int64
	TenantID  string
	Type      string
	Key       string // natural key: attemptID
	DataJSON  string
	CreatedAt int64
}

type Repo struct{ db *sql.DB }

func NewRepo(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Append(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (tenant_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		e.TenantID, e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}
