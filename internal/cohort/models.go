package cohort

import (
	"errors"
	"strings"
)

// Cohort is a tenant-scoped group of learners. Assessments are assigned
// to cohorts; a learner sees the union of assignments across the cohorts
// they belong to.
type Cohort struct {
	ID            string   `json:"id"`
	TenantID      string   `json:"tenant_id,omitempty"`
	Name          string   `json:"name"`
	MemberIDs     []string `json:"member_ids"`
	AssessmentIDs []string `json:"assessment_ids"`
	CreatedAt     int64    `json:"created_at,omitempty"`
}

type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
	CreatedAt   int64  `json:"created_at,omitempty"`
}

var ErrNotFound = errors.New("cohort not found")

func (c *Cohort) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("cohort name required")
	}
	return nil
}
