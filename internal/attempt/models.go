package attempt

import (
	"errors"

	"github.com/examforge/examforge-backend/internal/scoring"
)

const (
	StatusInProgress = "in_progress"
	StatusSubmitted  = "submitted" // engine done, manual grades outstanding
	StatusScored     = "scored"
)

// ItemResult is the engine result for one item plus any manual override
// applied by a grader afterwards.
type ItemResult struct {
	scoring.Result
	ManualPoints *float64 `json:"manual_points,omitempty"`
	GradedBy     string   `json:"graded_by,omitempty"`
	Comment      string   `json:"comment,omitempty"`
}

// Awarded is the points that count toward the attempt total: the manual
// grade when one has been applied, the engine score otherwise.
func (ir ItemResult) Awarded() float64 {
	if ir.ManualPoints != nil {
		p := *ir.ManualPoints
		if p < 0 {
			p = 0
		}
		if p > ir.MaxScore {
			p = ir.MaxScore
		}
		return p
	}
	return ir.Score
}

type Attempt struct {
	ID           string                      `json:"id"`
	TenantID     string                      `json:"tenant_id,omitempty"`
	AssessmentID string                      `json:"assessment_id"`
	UserID       string                      `json:"user_id"`
	Status       string                      `json:"status"`
	Score        float64                     `json:"score"`
	MaxScore     float64                     `json:"max_score"`
	Responses    map[string]scoring.Response `json:"responses"`    // itemID -> response
	ItemResults  map[string]ItemResult       `json:"item_results"` // populated on submit
	StartedAt    int64                       `json:"started_at,omitempty"`
	SubmittedAt  int64                       `json:"submitted_at,omitempty"`
}

type ListOpts struct {
	AssessmentID string
	UserID       string
	Status       string
	Limit        int
	Offset       int
}

type ManualGradeInput struct {
	ManualPoints float64 `json:"manual_points"`
	Comment      string  `json:"comment,omitempty"`
}

var (
	ErrNotFound         = errors.New("attempt not found")
	ErrAlreadySubmitted = errors.New("attempt already submitted")
	ErrNotSubmitted     = errors.New("attempt not submitted yet")
)
