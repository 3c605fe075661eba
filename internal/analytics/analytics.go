// Package analytics computes per-assessment aggregates over scored
// attempts. Aggregation happens in Go rather than SQL because the
// per-item results live in a JSON column shared by both supported
// database engines.
package analytics

import (
	"context"
	"database/sql"
	"encoding/json"
	"math"

	"github.com/examforge/examforge-backend/internal/attempt"
)

// ItemStats summarizes how one item performed across scored attempts.
// Deferred results carry no engine judgment, so they are excluded from
// MeanScore and MeanPercent rather than counted as wrong.
type ItemStats struct {
	ItemID      string  `json:"item_id"`
	Answered    int     `json:"answered"` // results contributing to the means
	MeanScore   float64 `json:"mean_score"`
	MeanPercent float64 `json:"mean_percent"`
	NeedsManual int     `json:"needs_manual"`
	Deferred    int     `json:"deferred"`
}

type AssessmentReport struct {
	AssessmentID string               `json:"assessment_id"`
	AttemptCount int                  `json:"attempt_count"`
	MeanPercent  float64              `json:"mean_percent"`
	MinPercent   float64              `json:"min_percent"`
	MaxPercent   float64              `json:"max_percent"`
	Items        map[string]ItemStats `json:"items"`
}

type Service struct{ db *sql.DB }

func NewService(db *sql.DB) *Service { return &Service{db: db} }

// AssessmentReport aggregates all scored attempts for one assessment.
// Attempts still awaiting manual grades are not included: their totals
// would understate the real score.
func (s *Service) AssessmentReport(ctx context.Context, tenantID, assessmentID string) (AssessmentReport, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT score, max_score, results_json FROM attempts
		 WHERE tenant_id=$1 AND assessment_id=$2 AND status=$3`,
		tenantID, assessmentID, attempt.StatusScored)
	if err != nil {
		return AssessmentReport{}, err
	}
	defer rows.Close()

	rep := AssessmentReport{AssessmentID: assessmentID, Items: map[string]ItemStats{}}
	var sumPct float64
	rep.MinPercent = math.Inf(1)
	rep.MaxPercent = math.Inf(-1)

	itemSums := map[string]float64{}
	itemMax := map[string]float64{}

	for rows.Next() {
		var score, max float64
		var resj string
		if err := rows.Scan(&score, &max, &resj); err != nil {
			return AssessmentReport{}, err
		}
		var results map[string]attempt.ItemResult
		if err := json.Unmarshal([]byte(resj), &results); err != nil {
			return AssessmentReport{}, err
		}

		rep.AttemptCount++
		pct := 0.0
		if max > 0 {
			pct = 100 * score / max
		}
		sumPct += pct
		rep.MinPercent = math.Min(rep.MinPercent, pct)
		rep.MaxPercent = math.Max(rep.MaxPercent, pct)

		for itemID, ir := range results {
			st := rep.Items[itemID]
			st.ItemID = itemID
			if ir.NeedsManual {
				st.NeedsManual++
			}
			if ir.Deferred {
				st.Deferred++
			} else {
				st.Answered++
				itemSums[itemID] += ir.Awarded()
				itemMax[itemID] += ir.MaxScore
			}
			rep.Items[itemID] = st
		}
	}
	if err := rows.Err(); err != nil {
		return AssessmentReport{}, err
	}

	if rep.AttemptCount == 0 {
		rep.MinPercent, rep.MaxPercent = 0, 0
		return rep, nil
	}
	rep.MeanPercent = sumPct / float64(rep.AttemptCount)

	for itemID, st := range rep.Items {
		if st.Answered > 0 {
			st.MeanScore = itemSums[itemID] / float64(st.Answered)
			if itemMax[itemID] > 0 {
				st.MeanPercent = 100 * itemSums[itemID] / itemMax[itemID]
			}
		}
		rep.Items[itemID] = st
	}
	return rep, nil
}
