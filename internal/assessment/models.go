package assessment

import "errors"

// Assessment is an ordered composition of item-bank items. Weights live on
// the items themselves (their scoring mode fixes each max score), so the
// assessment only carries the sequence.
type Assessment struct {
	ID           string   `json:"id"`
	TenantID     string   `json:"tenant_id,omitempty"`
	Title        string   `json:"title"`
	TimeLimitSec int      `json:"time_limit_sec"`
	ItemIDs      []string `json:"item_ids"`
	CreatedAt    int64    `json:"created_at,omitempty"`
}

type Summary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	TimeLimitSec int    `json:"time_limit_sec"`
	ItemCount    int    `json:"item_count"`
	CreatedAt    int64  `json:"created_at,omitempty"`
}

var ErrNotFound = errors.New("assessment not found")

func (a *Assessment) Validate() error {
	if a.Title == "" {
		return errors.New("title required")
	}
	if len(a.ItemIDs) == 0 {
		return errors.New("at least one item required")
	}
	seen := make(map[string]struct{}, len(a.ItemIDs))
	for _, id := range a.ItemIDs {
		if id == "" {
			return errors.New("empty item id")
		}
		if _, dup := seen[id]; dup {
			return errors.New("duplicate item id: " + id)
		}
		seen[id] = struct{}{}
	}
	if a.TimeLimitSec < 0 {
		return errors.New("time limit must be >= 0")
	}
	return nil
}
