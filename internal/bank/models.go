package bank

import (
	"errors"
	"fmt"

	"github.com/examforge/examforge-backend/internal/scoring"
)

// Item is an authored question in the tenant's item bank. Config carries
// the kind-specific answer key in the shape the scoring engine consumes;
// it is stored as JSON and must never reach learners unsanitized.
type Item struct {
	ID         string       `json:"id"`
	TenantID   string       `json:"tenant_id,omitempty"`
	Title      string       `json:"title"`
	Kind       scoring.Kind `json:"kind"`
	PromptHTML string       `json:"prompt_html,omitempty"`
	Subject    string       `json:"subject,omitempty"`
	Topic      string       `json:"topic,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
	Config     scoring.Item `json:"config"`
	CreatedAt  int64        `json:"created_at,omitempty"`
	UpdatedAt  int64        `json:"updated_at,omitempty"`
}

type ItemSummary struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Kind       scoring.Kind `json:"kind"`
	Subject    string       `json:"subject,omitempty"`
	Topic      string       `json:"topic,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
}

var Difficulties = []string{"easy", "medium", "hard"}

var (
	ErrNotFound = errors.New("item not found")
)

// Validate checks taxonomy fields and that the config matches the declared
// kind. Request-shape validation happens at the API edge; this is the
// authoring-time gate.
func (it *Item) Validate() error {
	if it.Title == "" {
		return errors.New("title required")
	}
	if !it.Kind.Valid() {
		return fmt.Errorf("unknown kind %q", it.Kind)
	}
	if it.Difficulty == "" {
		it.Difficulty = "medium"
	}
	if !validDifficulty(it.Difficulty) {
		return fmt.Errorf("difficulty must be one of %v", Difficulties)
	}
	it.Config.Kind = it.Kind
	return validateConfig(it.Config)
}

func validDifficulty(d string) bool {
	for _, v := range Difficulties {
		if d == v {
			return true
		}
	}
	return false
}

func validateConfig(cfg scoring.Item) error {
	switch cfg.Kind {
	case scoring.KindMCQ, scoring.KindTrueFalse:
		if cfg.Choice == nil {
			return errors.New("choice config required")
		}
		if cfg.Choice.AnswerMode != scoring.AnswerSingle && cfg.Choice.AnswerMode != scoring.AnswerMultiple {
			return fmt.Errorf("bad answer_mode %q", cfg.Choice.AnswerMode)
		}
	case scoring.KindFillBlank:
		if cfg.FillBlank == nil {
			return errors.New("fill_blank config required")
		}
	case scoring.KindMatching:
		if cfg.Matching == nil {
			return errors.New("matching config required")
		}
	case scoring.KindOrdering:
		if cfg.Ordering == nil {
			return errors.New("ordering config required")
		}
	case scoring.KindNumeric:
		if cfg.Numeric == nil {
			return errors.New("numeric config required")
		}
		if m := cfg.Numeric.Validation.Mode; m != "exact" && m != "range" {
			return fmt.Errorf("bad numeric validation mode %q", m)
		}
	case scoring.KindHotspot:
		if cfg.Hotspot == nil {
			return errors.New("hotspot config required")
		}
		for _, h := range cfg.Hotspot.Hotspots {
			if len(h.Points) < 3 {
				return fmt.Errorf("hotspot %q needs at least 3 vertices", h.ID)
			}
		}
	case scoring.KindDragDrop:
		if cfg.DragDrop == nil {
			return errors.New("drag_drop config required")
		}
		for _, z := range cfg.DragDrop.Zones {
			if z.Evaluation != scoring.ZoneSet && z.Evaluation != scoring.ZoneOrdered {
				return fmt.Errorf("zone %q: bad evaluation %q", z.ID, z.Evaluation)
			}
		}
	default:
		// free-text kinds carry no scoring config
	}
	return nil
}

// Sanitize strips answer-key material while keeping the structure a
// learner-facing client needs to render the item (blank counts, prompt
// ids, token ids, zone shapes).
func (it Item) Sanitize() Item {
	cfg := it.Config
	if cfg.Choice != nil {
		c := *cfg.Choice
		c.CorrectIndexes = nil
		cfg.Choice = &c
	}
	if cfg.FillBlank != nil {
		f := *cfg.FillBlank
		f.Blanks = make([]scoring.Blank, len(it.Config.FillBlank.Blanks))
		cfg.FillBlank = &f
	}
	if cfg.Matching != nil {
		m := *cfg.Matching
		m.Prompts = make([]scoring.MatchPrompt, len(it.Config.Matching.Prompts))
		for i, p := range it.Config.Matching.Prompts {
			m.Prompts[i] = scoring.MatchPrompt{ID: p.ID}
		}
		cfg.Matching = &m
	}
	if cfg.Ordering != nil {
		o := *cfg.Ordering
		o.CorrectOrder = nil
		cfg.Ordering = &o
	}
	if cfg.Numeric != nil {
		cfg.Numeric = &scoring.NumericConfig{}
	}
	if cfg.Hotspot != nil {
		// polygons are the answer key for hotspot items
		h := *cfg.Hotspot
		h.Hotspots = nil
		cfg.Hotspot = &h
	}
	if cfg.DragDrop != nil {
		d := *cfg.DragDrop
		d.Zones = make([]scoring.Zone, len(it.Config.DragDrop.Zones))
		for i, z := range it.Config.DragDrop.Zones {
			d.Zones[i] = scoring.Zone{ID: z.ID, Evaluation: z.Evaluation, MaxTokens: z.MaxTokens}
		}
		cfg.DragDrop = &d
	}
	it.Config = cfg
	return it
}
