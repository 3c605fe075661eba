package scoring

// Kind tags the closed set of item kinds the engine understands.
type Kind string

const (
	KindMCQ         Kind = "mcq"
	KindTrueFalse   Kind = "true_false"
	KindFillBlank   Kind = "fill_blank"
	KindMatching    Kind = "matching"
	KindOrdering    Kind = "ordering"
	KindNumeric     Kind = "numeric"
	KindHotspot     Kind = "hotspot"
	KindDragDrop    Kind = "drag_drop"
	KindShortAnswer Kind = "short_answer"
	KindEssay       Kind = "essay"
	KindScenario    Kind = "scenario"
)

// Kinds lists every kind in a stable order.
var Kinds = []Kind{
	KindMCQ, KindTrueFalse, KindFillBlank, KindMatching, KindOrdering,
	KindNumeric, KindHotspot, KindDragDrop, KindShortAnswer, KindEssay,
	KindScenario,
}

func (k Kind) Valid() bool {
	for _, v := range Kinds {
		if k == v {
			return true
		}
	}
	return false
}

// ManualOnly reports whether the kind is graded outside the engine.
func (k Kind) ManualOnly() bool {
	return k == KindShortAnswer || k == KindEssay || k == KindScenario
}

// Scoring modes. Which modes apply depends on the kind: choice and numeric
// items are always binary; the rest carry a Mode field in their config.
const (
	ModeAll          = "all"
	ModePartial      = "partial"
	ModePartialPairs = "partial_pairs"
	ModePerZone      = "per_zone"
	ModePerToken     = "per_token"
)

// Answer modes for choice items.
const (
	AnswerSingle   = "single"
	AnswerMultiple = "multiple"
)

// Item is the scoring view of an authored item: the kind tag plus exactly
// one populated config for that kind. Items are immutable once scored
// against; authoring and versioning live elsewhere.
type Item struct {
	Kind   Kind    `json:"kind"`
	Points float64 `json:"points,omitempty"` // max points for manually graded kinds

	Choice    *ChoiceConfig    `json:"choice,omitempty"`
	FillBlank *FillBlankConfig `json:"fill_blank,omitempty"`
	Matching  *MatchingConfig  `json:"matching,omitempty"`
	Ordering  *OrderingConfig  `json:"ordering,omitempty"`
	Numeric   *NumericConfig   `json:"numeric,omitempty"`
	Hotspot   *HotspotConfig   `json:"hotspot,omitempty"`
	DragDrop  *DragDropConfig  `json:"drag_drop,omitempty"`
}

// ChoiceConfig covers MCQ and True/False. True/False is MCQ with two
// choices and AnswerMode "single"; the scoring logic is shared.
type ChoiceConfig struct {
	AnswerMode     string `json:"answer_mode"` // single|multiple
	CorrectIndexes []int  `json:"correct_indexes"`
}

// AnswerMatcher is one acceptable answer for a blank: either a literal
// value or a regex pattern with JS-style flags.
type AnswerMatcher struct {
	Type          string `json:"type"` // exact|regex
	Value         string `json:"value,omitempty"`
	CaseSensitive bool   `json:"case_sensitive,omitempty"`
	Pattern       string `json:"pattern,omitempty"`
	Flags         string `json:"flags,omitempty"` // default "i"
}

type Blank struct {
	Acceptable []AnswerMatcher `json:"acceptable_answers"`
}

type FillBlankConfig struct {
	Mode   string  `json:"mode"` // partial|all
	Blanks []Blank `json:"blanks"`
}

type MatchPrompt struct {
	ID              string `json:"id"`
	CorrectTargetID string `json:"correct_target_id"`
}

type MatchingConfig struct {
	Mode    string        `json:"mode"` // partial|all
	Prompts []MatchPrompt `json:"prompts"`
}

type OrderingConfig struct {
	Mode         string   `json:"mode"` // all|partial_pairs
	CorrectOrder []string `json:"correct_order"`

	// CustomEvaluatorID routes scoring to an external evaluator. The
	// engine returns a zero score with Deferred set and the mode's
	// normal MaxScore.
	CustomEvaluatorID string `json:"custom_evaluator_id,omitempty"`
}

type NumericValidation struct {
	Mode      string  `json:"mode"` // exact|range
	Value     float64 `json:"value,omitempty"`
	Tolerance float64 `json:"tolerance,omitempty"` // default 0, inclusive
	Min       float64 `json:"min,omitempty"`       // inclusive
	Max       float64 `json:"max,omitempty"`       // inclusive
}

type NumericConfig struct {
	Validation NumericValidation `json:"validation"`
}

// Point is a 2-D coordinate normalized to [0,1] against the item's image.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Hotspot struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"` // ordered polygon, >=3 vertices
}

type HotspotConfig struct {
	Mode          string    `json:"mode"` // partial|all
	MaxSelections *int      `json:"max_selections,omitempty"`
	Hotspots      []Hotspot `json:"hotspots"`
}

// Zone evaluation modes.
const (
	ZoneSet     = "set"
	ZoneOrdered = "ordered"
)

type Zone struct {
	ID              string   `json:"id"`
	Evaluation      string   `json:"evaluation"` // set|ordered
	MaxTokens       *int     `json:"max_tokens,omitempty"`
	CorrectTokenIDs []string `json:"correct_token_ids"`
}

type DragDropConfig struct {
	Mode     string   `json:"mode"` // all|per_zone|per_token
	TokenIDs []string `json:"token_ids"`
	Zones    []Zone   `json:"zones"`
}

// Response is a learner's submission for one item, shaped per kind. A nil
// Response, or one missing the field for the item's kind, scores zero and
// never errors.
type Response struct {
	SelectedIndexes []int         `json:"selected_indexes,omitempty"` // mcq, true_false
	BlankTexts      []string      `json:"blank_texts,omitempty"`      // fill_blank, positional
	Pairs           []MatchedPair `json:"pairs,omitempty"`            // matching
	Order           []string      `json:"order,omitempty"`            // ordering
	Value           *float64      `json:"value,omitempty"`            // numeric
	Points          []Point       `json:"points,omitempty"`           // hotspot
	Placements      []Placement   `json:"placements,omitempty"`       // drag_drop
	Text            string        `json:"text,omitempty"`             // free-text kinds, unscored
}

type MatchedPair struct {
	PromptID string `json:"prompt_id"`
	TargetID string `json:"target_id"`
}

type Placement struct {
	ZoneID   string `json:"zone_id"`
	TokenID  string `json:"token_id"`
	Position *int   `json:"position,omitempty"`
}
