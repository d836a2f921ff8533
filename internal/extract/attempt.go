package extract

// Strategy identifies which extractor produced an attempt. The set is closed;
// merging relies on the fixed tier order below.
type Strategy string

const (
	StrategyPattern    Strategy = "pattern"
	StrategyModel      Strategy = "model"
	StrategyContextual Strategy = "contextual"
)

// Rank returns the strategy tier used to break conflicts during merging.
// Higher outranks lower regardless of confidence; confidence only breaks
// ties within the same tier.
func (s Strategy) Rank() int {
	switch s {
	case StrategyPattern:
		return 3
	case StrategyModel:
		return 2
	case StrategyContextual:
		return 1
	default:
		return 0
	}
}

// Attempt is one strategy's proposed value for one field on one page.
// Never mutated after creation; many attempts may exist per field.
type Attempt struct {
	Field      string   `json:"field"`
	Page       int      `json:"page"`
	Strategy   Strategy `json:"strategy"`
	Value      any      `json:"value"` // nil means confident absence
	Confidence float64  `json:"confidence"`
	Evidence   string   `json:"evidence"`
}

// Valid reports whether the merger may consider this attempt. Attempts with
// empty evidence are invalid (no audit trail); attempts at confidence 0 are
// discarded, not chosen.
func (a Attempt) Valid() bool {
	return a.Evidence != "" && a.Confidence > 0
}
