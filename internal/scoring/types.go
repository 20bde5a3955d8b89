package scoring

// Trend classifies the direction of recent performance.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// Recommendation levels produced by the engine.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// DefaultSubject is reported when the history is too thin to compare
// subjects.
const DefaultSubject = "General Studies"

// Config holds the weighting and threshold configuration for the
// test-result scoring engine.
type Config struct {
	TypeWeights           map[string]float64 `json:"type_weights"`
	DefaultTypeWeight     float64            `json:"default_type_weight"`
	RecencyDecayDays      int                `json:"recency_decay_days"`
	MaxRecencyDecay       float64            `json:"max_recency_decay"`
	TrendWindow           int                `json:"trend_window"`
	TrendThreshold        float64            `json:"trend_threshold"`
	AdvancedThreshold     float64            `json:"advanced_threshold"`
	IntermediateThreshold float64            `json:"intermediate_threshold"`
	DefaultConfidence     float64            `json:"default_confidence"`
}

// DefaultConfig returns the production weighting: quizzes count least,
// exams most, and scores older than 30 days decay to 70% of their
// base weight.
func DefaultConfig() *Config {
	return &Config{
		TypeWeights: map[string]float64{
			"quiz":       0.3,
			"test":       0.4,
			"assignment": 0.5,
			"exam":       0.7,
		},
		DefaultTypeWeight:     0.4,
		RecencyDecayDays:      30,
		MaxRecencyDecay:       0.3,
		TrendWindow:           5,
		TrendThreshold:        5,
		AdvancedThreshold:     85,
		IntermediateThreshold: 70,
		DefaultConfidence:     50.0,
	}
}
