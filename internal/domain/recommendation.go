package domain

type Recommendation struct {
	Title              string   `json:"title"`
	SourceURL          string   `json:"source_url"`
	MatchScorePercent  float64  `json:"match_score_percent"`
	MissingIngredients []string `json:"missing_ingredients"`
	PersonaCluster     string   `json:"persona_cluster"`
	SmartSuggestions   []string `json:"smart_suggestions"`
}

type RecommendationMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

type RecommendationResult struct {
	Ingredients     []string
	Recommendations []Recommendation
	CacheHit        bool
}

type BatchStatus string

const (
	StatusSuccess BatchStatus = "success"
	StatusFailed  BatchStatus = "failed"
)

type BatchItemResult struct {
	Index           int              `json:"index"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Status          BatchStatus      `json:"status"`
	Error           string           `json:"error,omitempty"`
	Message         string           `json:"message,omitempty"`
}

type BatchSummary struct {
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type BatchMeta struct {
	GeneratedAt string `json:"generated_at"`
}

type BatchResponse struct {
	TopN     int               `json:"top_n"`
	Results  []BatchItemResult `json:"results"`
	Summary  BatchSummary      `json:"summary"`
	Metadata BatchMeta         `json:"metadata"`
}
