package handler

import "github.com/dapurcerdas/recipe-recommendation-service/internal/domain"

type RecommendationRequest struct {
	Ingredients string `json:"ingredients"`
	TopN        int    `json:"top_n"`
}

type RecommendationResponse struct {
	Ingredients     []string                  `json:"ingredients"`
	Recommendations []domain.Recommendation   `json:"recommendations"`
	Message         string                    `json:"message,omitempty"`
	Metadata        domain.RecommendationMeta `json:"metadata"`
}

type BatchRequest struct {
	Requests []string `json:"requests"`
	TopN     int      `json:"top_n"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
