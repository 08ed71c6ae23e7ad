package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dapurcerdas/recipe-recommendation-service/internal/domain"
)

const noMatchMessage = "no sufficiently matching recipe found"

// POST /recommendations
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}

	// Validate top_n: zero means the server default
	if req.TopN < 0 || req.TopN > 20 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid top_n parameter")
		return
	}

	result, err := h.service.GetRecommendations(r.Context(), req.Ingredients, req.TopN)
	if err != nil {
		// Empty ingredient input
		if errors.Is(err, domain.ErrEmptyIngredients) {
			writeError(w, http.StatusBadRequest, "empty_ingredients",
				"Provide at least one ingredient, separated by commas or newlines")
			return
		}
		// Request timeout
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			writeError(w, http.StatusServiceUnavailable, "request_timeout",
				"Request timed out, please try again")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	resp := RecommendationResponse{
		Ingredients:     result.Ingredients,
		Recommendations: result.Recommendations,
		Metadata: domain.RecommendationMeta{
			CacheHit:    result.CacheHit,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			TotalCount:  len(result.Recommendations),
		},
	}
	if len(result.Recommendations) == 0 {
		resp.Message = noMatchMessage
	}

	writeJSON(w, http.StatusOK, resp)
}
