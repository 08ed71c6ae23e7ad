package handler

import (
	"encoding/json"
	"net/http"
)

const maxBatchRequests = 50

// POST /recommendations/batch
func (h *Handler) GetBatchRecommendations(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}

	// Validate requests
	if len(req.Requests) == 0 || len(req.Requests) > maxBatchRequests {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid requests parameter")
		return
	}

	// Validate top_n
	if req.TopN < 0 || req.TopN > 20 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid top_n parameter")
		return
	}

	// Call service
	result, err := h.service.GetBatchRecommendations(r.Context(), req.Requests, req.TopN)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
