package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Lawrencium-103/Linky-V2/internal/logger"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

// MetricsGetter defines the interface that the service must implement.
type MetricsGetter interface {
	GetMetrics(ctx context.Context, userID uuid.UUID) (*models.MetricsDB, error)
}

// MetricsResponse represents the user's engagement counters
// swagger:model MetricsResponse
type MetricsResponse struct {
	// Total posts generated by the user
	PostsGenerated int `json:"posts_generated"`

	// Total like clicks recorded for the user
	LikesCount int `json:"likes_count"`

	// Total share clicks recorded for the user
	SharesCount int `json:"shares_count"`
}

// MetricsErrorResponse represents an error response when fetching metrics
// swagger:model MetricsErrorResponse
type MetricsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewGetMetricsHandler returns an HTTP handler for fetching user counters.
// @Summary Get user metrics
// @Description Returns the caller's engagement counters, zeroes for a fresh user.
// @Tags metrics
// @Produce json
// @Success 200 {object} handlers.MetricsResponse "User counters"
// @Failure 401 {object} handlers.MetricsErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.MetricsErrorResponse "Internal server error"
// @Router /metrics [get]
// @Security BearerAuth
func NewGetMetricsHandler(svc MetricsGetter, tokener ClaimsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(ctx, tokener, w, r)
		if !ok {
			return
		}

		metrics, err := svc.GetMetrics(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get metrics", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MetricsErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MetricsResponse{
			PostsGenerated: metrics.PostsGenerated,
			LikesCount:     metrics.LikesCount,
			SharesCount:    metrics.SharesCount,
		})
	}
}
