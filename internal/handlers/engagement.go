package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Lawrencium-103/Linky-V2/internal/logger"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
	"github.com/Lawrencium-103/Linky-V2/internal/services"
)

// EngagementRecorder defines the interface that the service must implement.
type EngagementRecorder interface {
	RecordEngagement(ctx context.Context, userID, postID uuid.UUID, kind string) (*models.MetricsDB, error)
}

// EngagementResponse represents the updated counters after an engagement
// swagger:model EngagementResponse
type EngagementResponse struct {
	// Total posts generated by the user
	PostsGenerated int `json:"posts_generated"`

	// Total like clicks recorded for the user
	LikesCount int `json:"likes_count"`

	// Total share clicks recorded for the user
	SharesCount int `json:"shares_count"`
}

// EngagementErrorResponse represents an error response for engagement recording
// swagger:model EngagementErrorResponse
type EngagementErrorResponse struct {
	// Error message
	// default: Post not found
	Error string `json:"error"`
}

// NewEngagementHandler returns an HTTP handler recording one like or share
// click on a post. Every click increments the user counter; the per-post
// flag latches on the first one.
// @Summary Record an engagement
// @Description Records a like or share click on a post owned by the caller and returns the updated counters.
// @Tags metrics
// @Produce json
// @Param postID path string true "Post identifier"
// @Success 200 {object} handlers.EngagementResponse "Updated counters"
// @Failure 400 {object} handlers.EngagementErrorResponse "Invalid post identifier"
// @Failure 401 {object} handlers.EngagementErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.EngagementErrorResponse "Post not found"
// @Failure 500 {object} handlers.EngagementErrorResponse "Internal server error"
// @Router /posts/{postID}/like [post]
// @Router /posts/{postID}/share [post]
// @Security BearerAuth
func NewEngagementHandler(svc EngagementRecorder, tokener ClaimsTokener, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(ctx, tokener, w, r)
		if !ok {
			return
		}

		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EngagementErrorResponse{
				Error: "Invalid post identifier",
			})
			return
		}

		metrics, err := svc.RecordEngagement(ctx, claims.UserID, postID, kind)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(EngagementErrorResponse{
					Error: "Post not found",
				})
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(EngagementErrorResponse{
					Error: "Unknown engagement kind",
				})
			default:
				logger.Log.Errorw("failed to record engagement", "postID", postID, "kind", kind, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(EngagementErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(EngagementResponse{
			PostsGenerated: metrics.PostsGenerated,
			LikesCount:     metrics.LikesCount,
			SharesCount:    metrics.SharesCount,
		})
	}
}
