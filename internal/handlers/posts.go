package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Lawrencium-103/Linky-V2/internal/logger"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

// PostsLister defines the interface that the service must implement.
type PostsLister interface {
	ListPosts(ctx context.Context, userID uuid.UUID) ([]models.PostDB, error)
}

// PostItem represents one post in the history listing
// swagger:model PostItem
type PostItem struct {
	// Identifier of the post
	PostID string `json:"post_id"`

	// Post text
	Content string `json:"content"`

	// Number of words in the post
	WordCount int `json:"word_count"`

	// Creation time
	CreatedAt time.Time `json:"created_at"`

	// Whether the post has ever been liked
	Liked bool `json:"liked"`

	// Whether the post has ever been shared
	Shared bool `json:"shared"`
}

// PostsResponse represents the user's generation history
// swagger:model PostsResponse
type PostsResponse struct {
	// Posts, newest first
	Posts []PostItem `json:"posts"`
}

// PostsErrorResponse represents an error response when listing posts
// swagger:model PostsErrorResponse
type PostsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewListPostsHandler returns an HTTP handler for the generation history.
// @Summary List posts
// @Description Returns the caller's generated posts, newest first.
// @Tags posts
// @Produce json
// @Success 200 {object} handlers.PostsResponse "Generation history"
// @Failure 401 {object} handlers.PostsErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.PostsErrorResponse "Internal server error"
// @Router /posts [get]
// @Security BearerAuth
func NewListPostsHandler(svc PostsLister, tokener ClaimsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(ctx, tokener, w, r)
		if !ok {
			return
		}

		posts, err := svc.ListPosts(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list posts", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PostsErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		items := make([]PostItem, 0, len(posts))
		for _, p := range posts {
			items = append(items, PostItem{
				PostID:    p.PostID.String(),
				Content:   p.Content,
				WordCount: p.WordCount,
				CreatedAt: p.CreatedAt,
				Liked:     p.Liked,
				Shared:    p.Shared,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PostsResponse{
			Posts: items,
		})
	}
}
