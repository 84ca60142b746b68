package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Lawrencium-103/Linky-V2/internal/facades"
	"github.com/Lawrencium-103/Linky-V2/internal/jwt"
	"github.com/Lawrencium-103/Linky-V2/internal/logger"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
	"github.com/Lawrencium-103/Linky-V2/internal/services"
)

// ClaimsTokener defines only the methods needed by the session-bound handlers.
type ClaimsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Generator defines the interface that the service must implement.
type Generator interface {
	Generate(ctx context.Context, userID uuid.UUID, subscribed bool, req models.GenerationRequest) (*models.GenerationResult, error)
}

// GenerateResponse represents a successful generation response
// swagger:model GenerateResponse
type GenerateResponse struct {
	// Identifier of the stored post
	PostID string `json:"post_id"`

	// Generated post text
	Content string `json:"content"`

	// Number of words in the generated text
	WordCount int `json:"word_count"`

	// Articles backing the enrichment facts
	Sources []models.SourceLink `json:"sources"`

	// Pre-filled share links keyed by platform
	ShareURLs map[string]string `json:"share_urls"`
}

// GenerateErrorResponse represents an error response for generation
// swagger:model GenerateErrorResponse
type GenerateErrorResponse struct {
	// Error message
	// default: Invalid generation parameters
	Error string `json:"error"`
}

// NewGenerateHandler returns an HTTP handler for post generation.
// @Summary Generate a post
// @Description Runs the full generation workflow for the given parameters and stores the result.
// @Tags generation
// @Accept json
// @Produce json
// @Param generationRequest body models.GenerationRequest true "Generation parameters"
// @Success 200 {object} handlers.GenerateResponse "Generated post"
// @Failure 400 {object} handlers.GenerateErrorResponse "Invalid generation parameters"
// @Failure 401 {object} handlers.GenerateErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.GenerateErrorResponse "Free trial limit reached"
// @Failure 502 {object} handlers.GenerateErrorResponse "Provider rejected the request"
// @Failure 504 {object} handlers.GenerateErrorResponse "All providers unavailable"
// @Router /generate [post]
// @Security BearerAuth
func NewGenerateHandler(svc Generator, tokener ClaimsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(ctx, tokener, w, r)
		if !ok {
			return
		}

		var req models.GenerationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GenerateErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		result, err := svc.Generate(ctx, claims.UserID, claims.Subscribed, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GenerateErrorResponse{
					Error: err.Error(),
				})
			case errors.Is(err, services.ErrUsageLimit):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(GenerateErrorResponse{
					Error: "Free trial limit reached",
				})
			case errors.Is(err, facades.ErrFatal):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(GenerateErrorResponse{
					Error: "Provider rejected the request",
				})
			case errors.Is(err, facades.ErrTransient):
				w.WriteHeader(http.StatusGatewayTimeout)
				json.NewEncoder(w).Encode(GenerateErrorResponse{
					Error: "All providers unavailable, try again later",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GenerateErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GenerateResponse{
			PostID:    result.Post.PostID.String(),
			Content:   result.Post.Content,
			WordCount: result.Post.WordCount,
			Sources:   result.Sources,
			ShareURLs: result.ShareURLs,
		})
	}
}

// claimsFromRequest extracts and parses the bearer token, writing 401 itself
// on failure.
func claimsFromRequest(ctx context.Context, tokener ClaimsTokener, w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Error("unauthorized request: missing or invalid token")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(GenerateErrorResponse{
			Error: "Unauthorized",
		})
		return nil, false
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(GenerateErrorResponse{
			Error: "Unauthorized",
		})
		return nil, false
	}

	return claims, true
}
