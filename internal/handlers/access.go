package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Lawrencium-103/Linky-V2/internal/logger"
	"github.com/Lawrencium-103/Linky-V2/internal/services"
)

// Authenticator defines the interface that the service must implement.
type Authenticator interface {
	Authenticate(ctx context.Context, code string, email *string) (*services.Session, error)
}

// AccessRequest represents the JSON body for session creation
// swagger:model AccessRequest
type AccessRequest struct {
	// Access code, empty for a free trial session
	// default: LINKY2026A
	AccessCode string `json:"access_code"`

	// Email, optional
	// default: jane@example.com
	Email *string `json:"email,omitempty"`
}

// AccessResponse represents a successful session creation response
// swagger:model AccessResponse
type AccessResponse struct {
	// Bearer token for subsequent requests
	Token string `json:"token"`

	// Identifier of the session's user
	UserID string `json:"user_id"`

	// Whether the session is subscribed or a free trial
	Subscribed bool `json:"subscribed"`

	// True when the service runs on the in-memory store and codes are reusable
	Bypass bool `json:"bypass"`
}

// AccessErrorResponse represents an error response for session creation
// swagger:model AccessErrorResponse
type AccessErrorResponse struct {
	// Error message
	// default: Invalid access code
	Error string `json:"error"`
}

// NewAccessHandler returns an HTTP handler for session creation.
// @Summary Start a session
// @Description Redeems an access code for a subscribed session, or starts a free trial session when no code is given.
// @Tags access
// @Accept json
// @Produce json
// @Param accessRequest body handlers.AccessRequest true "Session request"
// @Success 200 {object} handlers.AccessResponse "Session created"
// @Failure 401 {object} handlers.AccessErrorResponse "Invalid access code"
// @Failure 403 {object} handlers.AccessErrorResponse "Access code already used"
// @Failure 500 {object} handlers.AccessErrorResponse "Internal server error"
// @Router /access [post]
func NewAccessHandler(svc Authenticator, bypassMode bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AccessRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AccessErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		session, err := svc.Authenticate(r.Context(), req.AccessCode, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAccessCode):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(AccessErrorResponse{
					Error: "Invalid access code",
				})
			case errors.Is(err, services.ErrAccessCodeUsed):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(AccessErrorResponse{
					Error: "Access code already used",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AccessErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AccessResponse{
			Token:      session.Token,
			UserID:     session.UserID.String(),
			Subscribed: session.Subscribed,
			Bypass:     bypassMode,
		})
	}
}
