package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Lawrencium-103/Linky-V2/internal/jwt"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
	"github.com/Lawrencium-103/Linky-V2/internal/services"
)

func newEngagementRequest(postID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/"+postID+"/like", nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("postID", postID)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestEngagementHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockEngagementRecorder(ctrl)
	mockTokener := NewMockClaimsTokener(ctrl)

	userID := uuid.New()
	postID := uuid.New()
	claims := &jwt.Claims{UserID: userID, Subscribed: false}

	expectClaims := func() {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
	}

	tests := []struct {
		name           string
		kind           string
		postID         string
		setupMocks     func()
		expectedStatus int
		expectedLikes  int
		expectedShares int
	}{
		{
			name:   "like recorded",
			kind:   "like",
			postID: postID.String(),
			setupMocks: func() {
				expectClaims()
				mockSvc.EXPECT().RecordEngagement(gomock.Any(), userID, postID, "like").
					Return(&models.MetricsDB{UserID: userID, PostsGenerated: 2, LikesCount: 3}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLikes:  3,
		},
		{
			name:   "share recorded",
			kind:   "share",
			postID: postID.String(),
			setupMocks: func() {
				expectClaims()
				mockSvc.EXPECT().RecordEngagement(gomock.Any(), userID, postID, "share").
					Return(&models.MetricsDB{UserID: userID, PostsGenerated: 2, SharesCount: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedShares: 1,
		},
		{
			name:           "invalid post identifier",
			kind:           "like",
			postID:         "not-a-uuid",
			setupMocks:     expectClaims,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "post not owned by caller",
			kind:   "like",
			postID: postID.String(),
			setupMocks: func() {
				expectClaims()
				mockSvc.EXPECT().RecordEngagement(gomock.Any(), userID, postID, "like").
					Return(nil, services.ErrPostNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "missing token",
			kind:   "like",
			postID: postID.String(),
			setupMocks: func() {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no authorization header"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "internal error",
			kind:   "like",
			postID: postID.String(),
			setupMocks: func() {
				expectClaims()
				mockSvc.EXPECT().RecordEngagement(gomock.Any(), userID, postID, "like").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			req := newEngagementRequest(tt.postID)
			rec := httptest.NewRecorder()

			NewEngagementHandler(mockSvc, mockTokener, tt.kind)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp EngagementResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedLikes, resp.LikesCount)
				assert.Equal(t, tt.expectedShares, resp.SharesCount)
			} else {
				var resp EngagementErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Error)
			}
		})
	}
}
