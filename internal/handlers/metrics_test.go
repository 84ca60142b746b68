package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Lawrencium-103/Linky-V2/internal/jwt"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
)

func TestGetMetricsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMetricsGetter(ctrl)
	mockTokener := NewMockClaimsTokener(ctrl)

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID, Subscribed: true}

	expectClaims := func() {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
	}

	tests := []struct {
		name           string
		setupMocks     func()
		expectedStatus int
		expected       MetricsResponse
	}{
		{
			name: "counters returned",
			setupMocks: func() {
				expectClaims()
				mockSvc.EXPECT().GetMetrics(gomock.Any(), userID).
					Return(&models.MetricsDB{UserID: userID, PostsGenerated: 5, LikesCount: 2, SharesCount: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expected:       MetricsResponse{PostsGenerated: 5, LikesCount: 2, SharesCount: 1},
		},
		{
			name: "fresh user gets zeroes",
			setupMocks: func() {
				expectClaims()
				mockSvc.EXPECT().GetMetrics(gomock.Any(), userID).
					Return(&models.MetricsDB{UserID: userID}, nil)
			},
			expectedStatus: http.StatusOK,
			expected:       MetricsResponse{},
		},
		{
			name: "missing token",
			setupMocks: func() {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no authorization header"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "internal error",
			setupMocks: func() {
				expectClaims()
				mockSvc.EXPECT().GetMetrics(gomock.Any(), userID).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil)
			rec := httptest.NewRecorder()

			NewGetMetricsHandler(mockSvc, mockTokener)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp MetricsResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expected, resp)
			}
		})
	}
}
