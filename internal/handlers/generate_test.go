package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Lawrencium-103/Linky-V2/internal/facades"
	"github.com/Lawrencium-103/Linky-V2/internal/jwt"
	"github.com/Lawrencium-103/Linky-V2/internal/models"
	"github.com/Lawrencium-103/Linky-V2/internal/services"
)

func TestGenerateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGen := NewMockGenerator(ctrl)
	mockTokener := NewMockClaimsTokener(ctrl)

	userID := uuid.New()
	postID := uuid.New()
	claims := &jwt.Claims{UserID: userID, Subscribed: true}

	validBody := `{
		"topic": "AI agents in recruiting",
		"tone": "Practical Educator",
		"content_types": ["News Breakdown"],
		"target_word_count": 100
	}`

	expectClaims := func() {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
	}

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "successful generation",
			body: validBody,
			setupMocks: func() {
				expectClaims()
				mockGen.EXPECT().Generate(gomock.Any(), userID, true, gomock.Any()).
					Return(&models.GenerationResult{
						Post: models.PostDB{PostID: postID, UserID: userID, Content: "generated text", WordCount: 2},
						Sources: []models.SourceLink{
							{Title: "Some article", URL: "https://example.com/a"},
						},
						ShareURLs: map[string]string{"linkedin": "https://www.linkedin.com/sharing/share-offsite/"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing token",
			body: validBody,
			setupMocks: func() {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no authorization header"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "bad claims",
			body: validBody,
			setupMocks: func() {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(nil, errors.New("token expired"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed body",
			body:           `{"topic": `,
			setupMocks:     expectClaims,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid parameters",
			body: validBody,
			setupMocks: func() {
				expectClaims()
				mockGen.EXPECT().Generate(gomock.Any(), userID, true, gomock.Any()).
					Return(nil, services.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "trial limit reached",
			body: validBody,
			setupMocks: func() {
				expectClaims()
				mockGen.EXPECT().Generate(gomock.Any(), userID, true, gomock.Any()).
					Return(nil, services.ErrUsageLimit)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "provider rejected request",
			body: validBody,
			setupMocks: func() {
				expectClaims()
				mockGen.EXPECT().Generate(gomock.Any(), userID, true, gomock.Any()).
					Return(nil, facades.ErrFatal)
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name: "all providers unavailable",
			body: validBody,
			setupMocks: func() {
				expectClaims()
				mockGen.EXPECT().Generate(gomock.Any(), userID, true, gomock.Any()).
					Return(nil, facades.ErrTransient)
			},
			expectedStatus: http.StatusGatewayTimeout,
		},
		{
			name: "internal error",
			body: validBody,
			setupMocks: func() {
				expectClaims()
				mockGen.EXPECT().Generate(gomock.Any(), userID, true, gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			NewGenerateHandler(mockGen, mockTokener)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp GenerateResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, postID.String(), resp.PostID)
				assert.Equal(t, "generated text", resp.Content)
				assert.Len(t, resp.Sources, 1)
				assert.Contains(t, resp.ShareURLs, "linkedin")
			} else {
				var resp GenerateErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Error)
			}
		})
	}
}
