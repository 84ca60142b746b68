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

	"github.com/Lawrencium-103/Linky-V2/internal/services"
)

func TestAccessHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := NewMockAuthenticator(ctrl)
	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "subscribed session",
			body: `{"access_code": "LINKY2026A"}`,
			setupMocks: func() {
				mockAuth.EXPECT().Authenticate(gomock.Any(), "LINKY2026A", gomock.Nil()).
					Return(&services.Session{Token: "tok", UserID: userID, Subscribed: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "free trial with email",
			body: `{"access_code": "", "email": "jane@example.com"}`,
			setupMocks: func() {
				mockAuth.EXPECT().Authenticate(gomock.Any(), "", gomock.Any()).
					Return(&services.Session{Token: "tok", UserID: userID, Subscribed: false}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed body",
			body:           `{"access_code": `,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid code",
			body: `{"access_code": "WRONGCODE1"}`,
			setupMocks: func() {
				mockAuth.EXPECT().Authenticate(gomock.Any(), "WRONGCODE1", gomock.Nil()).
					Return(nil, services.ErrInvalidAccessCode)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "used code",
			body: `{"access_code": "LINKY2026A"}`,
			setupMocks: func() {
				mockAuth.EXPECT().Authenticate(gomock.Any(), "LINKY2026A", gomock.Nil()).
					Return(nil, services.ErrAccessCodeUsed)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "internal error",
			body: `{"access_code": "LINKY2026A"}`,
			setupMocks: func() {
				mockAuth.EXPECT().Authenticate(gomock.Any(), "LINKY2026A", gomock.Nil()).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/access", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			NewAccessHandler(mockAuth, false)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp AccessResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "tok", resp.Token)
				assert.Equal(t, userID.String(), resp.UserID)
				assert.False(t, resp.Bypass)
			} else {
				var resp AccessErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Error)
			}
		})
	}
}
