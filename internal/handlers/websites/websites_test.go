package websites

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/DKoroteev/linkmart/internal/domain"
	"github.com/DKoroteev/linkmart/internal/dto"
	websiteservice "github.com/DKoroteev/linkmart/internal/service/websiteservice"
	"github.com/DKoroteev/linkmart/pkg/auth"
)

func NewMock(t *testing.T) (*WebsiteHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Website listed",
			body: `{"domain":"blog.example.com","category":"technology","monthly_traffic":120000,"price":100}`,
			prepareMock: func() {
				service.EXPECT().
					CreateWebsite(gomock.Any(), 2, gomock.Any()).
					Return(&domain.Website{ID: 42, PublisherID: 2, Domain: "blog.example.com", Category: "technology", MonthlyTraffic: 120000, Price: 100}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Empty domain",
			body: `{"price":100}`,
			prepareMock: func() {
				service.EXPECT().
					CreateWebsite(gomock.Any(), 2, gomock.Any()).
					Return(nil, websiteservice.ErrEmptyDomain)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "website domain is required",
		},
		{
			name: "Internal server error",
			body: `{"domain":"blog.example.com","price":100}`,
			prepareMock: func() {
				service.EXPECT().
					CreateWebsite(gomock.Any(), 2, gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/websites", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 2))
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedLen   int
	}{
		{
			name: "Websites returned",
			prepareMock: func() {
				service.EXPECT().
					GetWebsites(gomock.Any()).
					Return([]domain.Website{{ID: 42, Domain: "blog.example.com"}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "No websites",
			prepareMock: func() {
				service.EXPECT().GetWebsites(gomock.Any()).Return(nil, nil)
			},
			expectedCode:  http.StatusNoContent,
			expectedError: "No websites listed",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetWebsites(gomock.Any()).Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/websites", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.List(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.WebsiteResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}
