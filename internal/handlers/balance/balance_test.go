package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/DKoroteev/linkmart/internal/domain"
	"github.com/DKoroteev/linkmart/internal/dto"
	"github.com/DKoroteev/linkmart/pkg/auth"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.BalanceResponseDTO
	}{
		{
			name: "Balance returned",
			prepareMock: func() {
				service.EXPECT().
					GetBalance(gomock.Any(), 2).
					Return(&domain.Balance{UserID: 2, Current: 85, Credited: 85, Debited: 0}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Current: 85, Credited: 85, Debited: 0},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetBalance(gomock.Any(), 2).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/balance", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 2))
			w := httptest.NewRecorder()

			handler.GetBalance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetLedgerHandler(t *testing.T) {
	handler, service := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedLen   int
	}{
		{
			name: "Entries returned",
			prepareMock: func() {
				service.EXPECT().
					GetEntries(gomock.Any(), 2).
					Return([]domain.LedgerEntry{
						{ID: 1, UserID: 2, Type: "commission", Amount: 85, Description: "payout for purchase request #7", PurchaseRequestID: 7, CreatedAt: timeNow},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "No entries",
			prepareMock: func() {
				service.EXPECT().GetEntries(gomock.Any(), 2).Return(nil, nil)
			},
			expectedCode:  http.StatusNoContent,
			expectedError: "No entries",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetEntries(gomock.Any(), 2).Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to fetch ledger entries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/ledger", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 2))
			w := httptest.NewRecorder()

			handler.GetLedger(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.LedgerEntryResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}
