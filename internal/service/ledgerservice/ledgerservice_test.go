package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/DKoroteev/linkmart/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestGetBalance(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name            string
		userID          int
		prepareMock     func()
		expectedBalance *domain.Balance
		expectedError   error
	}{
		{
			name:   "Balance derived from ledger entries",
			userID: 2,
			prepareMock: func() {
				repo.EXPECT().GetUserBalance(gomock.Any(), 2).Return(&domain.Balance{UserID: 2, Current: 85, Credited: 85, Debited: 0}, nil)
			},
			expectedBalance: &domain.Balance{UserID: 2, Current: 85, Credited: 85, Debited: 0},
		},
		{
			name:   "Repo failure",
			userID: 2,
			prepareMock: func() {
				repo.EXPECT().GetUserBalance(gomock.Any(), 2).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.GetBalance(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestGetEntries(t *testing.T) {
	service, repo := NewMock(t)

	entries := []domain.LedgerEntry{
		{ID: 1, UserID: 1, Type: domain.EntryTypePurchase, Amount: 190, PurchaseRequestID: 7},
		{ID: 2, UserID: 2, Type: domain.EntryTypeCommission, Amount: 85, PurchaseRequestID: 7},
	}

	repo.EXPECT().GetEntriesByUserID(gomock.Any(), 1).Return(entries, nil)
	got, err := service.GetEntries(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, entries, got)

	repo.EXPECT().GetEntriesByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
	_, err = service.GetEntries(context.Background(), 1)
	assert.Error(t, err)
}
