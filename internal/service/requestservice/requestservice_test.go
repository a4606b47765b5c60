package requestservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/DKoroteev/linkmart/internal/cache"
	"github.com/DKoroteev/linkmart/internal/domain"
)

type mocks struct {
	repo         *MockRepo
	websiteRepo  *MockWebsiteRepo
	settingsRepo *MockSettingsRepo
	notifier     *MockNotifier
	invalidator  *MockInvalidator
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:         NewMockRepo(ctrl),
		websiteRepo:  NewMockWebsiteRepo(ctrl),
		settingsRepo: NewMockSettingsRepo(ctrl),
		notifier:     NewMockNotifier(ctrl),
		invalidator:  NewMockInvalidator(ctrl),
	}
	service := New(m.repo, m.websiteRepo, m.settingsRepo, m.notifier, m.invalidator)
	defer ctrl.Finish()
	return service, m
}

func TestCreateRequest(t *testing.T) {
	website := &domain.Website{ID: 42, PublisherID: 2}

	tests := []struct {
		name          string
		req           *domain.PurchaseRequest
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "creates a pending request and notifies the publisher",
			req:  &domain.PurchaseRequest{WebsiteID: 42, ProposedPrice: 100, ContentOption: domain.ContentCustom},
			prepareMock: func(m *mocks) {
				m.websiteRepo.EXPECT().FindByID(gomock.Any(), 42).Return(website, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req *domain.PurchaseRequest) error {
						assert.Equal(t, 1, req.AdvertiserID)
						assert.Equal(t, 2, req.PublisherID)
						assert.Equal(t, domain.PendingStatus, req.Status)
						return nil
					},
				)
				m.notifier.EXPECT().Notify(2, "request_created", gomock.Any())
				m.invalidator.EXPECT().Invalidate(gomock.Any(), cache.PurchaseRequestsKeyPrefix)
			},
		},
		{
			name: "empty content option defaults to existing",
			req:  &domain.PurchaseRequest{WebsiteID: 42, ProposedPrice: 50},
			prepareMock: func(m *mocks) {
				m.websiteRepo.EXPECT().FindByID(gomock.Any(), 42).Return(website, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req *domain.PurchaseRequest) error {
						assert.Equal(t, domain.ContentExisting, req.ContentOption)
						return nil
					},
				)
				m.notifier.EXPECT().Notify(2, "request_created", gomock.Any())
				m.invalidator.EXPECT().Invalidate(gomock.Any(), cache.PurchaseRequestsKeyPrefix)
			},
		},
		{
			name: "platform content below the configured fee",
			req:  &domain.PurchaseRequest{WebsiteID: 42, ProposedPrice: 80, ContentOption: domain.ContentPlatform},
			prepareMock: func(m *mocks) {
				m.settingsRepo.EXPECT().Get(gomock.Any()).Return(&domain.PlatformSettings{PlatformContentFee: 90}, nil)
			},
			expectedError: ErrPriceBelowContentFee,
		},
		{
			name: "platform content below the default fee when settings are absent",
			req:  &domain.PurchaseRequest{WebsiteID: 42, ProposedPrice: 89.99, ContentOption: domain.ContentPlatform},
			prepareMock: func(m *mocks) {
				m.settingsRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)
			},
			expectedError: ErrPriceBelowContentFee,
		},
		{
			name: "platform content exactly at the fee is allowed",
			req:  &domain.PurchaseRequest{WebsiteID: 42, ProposedPrice: 90, ContentOption: domain.ContentPlatform},
			prepareMock: func(m *mocks) {
				m.settingsRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)
				m.websiteRepo.EXPECT().FindByID(gomock.Any(), 42).Return(website, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.notifier.EXPECT().Notify(2, "request_created", gomock.Any())
				m.invalidator.EXPECT().Invalidate(gomock.Any(), cache.PurchaseRequestsKeyPrefix)
			},
		},
		{
			name:          "unknown content option",
			req:           &domain.PurchaseRequest{WebsiteID: 42, ProposedPrice: 100, ContentOption: "sponsored"},
			expectedError: ErrInvalidContentOption,
		},
		{
			name:          "negative price",
			req:           &domain.PurchaseRequest{WebsiteID: 42, ProposedPrice: -1, ContentOption: domain.ContentCustom},
			expectedError: ErrNegativePrice,
		},
		{
			name: "website not found",
			req:  &domain.PurchaseRequest{WebsiteID: 99, ProposedPrice: 100, ContentOption: domain.ContentCustom},
			prepareMock: func(m *mocks) {
				m.websiteRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrWebsiteNotFound,
		},
		{
			name: "save failure",
			req:  &domain.PurchaseRequest{WebsiteID: 42, ProposedPrice: 100, ContentOption: domain.ContentCustom},
			prepareMock: func(m *mocks) {
				m.websiteRepo.EXPECT().FindByID(gomock.Any(), 42).Return(website, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			created, err := service.CreateRequest(context.Background(), 1, tt.req)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
			}
		})
	}
}

func TestGetRequests(t *testing.T) {
	tests := []struct {
		name        string
		userID      int
		role        string
		prepareMock func(m *mocks)
		expected    []domain.PurchaseRequest
	}{
		{
			name:   "advertiser sees sent offers",
			userID: 1,
			role:   domain.RoleAdvertiser,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByAdvertiserID(gomock.Any(), 1).Return([]domain.PurchaseRequest{{ID: 7}}, nil)
			},
			expected: []domain.PurchaseRequest{{ID: 7}},
		},
		{
			name:   "publisher sees incoming offers",
			userID: 2,
			role:   domain.RolePublisher,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByPublisherID(gomock.Any(), 2).Return([]domain.PurchaseRequest{{ID: 8}}, nil)
			},
			expected: []domain.PurchaseRequest{{ID: 8}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			requests, err := service.GetRequests(context.Background(), tt.userID, tt.role)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, requests)
		})
	}
}

func TestRejectRequest(t *testing.T) {
	pendingReq := &domain.PurchaseRequest{ID: 7, AdvertiserID: 1, PublisherID: 2, Status: domain.PendingStatus}

	tests := []struct {
		name          string
		publisherID   int
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:        "publisher rejects a pending offer",
			publisherID: 2,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), 7).Return(pendingReq, nil)
				m.repo.EXPECT().TransitionFromPending(gomock.Any(), 7, domain.RejectedStatus, "", gomock.Any()).Return(true, nil)
				m.notifier.EXPECT().Notify(1, "request_rejected", gomock.Any())
				m.invalidator.EXPECT().Invalidate(gomock.Any(), cache.PurchaseRequestsKeyPrefix)
			},
		},
		{
			name:        "another publisher cannot reject it",
			publisherID: 3,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), 7).Return(pendingReq, nil)
			},
			expectedError: ErrNotRequestOwner,
		},
		{
			name:        "already processed offer",
			publisherID: 2,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.PurchaseRequest{ID: 7, PublisherID: 2, Status: domain.AcceptedStatus}, nil)
			},
			expectedError: ErrAlreadyProcessed,
		},
		{
			name:        "lost the race to a concurrent acceptance",
			publisherID: 2,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), 7).Return(pendingReq, nil)
				m.repo.EXPECT().TransitionFromPending(gomock.Any(), 7, domain.RejectedStatus, "", gomock.Any()).Return(false, nil)
			},
			expectedError: ErrAlreadyProcessed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.RejectRequest(context.Background(), 7, tt.publisherID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCancelRequest(t *testing.T) {
	tests := []struct {
		name          string
		advertiserID  int
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:         "advertiser withdraws a pending offer",
			advertiserID: 1,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.PurchaseRequest{ID: 7, AdvertiserID: 1, PublisherID: 2, Status: domain.PendingStatus}, nil)
				m.repo.EXPECT().TransitionFromPending(gomock.Any(), 7, domain.CancelledStatus, "", gomock.Any()).Return(true, nil)
				m.notifier.EXPECT().Notify(2, "request_cancelled", gomock.Any())
				m.invalidator.EXPECT().Invalidate(gomock.Any(), cache.PurchaseRequestsKeyPrefix)
			},
		},
		{
			name:         "unknown request",
			advertiserID: 1,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: ErrRequestNotFound,
		},
		{
			name:         "publisher id is not the owner here",
			advertiserID: 2,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.PurchaseRequest{ID: 7, AdvertiserID: 1, PublisherID: 2, Status: domain.PendingStatus}, nil)
			},
			expectedError: ErrNotRequestOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.CancelRequest(context.Background(), 7, tt.advertiserID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetRequest(t *testing.T) {
	service, m := NewMock(t)

	m.repo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.PurchaseRequest{ID: 7}, nil)
	req, err := service.GetRequest(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, req.ID)

	m.repo.EXPECT().FindByID(gomock.Any(), 8).Return(nil, nil)
	_, err = service.GetRequest(context.Background(), 8)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}
