package settlementservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/DKoroteev/linkmart/internal/cache"
	"github.com/DKoroteev/linkmart/internal/domain"
	"github.com/DKoroteev/linkmart/internal/pg"
)

type mocks struct {
	requestRepo  *MockRequestRepo
	ledgerRepo   *MockLedgerRepo
	settingsRepo *MockSettingsRepo
	txManager    *pg.MockTXManager
	notifier     *MockNotifier
	invalidator  *MockInvalidator
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		requestRepo:  NewMockRequestRepo(ctrl),
		ledgerRepo:   NewMockLedgerRepo(ctrl),
		settingsRepo: NewMockSettingsRepo(ctrl),
		txManager:    pg.NewMockTXManager(ctrl),
		notifier:     NewMockNotifier(ctrl),
		invalidator:  NewMockInvalidator(ctrl),
	}
	service := New(m.requestRepo, m.ledgerRepo, m.settingsRepo, m.txManager, m.notifier, m.invalidator)
	defer ctrl.Finish()
	return service, m
}

func (m *mocks) expectTx() {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestComputeBreakdown(t *testing.T) {
	rate15 := decimal.NewFromInt(15)
	fee90 := decimal.NewFromInt(90)

	tests := []struct {
		name               string
		proposedPrice      float64
		contentOption      string
		commissionRate     decimal.Decimal
		contentFee         decimal.Decimal
		commission         string
		publisherAmount    string
		platformNetRevenue string
	}{
		{
			name:               "platform content carves out the fee before commission",
			proposedPrice:      190,
			contentOption:      domain.ContentPlatform,
			commissionRate:     rate15,
			contentFee:         fee90,
			commission:         "15.00",
			publisherAmount:    "85.00",
			platformNetRevenue: "105.00",
		},
		{
			name:               "custom content charges commission on the full price",
			proposedPrice:      100,
			contentOption:      domain.ContentCustom,
			commissionRate:     rate15,
			contentFee:         fee90,
			commission:         "15.00",
			publisherAmount:    "85.00",
			platformNetRevenue: "15.00",
		},
		{
			name:               "existing content works like custom",
			proposedPrice:      200,
			contentOption:      domain.ContentExisting,
			commissionRate:     rate15,
			contentFee:         fee90,
			commission:         "30.00",
			publisherAmount:    "170.00",
			platformNetRevenue: "30.00",
		},
		{
			name:               "price equal to the fee leaves nothing for the publisher",
			proposedPrice:      90,
			contentOption:      domain.ContentPlatform,
			commissionRate:     rate15,
			contentFee:         fee90,
			commission:         "0.00",
			publisherAmount:    "0.00",
			platformNetRevenue: "90.00",
		},
		{
			name:               "zero commission rate pays the whole link price out",
			proposedPrice:      190,
			contentOption:      domain.ContentPlatform,
			commissionRate:     decimal.Zero,
			contentFee:         fee90,
			commission:         "0.00",
			publisherAmount:    "100.00",
			platformNetRevenue: "90.00",
		},
		{
			name:               "fractional price rounds each amount to cents",
			proposedPrice:      99.99,
			contentOption:      domain.ContentCustom,
			commissionRate:     rate15,
			contentFee:         fee90,
			commission:         "15.00",
			publisherAmount:    "84.99",
			platformNetRevenue: "15.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeBreakdown(tt.proposedPrice, tt.contentOption, tt.commissionRate, tt.contentFee)
			assert.Equal(t, tt.commission, b.CommissionAmount.StringFixed(2))
			assert.Equal(t, tt.publisherAmount, b.PublisherAmount.StringFixed(2))
			assert.Equal(t, tt.platformNetRevenue, b.PlatformNetRevenue.StringFixed(2))
		})
	}
}

func TestComputeBreakdownIdentity(t *testing.T) {
	// Without a content fee the split is exact: commission plus payout
	// always reassembles the proposed price.
	for _, price := range []float64{1, 50, 100, 333.33, 1999.99} {
		b := ComputeBreakdown(price, domain.ContentCustom, decimal.NewFromInt(15), decimal.NewFromInt(90))
		sum := b.CommissionAmount.Add(b.PublisherAmount)
		assert.True(t, sum.Sub(decimal.NewFromFloat(price)).Abs().LessThanOrEqual(decimal.NewFromFloat(0.01)),
			"commission+payout drifted from price %v: got %s", price, sum)
	}
}

func TestAcceptPurchaseRequest(t *testing.T) {
	pendingReq := func() *domain.PurchaseRequest {
		return &domain.PurchaseRequest{
			ID:            7,
			AdvertiserID:  1,
			PublisherID:   2,
			ProposedPrice: 190,
			ContentOption: domain.ContentPlatform,
			Status:        domain.PendingStatus,
		}
	}

	tests := []struct {
		name          string
		requestID     int
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:      "settles a pending platform-content request with default terms",
			requestID: 7,
			prepareMock: func(m *mocks) {
				m.requestRepo.EXPECT().FindByID(gomock.Any(), 7).Return(pendingReq(), nil)
				m.settingsRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)
				m.expectTx()
				m.requestRepo.EXPECT().TransitionFromPending(gomock.Any(), 7, domain.AcceptedStatus, "", gomock.Any()).Return(true, nil)
				m.ledgerRepo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, 1, entry.UserID)
						assert.Equal(t, domain.EntryTypePurchase, entry.Type)
						assert.InDelta(t, 190.0, entry.Amount, 0.001)
						return entry, nil
					},
				)
				m.ledgerRepo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, 2, entry.UserID)
						assert.Equal(t, domain.EntryTypeCommission, entry.Type)
						assert.InDelta(t, 85.0, entry.Amount, 0.001)
						return entry, nil
					},
				)
				m.notifier.EXPECT().Notify(1, "request_accepted", gomock.Any())
				m.invalidator.EXPECT().Invalidate(gomock.Any(), cache.PurchaseRequestsKeyPrefix)
			},
			expectedError: nil,
		},
		{
			name:      "uses configured terms over the defaults",
			requestID: 7,
			prepareMock: func(m *mocks) {
				m.requestRepo.EXPECT().FindByID(gomock.Any(), 7).Return(pendingReq(), nil)
				m.settingsRepo.EXPECT().Get(gomock.Any()).Return(&domain.PlatformSettings{CommissionRate: 20, PlatformContentFee: 40}, nil)
				m.expectTx()
				m.requestRepo.EXPECT().TransitionFromPending(gomock.Any(), 7, domain.AcceptedStatus, "", gomock.Any()).Return(true, nil)
				m.ledgerRepo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.InDelta(t, 190.0, entry.Amount, 0.001)
						return entry, nil
					},
				)
				m.ledgerRepo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						// (190-40) minus 20% commission
						assert.InDelta(t, 120.0, entry.Amount, 0.001)
						return entry, nil
					},
				)
				m.notifier.EXPECT().Notify(1, "request_accepted", gomock.Any())
				m.invalidator.EXPECT().Invalidate(gomock.Any(), cache.PurchaseRequestsKeyPrefix)
			},
			expectedError: nil,
		},
		{
			name:      "honors an explicit zero commission rate",
			requestID: 7,
			prepareMock: func(m *mocks) {
				m.requestRepo.EXPECT().FindByID(gomock.Any(), 7).Return(pendingReq(), nil)
				m.settingsRepo.EXPECT().Get(gomock.Any()).Return(&domain.PlatformSettings{CommissionRate: 0, PlatformContentFee: 90}, nil)
				m.expectTx()
				m.requestRepo.EXPECT().TransitionFromPending(gomock.Any(), 7, domain.AcceptedStatus, "", gomock.Any()).Return(true, nil)
				m.ledgerRepo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).Return(&domain.LedgerEntry{}, nil)
				m.ledgerRepo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.InDelta(t, 100.0, entry.Amount, 0.001)
						return entry, nil
					},
				)
				m.notifier.EXPECT().Notify(1, "request_accepted", gomock.Any())
				m.invalidator.EXPECT().Invalidate(gomock.Any(), cache.PurchaseRequestsKeyPrefix)
			},
			expectedError: nil,
		},
		{
			name:      "unknown request",
			requestID: 99,
			prepareMock: func(m *mocks) {
				m.requestRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrRequestNotFound,
		},
		{
			name:      "already accepted request is rejected before any write",
			requestID: 7,
			prepareMock: func(m *mocks) {
				req := pendingReq()
				req.Status = domain.AcceptedStatus
				m.requestRepo.EXPECT().FindByID(gomock.Any(), 7).Return(req, nil)
			},
			expectedError: ErrAlreadyProcessed,
		},
		{
			name:      "concurrent acceptance loses the conditional update",
			requestID: 7,
			prepareMock: func(m *mocks) {
				m.requestRepo.EXPECT().FindByID(gomock.Any(), 7).Return(pendingReq(), nil)
				m.settingsRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)
				m.expectTx()
				m.requestRepo.EXPECT().TransitionFromPending(gomock.Any(), 7, domain.AcceptedStatus, "", gomock.Any()).Return(false, nil)
			},
			expectedError: ErrAlreadyProcessed,
		},
		{
			name:      "cannot load request",
			requestID: 7,
			prepareMock: func(m *mocks) {
				m.requestRepo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
		{
			name:      "cannot read platform settings",
			requestID: 7,
			prepareMock: func(m *mocks) {
				m.requestRepo.EXPECT().FindByID(gomock.Any(), 7).Return(pendingReq(), nil)
				m.settingsRepo.EXPECT().Get(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
		{
			name:      "debit insert failure rolls the settlement back",
			requestID: 7,
			prepareMock: func(m *mocks) {
				m.requestRepo.EXPECT().FindByID(gomock.Any(), 7).Return(pendingReq(), nil)
				m.settingsRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)
				m.expectTx()
				m.requestRepo.EXPECT().TransitionFromPending(gomock.Any(), 7, domain.AcceptedStatus, "", gomock.Any()).Return(true, nil)
				m.ledgerRepo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed"))
			},
			expectedError: ErrSettlement,
		},
		{
			name:      "credit insert failure rolls the settlement back",
			requestID: 7,
			prepareMock: func(m *mocks) {
				m.requestRepo.EXPECT().FindByID(gomock.Any(), 7).Return(pendingReq(), nil)
				m.settingsRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)
				m.expectTx()
				m.requestRepo.EXPECT().TransitionFromPending(gomock.Any(), 7, domain.AcceptedStatus, "", gomock.Any()).Return(true, nil)
				m.ledgerRepo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).Return(&domain.LedgerEntry{}, nil)
				m.ledgerRepo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed"))
			},
			expectedError: ErrSettlement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			err := service.AcceptPurchaseRequest(context.Background(), tt.requestID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAcceptPurchaseRequestWithURL(t *testing.T) {
	tests := []struct {
		name          string
		requestID     int
		placedURL     string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:          "empty placed url is refused without touching the repo",
			requestID:     7,
			placedURL:     "",
			prepareMock:   nil,
			expectedError: ErrEmptyPlacedURL,
		},
		{
			name:      "placed url is recorded on the transition",
			requestID: 7,
			placedURL: "https://blog.example.com/review",
			prepareMock: func(m *mocks) {
				m.requestRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.PurchaseRequest{
					ID:            7,
					AdvertiserID:  1,
					PublisherID:   2,
					ProposedPrice: 100,
					ContentOption: domain.ContentCustom,
					Status:        domain.PendingStatus,
				}, nil)
				m.settingsRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)
				m.expectTx()
				m.requestRepo.EXPECT().TransitionFromPending(gomock.Any(), 7, domain.AcceptedStatus, "https://blog.example.com/review", gomock.Any()).Return(true, nil)
				m.ledgerRepo.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).Return(&domain.LedgerEntry{}, nil).Times(2)
				m.notifier.EXPECT().Notify(1, "request_accepted", gomock.Any())
				m.invalidator.EXPECT().Invalidate(gomock.Any(), cache.PurchaseRequestsKeyPrefix)
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			err := service.AcceptPurchaseRequestWithURL(context.Background(), tt.requestID, tt.placedURL)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
