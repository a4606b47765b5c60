package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DKoroteev/linkmart/internal/cache"
	"github.com/DKoroteev/linkmart/internal/domain"
	"github.com/DKoroteev/linkmart/internal/pg"
)

//go:generate mockgen -source=settlementservice.go -destination=settlementservice_mock.go -package=settlementservice

type RequestRepo interface {
	FindByID(ctx context.Context, id int) (*domain.PurchaseRequest, error)
	TransitionFromPending(ctx context.Context, id int, newStatus, placedURL string, responseDate time.Time) (bool, error)
}
type LedgerRepo interface {
	InsertEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
}
type SettingsRepo interface {
	Get(ctx context.Context) (*domain.PlatformSettings, error)
}
type Notifier interface {
	Notify(userID int, kind string, payload map[string]any)
}
type Invalidator interface {
	Invalidate(ctx context.Context, keyPrefix string)
}

var (
	ErrRequestNotFound  = errors.New("purchase request not found")
	ErrAlreadyProcessed = errors.New("purchase request already processed")
	ErrSettlement       = errors.New("settlement failed")
	ErrEmptyPlacedURL   = errors.New("placed url is required")
)

var (
	defaultCommissionRate = decimal.NewFromInt(15)
	defaultContentFee     = decimal.NewFromInt(90)
	hundred               = decimal.NewFromInt(100)
)

type Service struct {
	requestRepo  RequestRepo
	ledgerRepo   LedgerRepo
	settingsRepo SettingsRepo
	txManager    pg.TXManager
	notifier     Notifier
	invalidator  Invalidator
}

func New(requestRepo RequestRepo, ledgerRepo LedgerRepo, settingsRepo SettingsRepo, txManager pg.TXManager, notifier Notifier, invalidator Invalidator) *Service {
	return &Service{
		requestRepo:  requestRepo,
		ledgerRepo:   ledgerRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		notifier:     notifier,
		invalidator:  invalidator,
	}
}

// Breakdown is the commission/payout split for one purchase request.
type Breakdown struct {
	AdvertiserDebit    decimal.Decimal
	LinkPrice          decimal.Decimal
	CommissionAmount   decimal.Decimal
	PublisherAmount    decimal.Decimal
	ContentFee         decimal.Decimal
	PlatformNetRevenue decimal.Decimal
}

// ComputeBreakdown splits proposedPrice between platform commission and
// publisher payout. When the platform writes the article, the fixed
// content fee is carved out first and commission is charged on the link
// price only, never on the fee. The fee itself stays with the platform.
// Rounding to 2 decimals happens on the final amounts only.
func ComputeBreakdown(proposedPrice float64, contentOption string, commissionRate, contentFee decimal.Decimal) Breakdown {
	price := decimal.NewFromFloat(proposedPrice)
	rate := commissionRate.Div(hundred)

	fee := decimal.Zero
	if contentOption == domain.ContentPlatform {
		fee = contentFee
	}

	linkPrice := price.Sub(fee)
	commission := linkPrice.Mul(rate)
	publisherAmount := linkPrice.Sub(commission)

	return Breakdown{
		AdvertiserDebit:    price.Round(2),
		LinkPrice:          linkPrice,
		CommissionAmount:   commission.Round(2),
		PublisherAmount:    publisherAmount.Round(2),
		ContentFee:         fee,
		PlatformNetRevenue: commission.Add(fee).Round(2),
	}
}

// AcceptPurchaseRequest settles a pending request: debits the advertiser
// for the full proposed price, credits the publisher with the payout and
// flips the status, all in one transaction.
func (s *Service) AcceptPurchaseRequest(ctx context.Context, requestID int) error {
	return s.accept(ctx, requestID, "")
}

// AcceptPurchaseRequestWithURL additionally records the placement link as
// proof the publisher actually placed it.
func (s *Service) AcceptPurchaseRequestWithURL(ctx context.Context, requestID int, placedURL string) error {
	if placedURL == "" {
		return ErrEmptyPlacedURL
	}
	return s.accept(ctx, requestID, placedURL)
}

func (s *Service) accept(ctx context.Context, requestID int, placedURL string) error {
	req, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		zap.L().Error("can't load purchase request", zap.Int("requestID", requestID), zap.Error(err))
		return err
	}
	if req == nil {
		return ErrRequestNotFound
	}
	if req.Status != domain.PendingStatus {
		return ErrAlreadyProcessed
	}

	rate, fee, err := s.commissionTerms(ctx)
	if err != nil {
		return err
	}
	breakdown := ComputeBreakdown(req.ProposedPrice, req.ContentOption, rate, fee)

	now := time.Now()
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		// The conditional update is rechecked inside the transaction, so
		// a concurrent acceptance that won the race makes this one fail
		// before any ledger entry is written.
		ok, err := s.requestRepo.TransitionFromPending(ctx, requestID, domain.AcceptedStatus, placedURL, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyProcessed
		}

		debit := &domain.LedgerEntry{
			UserID:            req.AdvertiserID,
			Type:              domain.EntryTypePurchase,
			Amount:            breakdown.AdvertiserDebit.InexactFloat64(),
			Description:       fmt.Sprintf("payment for link placement, purchase request #%d", requestID),
			PurchaseRequestID: requestID,
			CreatedAt:         now,
		}
		if _, err := s.ledgerRepo.InsertEntry(ctx, debit); err != nil {
			return fmt.Errorf("%w: debit entry: %w", ErrSettlement, err)
		}

		credit := &domain.LedgerEntry{
			UserID:            req.PublisherID,
			Type:              domain.EntryTypeCommission,
			Amount:            breakdown.PublisherAmount.InexactFloat64(),
			Description:       fmt.Sprintf("payout for purchase request #%d", requestID),
			PurchaseRequestID: requestID,
			CreatedAt:         now,
		}
		if _, err := s.ledgerRepo.InsertEntry(ctx, credit); err != nil {
			return fmt.Errorf("%w: credit entry: %w", ErrSettlement, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyProcessed) {
			zap.L().Error("settlement aborted, request stays pending",
				zap.Int("requestID", requestID),
				zap.Float64("proposedPrice", req.ProposedPrice),
				zap.Error(err),
			)
		}
		return err
	}

	zap.L().Info("purchase request settled",
		zap.Int("requestID", requestID),
		zap.String("publisherAmount", breakdown.PublisherAmount.StringFixed(2)),
		zap.String("commission", breakdown.CommissionAmount.StringFixed(2)),
		zap.String("platformNetRevenue", breakdown.PlatformNetRevenue.StringFixed(2)),
	)

	s.notifier.Notify(req.AdvertiserID, "request_accepted", map[string]any{
		"request_id": requestID,
		"amount":     breakdown.AdvertiserDebit.InexactFloat64(),
		"placed_url": placedURL,
	})
	s.invalidator.Invalidate(ctx, cache.PurchaseRequestsKeyPrefix)

	return nil
}

func (s *Service) commissionTerms(ctx context.Context) (rate, fee decimal.Decimal, err error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		zap.L().Error("can't read platform settings", zap.Error(err))
		return decimal.Zero, decimal.Zero, err
	}
	if settings == nil {
		return defaultCommissionRate, defaultContentFee, nil
	}
	// An explicit zero is honored; defaults apply only when no settings
	// row exists at all.
	return decimal.NewFromFloat(settings.CommissionRate), decimal.NewFromFloat(settings.PlatformContentFee), nil
}
