package requestservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DKoroteev/linkmart/internal/cache"
	"github.com/DKoroteev/linkmart/internal/domain"
)

//go:generate mockgen -source=requestservice.go -destination=requestservice_mock.go -package=requestservice

type Repo interface {
	Save(ctx context.Context, req *domain.PurchaseRequest) error
	FindByID(ctx context.Context, id int) (*domain.PurchaseRequest, error)
	FindByAdvertiserID(ctx context.Context, advertiserID int) ([]domain.PurchaseRequest, error)
	FindByPublisherID(ctx context.Context, publisherID int) ([]domain.PurchaseRequest, error)
	TransitionFromPending(ctx context.Context, id int, newStatus, placedURL string, responseDate time.Time) (bool, error)
}
type WebsiteRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Website, error)
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
	ErrRequestNotFound      = errors.New("purchase request not found")
	ErrAlreadyProcessed     = errors.New("purchase request already processed")
	ErrWebsiteNotFound      = errors.New("website not found")
	ErrNotRequestOwner      = errors.New("purchase request belongs to another user")
	ErrInvalidContentOption = errors.New("unknown content option")
	ErrPriceBelowContentFee = errors.New("proposed price does not cover the platform content fee")
	ErrNegativePrice        = errors.New("proposed price must not be negative")
)

var defaultContentFee = decimal.NewFromInt(90)

type Service struct {
	repo         Repo
	websiteRepo  WebsiteRepo
	settingsRepo SettingsRepo
	notifier     Notifier
	invalidator  Invalidator
}

func New(repo Repo, websiteRepo WebsiteRepo, settingsRepo SettingsRepo, notifier Notifier, invalidator Invalidator) *Service {
	return &Service{
		repo:         repo,
		websiteRepo:  websiteRepo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
		invalidator:  invalidator,
	}
}

// CreateRequest validates the advertiser's offer and stores it as
// pending. The platform content fee is embedded in the proposed price,
// so a platform-authored request must at least cover the fee.
func (s *Service) CreateRequest(ctx context.Context, advertiserID int, req *domain.PurchaseRequest) (*domain.PurchaseRequest, error) {
	switch req.ContentOption {
	case domain.ContentPlatform, domain.ContentCustom, domain.ContentExisting, "":
	default:
		return nil, ErrInvalidContentOption
	}
	if req.ContentOption == "" {
		req.ContentOption = domain.ContentExisting
	}
	if req.ProposedPrice < 0 {
		return nil, ErrNegativePrice
	}

	if req.ContentOption == domain.ContentPlatform {
		fee, err := s.contentFee(ctx)
		if err != nil {
			return nil, err
		}
		if decimal.NewFromFloat(req.ProposedPrice).LessThan(fee) {
			return nil, ErrPriceBelowContentFee
		}
	}

	website, err := s.websiteRepo.FindByID(ctx, req.WebsiteID)
	if err != nil {
		zap.L().Error("can't load website", zap.Int("websiteID", req.WebsiteID), zap.Error(err))
		return nil, err
	}
	if website == nil {
		return nil, ErrWebsiteNotFound
	}

	req.AdvertiserID = advertiserID
	req.PublisherID = website.PublisherID
	req.Status = domain.PendingStatus
	req.CreatedAt = time.Now()

	if err := s.repo.Save(ctx, req); err != nil {
		zap.L().Error("can't save purchase request", zap.Error(err))
		return nil, err
	}

	s.notifier.Notify(website.PublisherID, "request_created", map[string]any{
		"request_id": req.ID,
		"website_id": website.ID,
		"price":      req.ProposedPrice,
	})
	s.invalidator.Invalidate(ctx, cache.PurchaseRequestsKeyPrefix)

	return req, nil
}

func (s *Service) GetRequest(ctx context.Context, id int) (*domain.PurchaseRequest, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't get purchase request", zap.Int("requestID", id), zap.Error(err))
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	return req, nil
}

// GetRequests returns the user's requests: sent offers for an
// advertiser, incoming offers for a publisher.
func (s *Service) GetRequests(ctx context.Context, userID int, role string) ([]domain.PurchaseRequest, error) {
	var (
		requests []domain.PurchaseRequest
		err      error
	)
	if role == domain.RolePublisher {
		requests, err = s.repo.FindByPublisherID(ctx, userID)
	} else {
		requests, err = s.repo.FindByAdvertiserID(ctx, userID)
	}
	if err != nil {
		zap.L().Error("can't get purchase requests", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// RejectRequest lets the publisher decline a pending offer. No money
// moves; the transition is conditional the same way acceptance is.
func (s *Service) RejectRequest(ctx context.Context, requestID, publisherID int) error {
	return s.transition(ctx, requestID, publisherID, false, domain.RejectedStatus, "request_rejected")
}

// CancelRequest lets the advertiser withdraw a pending offer.
func (s *Service) CancelRequest(ctx context.Context, requestID, advertiserID int) error {
	return s.transition(ctx, requestID, advertiserID, true, domain.CancelledStatus, "request_cancelled")
}

func (s *Service) transition(ctx context.Context, requestID, userID int, byAdvertiser bool, newStatus, kind string) error {
	req, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		zap.L().Error("can't get purchase request", zap.Int("requestID", requestID), zap.Error(err))
		return err
	}
	if req == nil {
		return ErrRequestNotFound
	}
	owner := req.PublisherID
	counterparty := req.AdvertiserID
	if byAdvertiser {
		owner = req.AdvertiserID
		counterparty = req.PublisherID
	}
	if owner != userID {
		return ErrNotRequestOwner
	}
	if req.Status != domain.PendingStatus {
		return ErrAlreadyProcessed
	}

	ok, err := s.repo.TransitionFromPending(ctx, requestID, newStatus, "", time.Now())
	if err != nil {
		zap.L().Error("can't transition purchase request", zap.Int("requestID", requestID), zap.Error(err))
		return err
	}
	if !ok {
		return ErrAlreadyProcessed
	}

	s.notifier.Notify(counterparty, kind, map[string]any{"request_id": requestID})
	s.invalidator.Invalidate(ctx, cache.PurchaseRequestsKeyPrefix)

	return nil
}

func (s *Service) contentFee(ctx context.Context) (decimal.Decimal, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		zap.L().Error("can't read platform settings", zap.Error(err))
		return decimal.Zero, err
	}
	if settings == nil {
		return defaultContentFee, nil
	}
	return decimal.NewFromFloat(settings.PlatformContentFee), nil
}
