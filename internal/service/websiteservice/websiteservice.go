package websiteservice

import (
	"context"
	"errors"
	"time"

	"github.com/DKoroteev/linkmart/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=websiteservice.go -destination=websiteservice_mock.go -package=websiteservice

type Repo interface {
	Save(ctx context.Context, website *domain.Website) error
	FindAll(ctx context.Context) ([]domain.Website, error)
}

var (
	ErrEmptyDomain   = errors.New("website domain is required")
	ErrNegativePrice = errors.New("website price must not be negative")
)

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateWebsite(ctx context.Context, publisherID int, website *domain.Website) (*domain.Website, error) {
	if website.Domain == "" {
		return nil, ErrEmptyDomain
	}
	if website.Price < 0 {
		return nil, ErrNegativePrice
	}

	website.PublisherID = publisherID
	website.CreatedAt = time.Now()

	if err := s.repo.Save(ctx, website); err != nil {
		zap.L().Error("can't save website", zap.Error(err))
		return nil, err
	}
	return website, nil
}

func (s *Service) GetWebsites(ctx context.Context) ([]domain.Website, error) {
	websites, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get websites", zap.Error(err))
		return nil, err
	}
	return websites, nil
}
