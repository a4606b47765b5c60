package ledgerservice

import (
	"context"

	"github.com/DKoroteev/linkmart/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledgerservice.go -destination=ledgerservice_mock.go -package=ledgerservice

type Repo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	GetEntriesByUserID(ctx context.Context, userID int) ([]domain.LedgerEntry, error)
}

type Service struct {
	ledgerRepo Repo
}

func New(ledgerRepo Repo) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.ledgerRepo.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) GetEntries(ctx context.Context, userID int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.GetEntriesByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
