package notificationservice

import (
	"context"
	"errors"

	"github.com/DKoroteev/linkmart/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notificationservice.go -destination=notificationservice_mock.go -package=notificationservice

type Repo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int) (bool, error)
}

var ErrNotificationNotFound = errors.New("notification not found")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetNotifications(ctx context.Context, userID int) ([]domain.Notification, error) {
	notifications, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch notifications", zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID int) error {
	ok, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		zap.L().Error("failed to mark notification read", zap.Error(err))
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}
