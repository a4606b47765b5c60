package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/DKoroteev/linkmart/internal/config"
	"github.com/DKoroteev/linkmart/internal/domain"
	"github.com/DKoroteev/linkmart/pkg/clients"
)

//go:generate mockgen -source=notify.go -destination=notify_mock.go -package=notify

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	sendTimeout   = time.Second * 30
)

type NotificationRepo interface {
	Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
}

// emailMessage is the template-email API payload. The provider renders
// the template named by Kind with the given params.
type emailMessage struct {
	MessageID string         `json:"message_id"`
	UserID    int            `json:"user_id"`
	Template  string         `json:"template"`
	Params    map[string]any `json:"params,omitempty"`
}

// Service delivers notifications best-effort: an in-app row plus a
// template email, both off the request path. Nothing here ever
// propagates an error back to the caller.
type Service struct {
	url              string
	apiKey           string
	notificationRepo NotificationRepo
	client           clients.HTTPClientI
	workerPool       WorkerPoolI
}

func New(cfg *config.Config, notificationRepo NotificationRepo, client clients.HTTPClientI) *Service {
	return &Service{
		url:              cfg.EmailAddress,
		apiKey:           cfg.EmailAPIKey,
		notificationRepo: notificationRepo,
		client:           client,
		workerPool:       NewWorkerPool(10),
	}
}

// Notify enqueues delivery and returns immediately. A full queue drops
// the notification rather than blocking the settlement path.
func (s *Service) Notify(userID int, kind string, payload map[string]any) {
	enqueueCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := s.workerPool.AddTask(enqueueCtx, func() error {
		s.deliver(userID, kind, payload)
		return nil
	})
	if err != nil {
		zap.L().Warn("notification dropped, queue full",
			zap.Int("userID", userID), zap.String("kind", kind), zap.Error(err))
	}
}

func (s *Service) deliver(userID int, kind string, payload map[string]any) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	raw, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("can't marshal notification payload", zap.Error(err))
		return
	}

	notification := &domain.Notification{
		UserID:    userID,
		Kind:      kind,
		Payload:   string(raw),
		CreatedAt: time.Now(),
	}

	// The in-app row and the email are independent channels, a failure
	// of one must not suppress the other.
	var g errgroup.Group
	g.Go(func() error {
		if _, err := s.notificationRepo.Create(ctx, notification); err != nil {
			zap.L().Warn("can't store in-app notification",
				zap.Int("userID", userID), zap.String("kind", kind), zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		if err := s.sendEmail(ctx, userID, kind, payload); err != nil {
			zap.L().Warn("can't send email notification",
				zap.Int("userID", userID), zap.String("kind", kind), zap.Error(err))
		}
		return nil
	})
	_ = g.Wait()
}

func (s *Service) sendEmail(ctx context.Context, userID int, kind string, payload map[string]any) error {
	body, err := json.Marshal(emailMessage{
		MessageID: uuid.NewString(),
		UserID:    userID,
		Template:  kind,
		Params:    payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email message: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		headers.Set("Authorization", "Bearer "+s.apiKey)
	}

	url := s.url + "/api/v1/send"
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		statusCode, _, _, err := s.client.Post(url, headers, body)
		if err == nil && statusCode < http.StatusInternalServerError {
			if statusCode >= http.StatusBadRequest {
				return fmt.Errorf("email API rejected message: status %d", statusCode)
			}
			return nil
		}

		if attempt < maxRetries {
			time.Sleep(retryInterval * time.Duration(attempt))
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to send email after %d retries: %w", maxRetries, err)
		}
		return fmt.Errorf("failed to send email after %d retries: status %d", maxRetries, statusCode)
	}
	return nil
}

func (s *Service) Close() {
	s.workerPool.Close()
}
