package notificationrepo

import (
	"context"

	"github.com/DKoroteev/linkmart/internal/domain"
	"github.com/DKoroteev/linkmart/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error) {
	query := `
        INSERT INTO notifications (user_id, kind, payload, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		notification.UserID, notification.Kind, notification.Payload, notification.CreatedAt,
	).Scan(&notification.ID)
	if err != nil {
		zap.L().Error("can't save notification", zap.Error(err))
		return nil, err
	}
	return notification, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Notification, error) {
	query := `
        SELECT id, user_id, kind, payload, read, created_at
        FROM notifications
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Payload, &n.Read, &n.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// MarkRead reports whether the notification existed and belonged to the user.
func (r *Repository) MarkRead(ctx context.Context, id, userID int) (bool, error) {
	query := `
        UPDATE notifications
        SET read = TRUE
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		zap.L().Error("can't mark notification read", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
