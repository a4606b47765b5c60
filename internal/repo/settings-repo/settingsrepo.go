package settingsrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

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

// Get returns the platform settings row, or nil when none has been
// created yet. Callers fall back to defaults in that case.
func (r *Repository) Get(ctx context.Context) (*domain.PlatformSettings, error) {
	query := `
        SELECT id, commission_rate, platform_content_fee, updated_at
        FROM platform_settings
        ORDER BY id
        LIMIT 1
    `
	var settings domain.PlatformSettings
	err := r.db.QueryRow(ctx, query).Scan(&settings.ID, &settings.CommissionRate, &settings.PlatformContentFee, &settings.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get platform settings", zap.Error(err))
		return nil, err
	}
	return &settings, nil
}
