package websiterepo

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

func (r *Repository) Save(ctx context.Context, website *domain.Website) error {
	query := `
        INSERT INTO websites (publisher_id, domain, category, monthly_traffic, price, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		website.PublisherID, website.Domain, website.Category, website.MonthlyTraffic, website.Price, website.CreatedAt,
	).Scan(&website.ID)
	if err != nil {
		zap.L().Error("can't save website", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Website, error) {
	query := `
        SELECT id, publisher_id, domain, category, monthly_traffic, price, created_at
        FROM websites
        WHERE id = $1
    `
	var website domain.Website
	err := r.db.QueryRow(ctx, query, id).Scan(
		&website.ID, &website.PublisherID, &website.Domain, &website.Category,
		&website.MonthlyTraffic, &website.Price, &website.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find website", zap.Error(err))
		return nil, err
	}
	return &website, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Website, error) {
	query := `
        SELECT id, publisher_id, domain, category, monthly_traffic, price, created_at
        FROM websites
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get websites", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var websites []domain.Website
	for rows.Next() {
		var website domain.Website
		err := rows.Scan(
			&website.ID, &website.PublisherID, &website.Domain, &website.Category,
			&website.MonthlyTraffic, &website.Price, &website.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan website row", zap.Error(err))
			return nil, err
		}
		websites = append(websites, website)
	}
	return websites, nil
}
