package requestrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/DKoroteev/linkmart/internal/domain"
	"github.com/DKoroteev/linkmart/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.PurchaseRequest, error) {
	query := `
        SELECT id, advertiser_id, publisher_id, website_id, anchor_text, target_url,
               proposed_price, proposed_duration_months, content_option, status,
               placed_url, created_at, updated_at, response_date
        FROM purchase_requests
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var req domain.PurchaseRequest
	err := row.Scan(
		&req.ID, &req.AdvertiserID, &req.PublisherID, &req.WebsiteID,
		&req.AnchorText, &req.TargetURL, &req.ProposedPrice, &req.ProposedDurationMonths,
		&req.ContentOption, &req.Status, &req.PlacedURL,
		&req.CreatedAt, &req.UpdatedAt, &req.ResponseDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find purchase request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

func (r *Repository) Save(ctx context.Context, req *domain.PurchaseRequest) error {
	query := `
        INSERT INTO purchase_requests
            (advertiser_id, publisher_id, website_id, anchor_text, target_url,
             proposed_price, proposed_duration_months, content_option, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			req.AdvertiserID, req.PublisherID, req.WebsiteID, req.AnchorText, req.TargetURL,
			req.ProposedPrice, req.ProposedDurationMonths, req.ContentOption, req.Status, req.CreatedAt,
		)
		if err := row.Scan(&req.ID); err != nil {
			zap.L().Error("can't save purchase request", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByAdvertiserID(ctx context.Context, advertiserID int) ([]domain.PurchaseRequest, error) {
	query := `
        SELECT id, advertiser_id, publisher_id, website_id, anchor_text, target_url,
               proposed_price, proposed_duration_months, content_option, status,
               placed_url, created_at, updated_at, response_date
        FROM purchase_requests
        WHERE advertiser_id = $1
        ORDER BY created_at DESC
    `
	return r.findList(ctx, query, advertiserID)
}

func (r *Repository) FindByPublisherID(ctx context.Context, publisherID int) ([]domain.PurchaseRequest, error) {
	query := `
        SELECT id, advertiser_id, publisher_id, website_id, anchor_text, target_url,
               proposed_price, proposed_duration_months, content_option, status,
               placed_url, created_at, updated_at, response_date
        FROM purchase_requests
        WHERE publisher_id = $1
        ORDER BY created_at DESC
    `
	return r.findList(ctx, query, publisherID)
}

func (r *Repository) findList(ctx context.Context, query string, userID int) ([]domain.PurchaseRequest, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get purchase requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.PurchaseRequest
	for rows.Next() {
		var req domain.PurchaseRequest
		err := rows.Scan(
			&req.ID, &req.AdvertiserID, &req.PublisherID, &req.WebsiteID,
			&req.AnchorText, &req.TargetURL, &req.ProposedPrice, &req.ProposedDurationMonths,
			&req.ContentOption, &req.Status, &req.PlacedURL,
			&req.CreatedAt, &req.UpdatedAt, &req.ResponseDate,
		)
		if err != nil {
			zap.L().Error("can't scan purchase request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// TransitionFromPending flips status in one conditional statement and
// reports whether a row was actually changed. The WHERE clause on the
// current status is what prevents two concurrent acceptances from both
// succeeding.
func (r *Repository) TransitionFromPending(ctx context.Context, id int, newStatus, placedURL string, responseDate time.Time) (bool, error) {
	query := `
        UPDATE purchase_requests
        SET status = $1, placed_url = $2, response_date = $3, updated_at = $3
        WHERE id = $4 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, newStatus, placedURL, responseDate, id)
	if err != nil {
		zap.L().Error("can't transition purchase request", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
