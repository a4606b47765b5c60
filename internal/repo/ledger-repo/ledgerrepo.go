package ledgerrepo

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

// InsertEntry appends one balance-affecting record. Entries are never
// updated or deleted; the unique (purchase_request_id, type) index keeps
// a retried settlement from double-charging.
func (r *Repository) InsertEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
        INSERT INTO ledger_entries (user_id, type, amount, description, purchase_request_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		entry.UserID, entry.Type, entry.Amount, entry.Description, entry.PurchaseRequestID, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't insert ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) GetEntriesByUserID(ctx context.Context, userID int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, user_id, type, amount, description, purchase_request_id, created_at
        FROM ledger_entries
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var entry domain.LedgerEntry
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.Type, &entry.Amount, &entry.Description, &entry.PurchaseRequestID, &entry.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan ledger entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetUserBalance derives the balance from the ledger instead of keeping
// a mutable balance column.
func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT
            COALESCE(SUM(amount) FILTER (WHERE type = 'commission'), 0),
            COALESCE(SUM(amount) FILTER (WHERE type = 'purchase'), 0)
        FROM ledger_entries
        WHERE user_id = $1
    `
	balance := domain.Balance{UserID: userID}
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance.Credited, &balance.Debited)
	if err != nil {
		zap.L().Error("can't get user balance", zap.Error(err))
		return nil, err
	}
	balance.Current = balance.Credited - balance.Debited
	return &balance, nil
}
