package balance

import (
	"context"
	"net/http"

	"github.com/DKoroteev/linkmart/internal/domain"
	"github.com/DKoroteev/linkmart/internal/dto"
	"github.com/DKoroteev/linkmart/pkg/auth"
	"github.com/DKoroteev/linkmart/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	GetEntries(ctx context.Context, userID int) ([]domain.LedgerEntry, error)
}

type BalanceHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Balance derived from the append-only ledger: credits minus debits.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current:  balance.Current,
		Credited: balance.Credited,
		Debited:  balance.Debited,
	})
}

// GetLedger godoc
//
//	@Summary		Get ledger history
//	@Description	Balance-affecting entries for the authenticated user, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LedgerEntryResponseDTO	"Ledger entries"
//	@Success		204	{object}	utils.Response				"No entries"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/ledger [get]
func (h *BalanceHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	entries, err := h.ledgerService.GetEntries(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch ledger entries")
		return
	}

	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No entries")
		return
	}

	response := make([]dto.LedgerEntryResponseDTO, len(entries))
	for i, entry := range entries {
		response[i] = dto.LedgerEntryResponseDTO{
			Type:              entry.Type,
			Amount:            entry.Amount,
			Description:       entry.Description,
			PurchaseRequestID: entry.PurchaseRequestID,
			CreatedAt:         entry.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
