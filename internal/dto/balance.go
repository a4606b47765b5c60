package dto

import "time"

type BalanceResponseDTO struct {
	Current  float64 `json:"current" example:"85"`
	Credited float64 `json:"credited" example:"85"`
	Debited  float64 `json:"debited" example:"0"`
}

type LedgerEntryResponseDTO struct {
	Type              string    `json:"type" example:"commission"`
	Amount            float64   `json:"amount" example:"85"`
	Description       string    `json:"description" example:"payout for purchase request #7"`
	PurchaseRequestID int       `json:"purchase_request_id" example:"7"`
	CreatedAt         time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}
