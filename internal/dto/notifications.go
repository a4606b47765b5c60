package dto

import (
	"encoding/json"
	"time"
)

type NotificationResponseDTO struct {
	ID        int             `json:"id" example:"3"`
	Kind      string          `json:"kind" example:"request_accepted"`
	Payload   json.RawMessage `json:"payload"`
	Read      bool            `json:"read" example:"false"`
	CreatedAt time.Time       `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}
