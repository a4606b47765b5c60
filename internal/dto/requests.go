package dto

import "time"

type CreateRequestDTO struct {
	WebsiteID              int     `json:"website_id" example:"42"`
	AnchorText             string  `json:"anchor_text" example:"best vpn deals"`
	TargetURL              string  `json:"target_url" example:"https://advertiser.example/landing"`
	ProposedPrice          float64 `json:"proposed_price" example:"190"`
	ProposedDurationMonths int     `json:"proposed_duration_months" example:"12"`
	ContentOption          string  `json:"content_option" example:"platform"`
}

type AcceptRequestDTO struct {
	PlacedURL string `json:"placed_url,omitempty" example:"https://blog.example.com/review"`
}

type RequestResponseDTO struct {
	ID                     int        `json:"id" example:"7"`
	AdvertiserID           int        `json:"advertiser_id" example:"1"`
	PublisherID            int        `json:"publisher_id" example:"2"`
	WebsiteID              int        `json:"website_id" example:"42"`
	AnchorText             string     `json:"anchor_text" example:"best vpn deals"`
	TargetURL              string     `json:"target_url" example:"https://advertiser.example/landing"`
	ProposedPrice          float64    `json:"proposed_price" example:"190"`
	ProposedDurationMonths int        `json:"proposed_duration_months" example:"12"`
	ContentOption          string     `json:"content_option" example:"platform"`
	Status                 string     `json:"status" example:"pending"`
	PlacedURL              string     `json:"placed_url,omitempty" example:"https://blog.example.com/review"`
	CreatedAt              time.Time  `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
	ResponseDate           *time.Time `json:"response_date,omitempty" example:"2024-12-10T10:00:00+03:00"`
}
