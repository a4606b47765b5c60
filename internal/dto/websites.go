package dto

type CreateWebsiteDTO struct {
	Domain         string  `json:"domain" example:"blog.example.com"`
	Category       string  `json:"category" example:"technology"`
	MonthlyTraffic int     `json:"monthly_traffic" example:"120000"`
	Price          float64 `json:"price" example:"100"`
}

type WebsiteResponseDTO struct {
	ID             int     `json:"id" example:"42"`
	PublisherID    int     `json:"publisher_id" example:"2"`
	Domain         string  `json:"domain" example:"blog.example.com"`
	Category       string  `json:"category" example:"technology"`
	MonthlyTraffic int     `json:"monthly_traffic" example:"120000"`
	Price          float64 `json:"price" example:"100"`
}
