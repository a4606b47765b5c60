package domain

import "time"

const (
	// PendingStatus заявка создана рекламодателем и ждёт решения издателя;
	PendingStatus string = "pending"
	// AcceptedStatus заявка принята, расчёт выполнен;
	AcceptedStatus string = "accepted"
	// RejectedStatus заявка отклонена издателем;
	RejectedStatus string = "rejected"
	// CancelledStatus заявка отменена рекламодателем;
	CancelledStatus string = "cancelled"
)

const (
	// ContentPlatform статью пишет платформа за фиксированную доплату;
	ContentPlatform string = "platform"
	// ContentCustom рекламодатель присылает готовую статью;
	ContentCustom string = "custom"
	// ContentExisting ссылка размещается в существующем материале;
	ContentExisting string = "existing"
)

const (
	// EntryTypePurchase списание с рекламодателя;
	EntryTypePurchase string = "purchase"
	// EntryTypeCommission выплата издателю;
	EntryTypeCommission string = "commission"
)

const (
	RoleAdvertiser string = "advertiser"
	RolePublisher  string = "publisher"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Website struct {
	ID             int       `db:"id"`
	PublisherID    int       `db:"publisher_id"`
	Domain         string    `db:"domain"`
	Category       string    `db:"category"`
	MonthlyTraffic int       `db:"monthly_traffic"`
	Price          float64   `db:"price"`
	CreatedAt      time.Time `db:"created_at"`
}

type PurchaseRequest struct {
	ID                     int        `db:"id"`
	AdvertiserID           int        `db:"advertiser_id"`
	PublisherID            int        `db:"publisher_id"`
	WebsiteID              int        `db:"website_id"`
	AnchorText             string     `db:"anchor_text"`
	TargetURL              string     `db:"target_url"`
	ProposedPrice          float64    `db:"proposed_price"`
	ProposedDurationMonths int        `db:"proposed_duration_months"`
	ContentOption          string     `db:"content_option"`
	Status                 string     `db:"status"`
	PlacedURL              string     `db:"placed_url"`
	CreatedAt              time.Time  `db:"created_at"`
	UpdatedAt              time.Time  `db:"updated_at"`
	ResponseDate           *time.Time `db:"response_date"`
}

type LedgerEntry struct {
	ID                int       `db:"id"`
	UserID            int       `db:"user_id"`
	Type              string    `db:"type"`
	Amount            float64   `db:"amount"`
	Description       string    `db:"description"`
	PurchaseRequestID int       `db:"purchase_request_id"`
	CreatedAt         time.Time `db:"created_at"`
}

type PlatformSettings struct {
	ID                 int       `db:"id"`
	CommissionRate     float64   `db:"commission_rate"`
	PlatformContentFee float64   `db:"platform_content_fee"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// Balance is derived from ledger entries, never stored.
type Balance struct {
	UserID   int
	Current  float64
	Credited float64
	Debited  float64
}

type Notification struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Kind      string    `db:"kind"`
	Payload   string    `db:"payload"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}
