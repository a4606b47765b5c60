package repo

import (
	"github.com/DKoroteev/linkmart/internal/pg"
	ledgerrepo "github.com/DKoroteev/linkmart/internal/repo/ledger-repo"
	notificationrepo "github.com/DKoroteev/linkmart/internal/repo/notification-repo"
	requestrepo "github.com/DKoroteev/linkmart/internal/repo/request-repo"
	settingsrepo "github.com/DKoroteev/linkmart/internal/repo/settings-repo"
	userrepo "github.com/DKoroteev/linkmart/internal/repo/user-repo"
	websiterepo "github.com/DKoroteev/linkmart/internal/repo/website-repo"
	"github.com/DKoroteev/linkmart/internal/service/authservice"
	"github.com/DKoroteev/linkmart/internal/service/requestservice"
)

type Repositories struct {
	UserRepo         authservice.Repo
	RequestRepo      requestservice.Repo
	LedgerRepo       *ledgerrepo.Repository
	SettingsRepo     requestservice.SettingsRepo
	WebsiteRepo      *websiterepo.Repository
	NotificationRepo *notificationrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	requestRepo := requestrepo.New(conn, txManager)
	ledgerRepo := ledgerrepo.New(conn)
	settingsRepo := settingsrepo.New(conn)
	websiteRepo := websiterepo.New(conn)
	notificationRepo := notificationrepo.New(conn)

	return &Repositories{
		UserRepo:         userRepo,
		RequestRepo:      requestRepo,
		LedgerRepo:       ledgerRepo,
		SettingsRepo:     settingsRepo,
		WebsiteRepo:      websiteRepo,
		NotificationRepo: notificationRepo,
	}
}
