package service

import (
	authhandlers "github.com/DKoroteev/linkmart/internal/handlers/auth"
	balancehandlers "github.com/DKoroteev/linkmart/internal/handlers/balance"
	notificationhandlers "github.com/DKoroteev/linkmart/internal/handlers/notifications"
	requesthandlers "github.com/DKoroteev/linkmart/internal/handlers/requests"
	websitehandlers "github.com/DKoroteev/linkmart/internal/handlers/websites"

	pkgauth "github.com/DKoroteev/linkmart/pkg/auth"

	"github.com/DKoroteev/linkmart/internal/pg"
	"github.com/DKoroteev/linkmart/internal/repo"
	authservice "github.com/DKoroteev/linkmart/internal/service/authservice"
	ledgerservice "github.com/DKoroteev/linkmart/internal/service/ledgerservice"
	notificationservice "github.com/DKoroteev/linkmart/internal/service/notificationservice"
	requestservice "github.com/DKoroteev/linkmart/internal/service/requestservice"
	settlementservice "github.com/DKoroteev/linkmart/internal/service/settlementservice"
	websiteservice "github.com/DKoroteev/linkmart/internal/service/websiteservice"
)

type Services struct {
	AuthService         authhandlers.Service
	RequestService      requesthandlers.Service
	SettlementService   requesthandlers.SettlementService
	LedgerService       balancehandlers.Service
	WebsiteService      websitehandlers.Service
	NotificationService notificationhandlers.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier settlementservice.Notifier, invalidator settlementservice.Invalidator) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	requestService := requestservice.New(repo.RequestRepo, repo.WebsiteRepo, repo.SettingsRepo, notifier, invalidator)
	settlementService := settlementservice.New(repo.RequestRepo, repo.LedgerRepo, repo.SettingsRepo, txManager, notifier, invalidator)
	ledgerService := ledgerservice.New(repo.LedgerRepo)
	websiteService := websiteservice.New(repo.WebsiteRepo)
	notificationService := notificationservice.New(repo.NotificationRepo)

	return &Services{
		AuthService:         authService,
		RequestService:      requestService,
		SettlementService:   settlementService,
		LedgerService:       ledgerService,
		WebsiteService:      websiteService,
		NotificationService: notificationService,
	}
}
