package handlers

import (
	"net/http"

	_ "github.com/DKoroteev/linkmart/docs"
	authhandlers "github.com/DKoroteev/linkmart/internal/handlers/auth"
	balancehandlers "github.com/DKoroteev/linkmart/internal/handlers/balance"
	notificationhandlers "github.com/DKoroteev/linkmart/internal/handlers/notifications"
	requesthandlers "github.com/DKoroteev/linkmart/internal/handlers/requests"
	websitehandlers "github.com/DKoroteev/linkmart/internal/handlers/websites"
	"github.com/DKoroteev/linkmart/internal/service"

	"github.com/DKoroteev/linkmart/internal/domain"
	"github.com/DKoroteev/linkmart/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type RequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetRequests(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetLedger(w http.ResponseWriter, r *http.Request)
}

type WebsiteHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	RequestHandler      RequestHandler
	BalanceHandler      BalanceHandler
	WebsiteHandler      WebsiteHandler
	NotificationHandler NotificationHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		RequestHandler:      requesthandlers.New(s.RequestService, s.SettlementService),
		BalanceHandler:      balancehandlers.New(s.LedgerService),
		WebsiteHandler:      websitehandlers.New(s.WebsiteService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/websites", func(r chi.Router) {
				r.With(auth.RequireRole(domain.RolePublisher)).Post("/", h.WebsiteHandler.Create)
				r.Get("/", h.WebsiteHandler.List)
			})
			r.Route("/requests", func(r chi.Router) {
				r.With(auth.RequireRole(domain.RoleAdvertiser)).Post("/", h.RequestHandler.Create)
				r.Get("/", h.RequestHandler.GetRequests)
				r.With(auth.RequireRole(domain.RolePublisher)).Post("/{id}/accept", h.RequestHandler.Accept)
				r.With(auth.RequireRole(domain.RolePublisher)).Post("/{id}/reject", h.RequestHandler.Reject)
				r.With(auth.RequireRole(domain.RoleAdvertiser)).Post("/{id}/cancel", h.RequestHandler.Cancel)
			})
			r.Get("/balance", h.BalanceHandler.GetBalance)
			r.Get("/ledger", h.BalanceHandler.GetLedger)
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.List)
				r.Post("/{id}/read", h.NotificationHandler.MarkRead)
			})
		})
	})

	return r
}
