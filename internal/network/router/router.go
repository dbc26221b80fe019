package router

import (
	"github.com/fitlife/loyalty/internal/config"
	"github.com/fitlife/loyalty/internal/network/handlers"
	"github.com/fitlife/loyalty/internal/network/middleware"
	"github.com/fitlife/loyalty/internal/services"
	"github.com/fitlife/loyalty/internal/storage"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config   config.Config
	Identity services.IdentityService
	Ledger   services.LedgerService
	Catalog  services.CatalogService
	Requests services.RequestsService
}

func NewRouter(config config.Config, storage storage.Storage) *Router {
	engine := services.NewRedemption(storage.Redemptions)
	return &Router{
		Config:   config,
		Identity: services.NewIdentity(config, storage.Users),
		Ledger:   services.NewLedger(storage.Accounts, storage.Users),
		Catalog:  services.NewCatalog(storage.Rewards),
		Requests: services.NewRequests(storage.Requests, storage.Rewards, storage.Users, engine),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handlers.RegisterUserHandler(router.Identity))
			r.Post("/login", handlers.AuthenticateUserHandler(router.Identity))
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Get("/balance", handlers.GetBalanceHandler(router.Ledger))
				r.Get("/transactions", handlers.GetHistoryHandler(router.Ledger))
				r.Get("/requests", handlers.GetUserRequestsHandler(router.Requests))
				r.Group(func(r chi.Router) {
					r.Use(middleware.RateLimit(rate.Limit(5), 10))
					r.Post("/requests", handlers.CreateRequestHandler(router.Requests))
				})
			})
		})
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Get("/rewards", handlers.GetRewardsHandler(router.Catalog, true))
		})
		r.Route("/admin", func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Use(middleware.AdminOnly)
			r.Get("/rewards", handlers.GetRewardsHandler(router.Catalog, false))
			r.Post("/rewards", handlers.CreateRewardHandler(router.Catalog))
			r.Put("/rewards/{id}", handlers.UpdateRewardHandler(router.Catalog))
			r.Delete("/rewards/{id}", handlers.DeleteRewardHandler(router.Catalog))
			r.Post("/rewards/{id}/stock", handlers.AdjustStockHandler(router.Catalog))
			r.Get("/requests", handlers.GetAdminRequestsHandler(router.Requests))
			r.Post("/requests/{id}/decision", handlers.DecideRequestHandler(router.Requests))
			r.Post("/points", handlers.GrantBonusHandler(router.Ledger))
		})
	})
	return r
}
