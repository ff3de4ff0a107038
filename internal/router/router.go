package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bizmoney-app/bizmoney-api/internal/auth"
	"github.com/bizmoney-app/bizmoney-api/internal/backup"
	"github.com/bizmoney-app/bizmoney-api/internal/goal"
	"github.com/bizmoney-app/bizmoney-api/internal/ledger"
	"github.com/bizmoney-app/bizmoney-api/internal/party"
	"github.com/bizmoney-app/bizmoney-api/internal/report"
	"github.com/bizmoney-app/bizmoney-api/internal/user"
)

type RouterConfig struct {
	UserHandler   *user.Handler
	LedgerHandler *ledger.Handler
	PartyHandler  *party.Handler
	GoalHandler   *goal.Handler
	ReportHandler *report.Handler
	BackupHandler *backup.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/transactions", ledger.Routes(cfg.LedgerHandler))
		r.Mount("/parties", party.Routes(cfg.PartyHandler))
		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/reports", report.Routes(cfg.ReportHandler))
		r.Mount("/backup", backup.Routes(cfg.BackupHandler))
	})

	return r
}
