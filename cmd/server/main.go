package main

import (
	"log"
	"net/http"

	"github.com/bizmoney-app/bizmoney-api/internal/config"
	"github.com/bizmoney-app/bizmoney-api/internal/container"
	"github.com/bizmoney-app/bizmoney-api/internal/router"
)

func main() {
	cfg := config.Load()

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}

	r := router.New(router.RouterConfig{
		UserHandler:   c.UserContainer.Handler,
		LedgerHandler: c.LedgerContainer.Handler,
		PartyHandler:  c.PartyContainer.Handler,
		GoalHandler:   c.GoalContainer.Handler,
		ReportHandler: c.ReportContainer.Handler,
		BackupHandler: c.BackupContainer.Handler,
	})

	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
