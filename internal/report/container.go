package report

import (
	"github.com/bizmoney-app/bizmoney-api/internal/goal"
	"github.com/bizmoney-app/bizmoney-api/internal/ledger"
)

type Container struct {
	Handler *Handler
}

func NewContainer(ledgerRepo ledger.Repository, goalRepo goal.Repository) *Container {
	return &Container{Handler: NewHandler(ledgerRepo, goalRepo)}
}
