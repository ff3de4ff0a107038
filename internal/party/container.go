package party

import "github.com/bizmoney-app/bizmoney-api/internal/ledger"

type Container struct {
	Handler *Handler
}

func NewContainer(ledgerRepo ledger.Repository) *Container {
	return &Container{Handler: NewHandler(ledgerRepo)}
}
