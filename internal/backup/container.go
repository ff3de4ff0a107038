package backup

import (
	"github.com/bizmoney-app/bizmoney-api/internal/goal"
	"github.com/bizmoney-app/bizmoney-api/internal/ledger"
	"github.com/bizmoney-app/bizmoney-api/internal/user"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(userRepo user.Repository, ledgerRepo ledger.Repository, goalRepo goal.Repository) *Container {
	service := NewService(userRepo, ledgerRepo, goalRepo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
