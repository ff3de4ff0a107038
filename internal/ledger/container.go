package ledger

import "github.com/bizmoney-app/bizmoney-api/internal/storage"

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(gw storage.Gateway) *Container {
	repo := NewRepository(gw)
	service := NewService(repo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
