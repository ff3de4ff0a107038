package container

import (
	"fmt"

	"github.com/bizmoney-app/bizmoney-api/internal/auth"
	"github.com/bizmoney-app/bizmoney-api/internal/backup"
	"github.com/bizmoney-app/bizmoney-api/internal/config"
	"github.com/bizmoney-app/bizmoney-api/internal/goal"
	"github.com/bizmoney-app/bizmoney-api/internal/ledger"
	"github.com/bizmoney-app/bizmoney-api/internal/party"
	"github.com/bizmoney-app/bizmoney-api/internal/report"
	"github.com/bizmoney-app/bizmoney-api/internal/storage"
	"github.com/bizmoney-app/bizmoney-api/internal/user"
)

type Container struct {
	Gateway storage.Gateway

	UserContainer   *user.Container
	LedgerContainer *ledger.Container
	PartyContainer  *party.Container
	GoalContainer   *goal.Container
	ReportContainer *report.Container
	BackupContainer *backup.Container
}

func New(cfg config.Config) (*Container, error) {
	config.InitLogger()
	auth.Init()

	gw, err := openGateway(cfg)
	if err != nil {
		return nil, err
	}

	userContainer := user.NewContainer(gw)
	ledgerContainer := ledger.NewContainer(gw)
	goalContainer := goal.NewContainer(gw)
	partyContainer := party.NewContainer(ledgerContainer.Repo)
	reportContainer := report.NewContainer(ledgerContainer.Repo, goalContainer.Repo)
	backupContainer := backup.NewContainer(userContainer.Repo, ledgerContainer.Repo, goalContainer.Repo)

	return &Container{
		Gateway:         gw,
		UserContainer:   userContainer,
		LedgerContainer: ledgerContainer,
		PartyContainer:  partyContainer,
		GoalContainer:   goalContainer,
		ReportContainer: reportContainer,
		BackupContainer: backupContainer,
	}, nil
}

func openGateway(cfg config.Config) (storage.Gateway, error) {
	switch cfg.StorageBackend {
	case "memory":
		return storage.NewMemory(), nil
	case "bolt":
		return storage.NewBolt(cfg.BoltPath)
	case "postgres":
		return storage.NewDB(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
