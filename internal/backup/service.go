package backup

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bizmoney-app/bizmoney-api/internal/auth"
	"github.com/bizmoney-app/bizmoney-api/internal/config"
	"github.com/bizmoney-app/bizmoney-api/internal/goal"
	"github.com/bizmoney-app/bizmoney-api/internal/ledger"
	"github.com/bizmoney-app/bizmoney-api/internal/user"
)

// Version identifies the backup payload format; kept at "1.1" so exports from
// the browser app restore here unchanged.
const Version = "1.1"

var (
	ErrBadFormat    = errors.New("invalid backup payload")
	ErrUnauthorized = errors.New("unauthorized")
)

type Payload struct {
	User         *user.User           `json:"user"`
	Transactions []ledger.Transaction `json:"transactions"`
	Goals        []goal.Goal          `json:"goals"`
	ExportDate   string               `json:"exportDate"`
	Version      string               `json:"version"`
}

// importPayload uses pointers to tell an absent collection from an empty one:
// a missing transactions field rejects the payload, missing goals are fine.
type importPayload struct {
	Transactions *[]ledger.Transaction `json:"transactions"`
	Goals        *[]goal.Goal          `json:"goals"`
}

type Service interface {
	Export(ctx context.Context) (*Payload, error)
	Import(ctx context.Context, raw []byte) error
}

type service struct {
	userRepo   user.Repository
	ledgerRepo ledger.Repository
	goalRepo   goal.Repository
}

func NewService(userRepo user.Repository, ledgerRepo ledger.Repository, goalRepo goal.Repository) Service {
	return &service{userRepo: userRepo, ledgerRepo: ledgerRepo, goalRepo: goalRepo}
}

func (s *service) Export(ctx context.Context) (*Payload, error) {
	log := config.WithContext(ctx)
	userID, err := sessionUserID(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.userRepo.FindByID(userID)
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		log.WithError(err).Error("Failed to load user for export")
		return nil, err
	}

	txs, err := s.ledgerRepo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load transactions for export")
		return nil, err
	}

	goals, err := s.goalRepo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load goals for export")
		return nil, err
	}

	return &Payload{
		User:         u,
		Transactions: txs,
		Goals:        goals,
		ExportDate:   time.Now().Format(time.RFC3339),
		Version:      Version,
	}, nil
}

// Import is a full replace of the target user's collections, never a merge.
// The payload only has to carry a transactions array; absent goals leave the
// goal collection untouched, matching the original restore behavior.
func (s *service) Import(ctx context.Context, raw []byte) error {
	log := config.WithContext(ctx)
	userID, err := sessionUserID(ctx)
	if err != nil {
		return err
	}

	var p importPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return ErrBadFormat
	}
	if p.Transactions == nil {
		return ErrBadFormat
	}

	if err := s.ledgerRepo.ReplaceAll(userID, *p.Transactions); err != nil {
		log.WithError(err).Error("Failed to import transactions")
		return err
	}

	if p.Goals != nil {
		if err := s.goalRepo.ReplaceAll(userID, *p.Goals); err != nil {
			log.WithError(err).Error("Failed to import goals")
			return err
		}
	}

	log.WithField("user_id", userID).Info("Backup imported")
	return nil
}

func sessionUserID(ctx context.Context) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}
