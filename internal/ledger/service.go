package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/bizmoney-app/bizmoney-api/internal/auth"
	"github.com/bizmoney-app/bizmoney-api/internal/config"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidID           = errors.New("invalid id format")
	ErrValidation          = errors.New("invalid transaction")
)

type Service interface {
	Create(ctx context.Context, dto CreateTransactionDTO) (*TransactionResponse, error)
	FindAllByUser(ctx context.Context) ([]TransactionResponse, error)
	Update(ctx context.Context, id string, dto UpdateTransactionDTO) (*TransactionResponse, error)
	Settle(ctx context.Context, id string) (*TransactionResponse, error)
	Delete(ctx context.Context, id string) error
	Balance(ctx context.Context) (decimal.Decimal, error)
	PartyNames(ctx context.Context) ([]string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func getUserIDFromContext(ctx context.Context, log logrus.FieldLogger, action string) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.WithError(err).Warnf("Attempt to %s without authentication", action)
		return uuid.Nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}

// validate enforces the business rules before anything touches the store:
// positive amount, a category, a known type, and a party name whenever the
// entry is a due.
func validate(t *Transaction) error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if t.Type != TypeIncome && t.Type != TypeExpense {
		return fmt.Errorf("%w: unknown transaction type %q", ErrValidation, t.Type)
	}
	if t.IsDue && strings.TrimSpace(t.PartyName) == "" {
		return fmt.Errorf("%w: party name is required for a due entry", ErrValidation)
	}
	return nil
}

func (s *service) Create(ctx context.Context, dto CreateTransactionDTO) (*TransactionResponse, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "create transaction")
	if err != nil {
		return nil, err
	}

	t := Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    dto.Amount,
		Type:      dto.Type,
		Category:  dto.Category,
		Note:      dto.Note,
		Date:      dto.Date,
		Timestamp: time.Now().UnixMilli(),
		IsDue:     dto.IsDue,
		PartyName: dto.PartyName,
		DueDate:   dto.DueDate,
	}
	if t.Date == "" {
		t.Date = time.Now().Format(time.RFC3339)
	}

	if err := validate(&t); err != nil {
		return nil, err
	}

	if err := s.repo.Create(&t); err != nil {
		log.WithError(err).Error("Failed to create transaction")
		return nil, err
	}

	log.WithField("transaction_id", t.ID).Info("Transaction created")
	return toResponse(&t), nil
}

func (s *service) FindAllByUser(ctx context.Context) ([]TransactionResponse, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "list transactions")
	if err != nil {
		return nil, err
	}

	txs, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list transactions")
		return nil, err
	}

	responses := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, *toResponse(&txs[i]))
	}
	return responses, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateTransactionDTO) (*TransactionResponse, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "update transaction")
	if err != nil {
		return nil, err
	}

	t, err := s.findOwned(userID, id, log)
	if err != nil {
		return nil, err
	}

	if dto.Amount != nil {
		t.Amount = *dto.Amount
	}
	if dto.Category != nil {
		t.Category = *dto.Category
	}
	if dto.Note != nil {
		t.Note = *dto.Note
	}
	if dto.Date != nil {
		t.Date = *dto.Date
	}
	if dto.IsDue != nil {
		t.IsDue = *dto.IsDue
	}
	if dto.PartyName != nil {
		t.PartyName = *dto.PartyName
	}
	if dto.DueDate != nil {
		t.DueDate = *dto.DueDate
	}

	if err := validate(t); err != nil {
		return nil, err
	}

	if err := s.repo.Update(t); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		log.WithError(err).Error("Failed to update transaction")
		return nil, err
	}
	return toResponse(t), nil
}

// Settle flips a due entry to paid. One-way in normal flow; from then on the
// entry counts toward cash balance.
func (s *service) Settle(ctx context.Context, id string) (*TransactionResponse, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "settle transaction")
	if err != nil {
		return nil, err
	}

	t, err := s.findOwned(userID, id, log)
	if err != nil {
		return nil, err
	}
	if !t.IsDue {
		return nil, fmt.Errorf("%w: only a due entry can be settled", ErrValidation)
	}

	t.IsSettled = true
	if err := s.repo.Update(t); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		log.WithError(err).Error("Failed to settle transaction")
		return nil, err
	}

	log.WithField("transaction_id", t.ID).Info("Due transaction settled")
	return toResponse(t), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "delete transaction")
	if err != nil {
		return err
	}

	txID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.repo.Delete(userID, txID); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithFields(logrus.Fields{
				"transaction_id": id,
				"user_id":        userID,
			}).Warn("Transaction not found for deletion")
			return ErrTransactionNotFound
		}
		log.WithError(err).Error("Failed to delete transaction")
		return err
	}
	return nil
}

func (s *service) Balance(ctx context.Context) (decimal.Decimal, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "calculate balance")
	if err != nil {
		return decimal.Zero, err
	}

	txs, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load transactions for balance")
		return decimal.Zero, err
	}
	return CalculateBalance(txs), nil
}

func (s *service) PartyNames(ctx context.Context) ([]string, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "list party names")
	if err != nil {
		return nil, err
	}

	txs, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load transactions for party names")
		return nil, err
	}
	return PartyNames(txs), nil
}

func (s *service) findOwned(userID uuid.UUID, id string, log logrus.FieldLogger) (*Transaction, error) {
	txID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	txs, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load transactions")
		return nil, err
	}
	for i := range txs {
		if txs[i].ID == txID {
			return &txs[i], nil
		}
	}
	log.WithFields(logrus.Fields{
		"transaction_id": id,
		"user_id":        userID,
	}).Warn("Transaction not found or does not belong to user")
	return nil, ErrTransactionNotFound
}
