package ledger

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bizmoney-app/bizmoney-api/internal/storage"
)

// KeyPrefix matches the localStorage key the v1.1 backup format was exported
// from, so old blobs import verbatim.
const KeyPrefix = "bizmoney_data"

var ErrNotFound = errors.New("transaction not found")

type Repository interface {
	FindAllByUserID(userID uuid.UUID) ([]Transaction, error)
	Create(t *Transaction) error
	Update(t *Transaction) error
	Delete(userID, id uuid.UUID) error
	ReplaceAll(userID uuid.UUID, txs []Transaction) error
}

type repository struct {
	gw storage.Gateway
}

func NewRepository(gw storage.Gateway) Repository {
	return &repository{gw: gw}
}

// Every write is a whole-collection read-modify-write: load the user's blob,
// mutate in memory, store the blob back. The runtime is single-session so no
// two writes interleave.
func (r *repository) FindAllByUserID(userID uuid.UUID) ([]Transaction, error) {
	raw, found, err := r.gw.Get(storage.Key(KeyPrefix, userID.String()))
	if err != nil {
		return nil, err
	}
	if !found {
		return []Transaction{}, nil
	}

	var txs []Transaction
	if err := json.Unmarshal([]byte(raw), &txs); err != nil {
		return nil, fmt.Errorf("%w: corrupt transaction blob for %s: %v", storage.ErrPersistence, userID, err)
	}
	return txs, nil
}

func (r *repository) Create(t *Transaction) error {
	txs, err := r.FindAllByUserID(t.UserID)
	if err != nil {
		return err
	}
	return r.save(t.UserID, append(txs, *t))
}

func (r *repository) Update(t *Transaction) error {
	txs, err := r.FindAllByUserID(t.UserID)
	if err != nil {
		return err
	}
	for i := range txs {
		if txs[i].ID == t.ID {
			txs[i] = *t
			return r.save(t.UserID, txs)
		}
	}
	return ErrNotFound
}

func (r *repository) Delete(userID, id uuid.UUID) error {
	txs, err := r.FindAllByUserID(userID)
	if err != nil {
		return err
	}
	for i := range txs {
		if txs[i].ID == id {
			return r.save(userID, append(txs[:i], txs[i+1:]...))
		}
	}
	return ErrNotFound
}

// ReplaceAll swaps the user's entire collection, used by backup import.
func (r *repository) ReplaceAll(userID uuid.UUID, txs []Transaction) error {
	return r.save(userID, txs)
}

func (r *repository) save(userID uuid.UUID, txs []Transaction) error {
	if txs == nil {
		txs = []Transaction{}
	}
	data, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("%w: encode transactions for %s: %v", storage.ErrPersistence, userID, err)
	}
	return r.gw.Set(storage.Key(KeyPrefix, userID.String()), string(data))
}
