package goal

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bizmoney-app/bizmoney-api/internal/storage"
)

const KeyPrefix = "bizmoney_goals"

var ErrNotFound = errors.New("goal not found")

type Repository interface {
	FindAllByUserID(userID uuid.UUID) ([]Goal, error)
	Create(g *Goal) error
	Update(g *Goal) error
	Delete(userID, id uuid.UUID) error
	ReplaceAll(userID uuid.UUID, goals []Goal) error
}

type repository struct {
	gw storage.Gateway
}

func NewRepository(gw storage.Gateway) Repository {
	return &repository{gw: gw}
}

func (r *repository) FindAllByUserID(userID uuid.UUID) ([]Goal, error) {
	raw, found, err := r.gw.Get(storage.Key(KeyPrefix, userID.String()))
	if err != nil {
		return nil, err
	}
	if !found {
		return []Goal{}, nil
	}

	var goals []Goal
	if err := json.Unmarshal([]byte(raw), &goals); err != nil {
		return nil, fmt.Errorf("%w: corrupt goal blob for %s: %v", storage.ErrPersistence, userID, err)
	}
	return goals, nil
}

func (r *repository) Create(g *Goal) error {
	goals, err := r.FindAllByUserID(g.UserID)
	if err != nil {
		return err
	}
	return r.save(g.UserID, append(goals, *g))
}

func (r *repository) Update(g *Goal) error {
	goals, err := r.FindAllByUserID(g.UserID)
	if err != nil {
		return err
	}
	for i := range goals {
		if goals[i].ID == g.ID {
			goals[i] = *g
			return r.save(g.UserID, goals)
		}
	}
	return ErrNotFound
}

func (r *repository) Delete(userID, id uuid.UUID) error {
	goals, err := r.FindAllByUserID(userID)
	if err != nil {
		return err
	}
	for i := range goals {
		if goals[i].ID == id {
			return r.save(userID, append(goals[:i], goals[i+1:]...))
		}
	}
	return ErrNotFound
}

func (r *repository) ReplaceAll(userID uuid.UUID, goals []Goal) error {
	return r.save(userID, goals)
}

func (r *repository) save(userID uuid.UUID, goals []Goal) error {
	if goals == nil {
		goals = []Goal{}
	}
	data, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("%w: encode goals for %s: %v", storage.ErrPersistence, userID, err)
	}
	return r.gw.Set(storage.Key(KeyPrefix, userID.String()), string(data))
}
