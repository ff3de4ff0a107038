package user

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bizmoney-app/bizmoney-api/internal/storage"
)

// UsersKey is the single global blob holding every registered user; the user
// collection is the one store not partitioned by userID.
const UsersKey = "bizmoney_users"

var ErrNotFound = errors.New("user not found")

type Repository interface {
	FindAll() ([]User, error)
	FindByID(id uuid.UUID) (*User, error)
	FindByMobile(mobile string) (*User, error)
	Create(u *User) error
	Update(u *User) error
}

type repository struct {
	gw storage.Gateway
}

func NewRepository(gw storage.Gateway) Repository {
	return &repository{gw: gw}
}

func (r *repository) FindAll() ([]User, error) {
	raw, found, err := r.gw.Get(UsersKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []User{}, nil
	}

	var users []User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("%w: corrupt user blob: %v", storage.ErrPersistence, err)
	}
	return users, nil
}

func (r *repository) FindByID(id uuid.UUID) (*User, error) {
	users, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *repository) FindByMobile(mobile string) (*User, error) {
	users, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Mobile == mobile {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *repository) Create(u *User) error {
	users, err := r.FindAll()
	if err != nil {
		return err
	}
	return r.save(append(users, *u))
}

func (r *repository) Update(u *User) error {
	users, err := r.FindAll()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == u.ID {
			users[i] = *u
			return r.save(users)
		}
	}
	return ErrNotFound
}

func (r *repository) save(users []User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("%w: encode users: %v", storage.ErrPersistence, err)
	}
	return r.gw.Set(UsersKey, string(data))
}
