package inmem

import (
	"context"

	"github.com/google/uuid"

	"github.com/ailtonganem/Lara/internal/models"
	"github.com/ailtonganem/Lara/internal/store"
)

type AccountRepository struct {
	db *DB
}

func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, acc *models.Account) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failing(); err != nil {
		return &store.PersistenceError{Op: "create account", Err: err}
	}
	for _, a := range r.db.accounts {
		if a.Email == acc.Email {
			return store.ErrDuplicateEmail
		}
	}
	acc.ID = uuid.NewString()
	r.db.accounts = append(r.db.accounts, *acc)
	return nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if err := r.db.failing(); err != nil {
		return nil, &store.PersistenceError{Op: "get account", Err: err}
	}
	for _, a := range r.db.accounts {
		if a.Email == email {
			acc := a
			return &acc, nil
		}
	}
	return nil, store.ErrNotFound
}

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failing(); err != nil {
		return &store.PersistenceError{Op: "create user", Err: err}
	}
	r.db.users = append(r.db.users, *user)
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if err := r.db.failing(); err != nil {
		return nil, &store.PersistenceError{Op: "get user", Err: err}
	}
	for _, u := range r.db.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *UserRepository) ListPending(ctx context.Context) ([]models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if err := r.db.failing(); err != nil {
		return nil, &store.PersistenceError{Op: "list pending users", Err: err}
	}
	pending := []models.User{}
	for _, u := range r.db.users {
		if !u.Approved {
			pending = append(pending, u)
		}
	}
	return pending, nil
}

func (r *UserRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failing(); err != nil {
		return &store.PersistenceError{Op: "set approved", Err: err}
	}
	for i := range r.db.users {
		if r.db.users[i].ID == id {
			r.db.users[i].Approved = approved
			return nil
		}
	}
	return store.ErrNotFound
}

// SetRole rewrites a profile's role in place. Role changes happen out of
// band in production (seeded by an operator), so only the fake exposes this.
func (r *UserRepository) SetRole(id, role string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.users {
		if r.db.users[i].ID == id {
			r.db.users[i].Role = role
			return nil
		}
	}
	return store.ErrNotFound
}

func (r *UserRepository) AddScore(ctx context.Context, id string, delta int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failing(); err != nil {
		return &store.PersistenceError{Op: "add score", Err: err}
	}
	for i := range r.db.users {
		if r.db.users[i].ID == id {
			r.db.users[i].Score += delta
			return nil
		}
	}
	return store.ErrNotFound
}
