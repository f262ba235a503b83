package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ailtonganem/Lara/internal/models"
	"github.com/ailtonganem/Lara/internal/store"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return &store.PersistenceError{Op: "create user", Err: err}
	}
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, &store.PersistenceError{Op: "get user", Err: err}
	}
	return &user, nil
}

func (r *UserRepository) ListPending(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Where("approved = ?", false).Find(&users).Error
	if err != nil {
		return nil, &store.PersistenceError{Op: "list pending users", Err: err}
	}
	return users, nil
}

func (r *UserRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("approved", approved)
	if res.Error != nil {
		return &store.PersistenceError{Op: "set approved", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *UserRepository) AddScore(ctx context.Context, id string, delta int) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("score", gorm.Expr("score + ?", delta))
	if res.Error != nil {
		return &store.PersistenceError{Op: "add score", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
