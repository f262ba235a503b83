// Package store defines the persistence contracts for the platform. Services
// receive these interfaces at construction so the Postgres implementation can
// be swapped for the in-memory one in tests.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ailtonganem/Lara/internal/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// PersistenceError wraps a backing-store fault so callers can distinguish
// infrastructure failures from domain errors like ErrNotFound.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

type AccountRepository interface {
	// Create assigns the account ID and persists it. Returns
	// ErrDuplicateEmail if the email is already taken.
	Create(ctx context.Context, acc *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Get(ctx context.Context, id string) (*models.User, error)
	ListPending(ctx context.Context) ([]models.User, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	AddScore(ctx context.Context, id string, delta int) error
}

// ContentRepository persists the Subject > Module > Activity tree. Child
// operations are scoped by their parent IDs so a record is only reachable
// through its containment path. All lists come back ordered by order_num
// ascending. Create methods assign IDs. Deletes cascade to children.
type ContentRepository interface {
	ListSubjects(ctx context.Context) ([]models.Subject, error)
	GetSubject(ctx context.Context, id string) (*models.Subject, error)
	CreateSubject(ctx context.Context, s *models.Subject) error
	UpdateSubject(ctx context.Context, s *models.Subject) error
	DeleteSubject(ctx context.Context, id string) error

	ListModules(ctx context.Context, subjectID string) ([]models.Module, error)
	GetModule(ctx context.Context, subjectID, moduleID string) (*models.Module, error)
	CreateModule(ctx context.Context, m *models.Module) error
	UpdateModule(ctx context.Context, m *models.Module) error
	DeleteModule(ctx context.Context, subjectID, moduleID string) error

	ListActivities(ctx context.Context, subjectID, moduleID string) ([]models.Activity, error)
	GetActivity(ctx context.Context, subjectID, moduleID, activityID string) (*models.Activity, error)
	CreateActivity(ctx context.Context, a *models.Activity) error
	UpdateActivity(ctx context.Context, a *models.Activity) error
	DeleteActivity(ctx context.Context, subjectID, moduleID, activityID string) error
}
