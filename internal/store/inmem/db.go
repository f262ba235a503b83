// Package inmem is an in-memory implementation of the store interfaces used
// as a stand-in for Postgres in tests.
package inmem

import (
	"sync"

	"github.com/ailtonganem/Lara/internal/models"
)

// DB holds everything in slices so insertion order is preserved; ordered
// listings sort stably by order_num, which keeps the store-assigned
// tie-break among equal order values.
type DB struct {
	mu         sync.RWMutex
	accounts   []models.Account
	users      []models.User
	subjects   []models.Subject
	modules    []models.Module
	activities []models.Activity

	// FailWith, when set, makes every operation fail with that error.
	// Used to exercise degraded read paths.
	FailWith error
}

func Open() *DB {
	return &DB{}
}

// Fail puts the store in (or out of) forced-failure mode.
func (db *DB) Fail(err error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.FailWith = err
}

func (db *DB) failing() error {
	return db.FailWith
}
