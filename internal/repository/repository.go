package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates all entity repositories.
type Repository struct {
	db *gorm.DB

	User        UserRepository
	Shift       ShiftRepository
	SwapRequest SwapRequestRepository
	Volunteer   VolunteerRepository
}

// NewRepository creates the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:          db,
		User:        NewUserRepo(db),
		Shift:       NewShiftRepo(db),
		SwapRequest: NewSwapRequestRepo(db),
		Volunteer:   NewVolunteerRepo(db),
	}
}

// BeginTx opens a database transaction. Returns a nil transaction when the
// aggregate has no live database (mock repositories in tests).
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	return tx, tx.Error
}

// WithTx returns a repository aggregate bound to the given transaction.
// A nil transaction returns the receiver unchanged.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}
