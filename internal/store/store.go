// Package store persists expenses.
//
// Every operation acquires its own connection from a database.Provider and
// releases it before returning.
package store

import (
	"context"
	"time"

	"github.com/expense-tracker/backend/internal/database"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// Store implements CRUD for expenses.
type Store struct {
	provider *database.Provider
}

func New(provider *database.Provider) *Store {
	return &Store{provider: provider}
}

// Insert writes a new expense. On success, the ID and CreatedAt assigned by
// the store are set on e. A CreatedAt set by the caller is ignored.
func (s *Store) Insert(ctx context.Context, e *models.Expense) error {
	if e.IsPersisted() {
		return ErrAlreadyPersisted
	}

	h, err := s.provider.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release(h)

	db, cancel := h.Query(ctx)
	defer cancel()

	attempted := *e
	record := *e
	record.CreatedAt = time.Time{}
	err = db.Create(&record).Error
	if err != nil {
		return &PersistenceError{Op: OpInsert, Record: &attempted, Err: err}
	}

	*e = record
	return nil
}

// FindAll returns all expenses, the most recent first. Expenses on the same
// day are ordered by descending ID.
func (s *Store) FindAll(ctx context.Context) ([]models.Expense, error) {
	h, err := s.provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release(h)

	db, cancel := h.Query(ctx)
	defer cancel()

	expenses := []models.Expense{}
	err = db.Order("expense_date DESC, id DESC").Find(&expenses).Error
	if err != nil {
		return nil, &PersistenceError{Op: OpFetch, Err: err}
	}

	return expenses, nil
}

// Update overwrites amount, description, category and date of the expense
// with the ID of e. The creation time is never changed.
//
// Updating an ID that does not exist is not an error.
func (s *Store) Update(ctx context.Context, e *models.Expense) error {
	if !e.IsPersisted() {
		return ErrNotPersisted
	}

	h, err := s.provider.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release(h)

	db, cancel := h.Query(ctx)
	defer cancel()

	// Select the columns explicitly so that zero values are written, too
	result := db.Model(e).
		Select("Amount", "Description", "Category", "ExpenseDate").
		Updates(e)
	if result.Error != nil {
		attempted := *e
		return &PersistenceError{Op: OpUpdate, ID: e.ID, Record: &attempted, Err: result.Error}
	}

	if result.RowsAffected == 0 {
		log.Debug().Uint("id", e.ID).Msg("update did not match any expense")
	}

	return nil
}

// Delete removes the expense with the given ID.
//
// Deleting an ID that does not exist is not an error.
func (s *Store) Delete(ctx context.Context, id uint) error {
	h, err := s.provider.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release(h)

	db, cancel := h.Query(ctx)
	defer cancel()

	result := db.Delete(&models.Expense{}, id)
	if result.Error != nil {
		return &PersistenceError{Op: OpDelete, ID: id, Err: result.Error}
	}

	if result.RowsAffected == 0 {
		log.Debug().Uint("id", id).Msg("delete did not match any expense")
	}

	return nil
}

func release(h *database.Handle) {
	if err := h.Release(); err != nil {
		log.Warn().Err(err).Str("target", h.Address).Msg("closing the database connection failed")
	}
}
