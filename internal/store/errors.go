package store

import (
	"errors"
	"fmt"

	"github.com/expense-tracker/backend/internal/models"
)

var (
	ErrPersistence      = errors.New("persistence failure")
	ErrAlreadyPersisted = errors.New("the expense has already been inserted and cannot be inserted again")
	ErrNotPersisted     = errors.New("the expense has not been inserted yet and cannot be updated")
)

// Op is a store operation.
type Op string

const (
	OpInsert Op = "insert"
	OpFetch  Op = "fetch"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// PersistenceError is returned when a statement fails on an established
// connection.
type PersistenceError struct {
	Op     Op
	ID     uint            // ID of the affected expense, 0 for inserts and fetches
	Record *models.Expense // The expense being written, nil for fetches and deletes
	Err    error
}

// Message returns the human readable description of the failed operation.
func (e *PersistenceError) Message() string {
	switch e.Op {
	case OpInsert:
		return "failed to insert expense"
	case OpFetch:
		return "failed to fetch expenses"
	default:
		return fmt.Sprintf("failed to %s expense id=%d", e.Op, e.ID)
	}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message(), e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
