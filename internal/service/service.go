// Package service is the entry point for everything that reads or changes
// expenses. Presentation layers only talk to a Service.
package service

import (
	"context"
	"time"

	"github.com/expense-tracker/backend/internal/database"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
)

// Store persists expenses.
type Store interface {
	Insert(ctx context.Context, e *models.Expense) error
	FindAll(ctx context.Context) ([]models.Expense, error)
	Update(ctx context.Context, e *models.Expense) error
	Delete(ctx context.Context, id uint) error
}

// Checker probes the database connection.
type Checker interface {
	Ping(ctx context.Context) database.Health
}

// Service validates expenses before handing them to the store.
type Service struct {
	store   Store
	checker Checker
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock used to determine the current date.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(store Store, checker Checker, opts ...Option) *Service {
	s := &Service{
		store:   store,
		checker: checker,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AddExpense validates e and inserts it. On success, e carries the ID and
// creation time assigned by the store.
func (s *Service) AddExpense(ctx context.Context, e *models.Expense) error {
	err := models.Validate(*e, types.Today(s.now))
	if err != nil {
		return err
	}

	return s.store.Insert(ctx, e)
}

// UpdateExpense validates e and overwrites the stored expense with the same ID.
func (s *Service) UpdateExpense(ctx context.Context, e *models.Expense) error {
	err := models.Validate(*e, types.Today(s.now))
	if err != nil {
		return err
	}

	return s.store.Update(ctx, e)
}

// DeleteExpense removes the expense with the given ID.
func (s *Service) DeleteExpense(ctx context.Context, id uint) error {
	return s.store.Delete(ctx, id)
}

// ListExpenses returns all expenses, the most recent first.
func (s *Service) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	return s.store.FindAll(ctx)
}

// Categories returns the categories an expense can have.
func (s *Service) Categories() []string {
	return models.Categories()
}

// CheckConnection reports whether the database can be reached.
func (s *Service) CheckConnection(ctx context.Context) database.Health {
	return s.checker.Ping(ctx)
}
